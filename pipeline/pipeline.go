// Package pipeline は複数の変換器を1つの逐次パイプラインとして合成する。
package pipeline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mapframe/core/model"
	"github.com/YuminosukeSato/mapframe/pkg/errors"
)

func init() {
	model.RegisterTransformer(&Identity{})
}

// Pipeline は変換器の列を1つの変換器として扱う合成変換器
// Fitは各ステップを順に学習させ、前段の変換結果を次段の入力にする
type Pipeline struct {
	// Steps は合成される変換器の列。gobエンコーディングのため公開している
	Steps []model.Transformer
}

// New は変換器の列から新しいPipelineを作成する
func New(steps ...model.Transformer) *Pipeline {
	return &Pipeline{Steps: append([]model.Transformer(nil), steps...)}
}

// Fit は各ステップを順に学習させる
// ステップiの学習データはステップi-1までの変換結果になる
func (p *Pipeline) Fit(X mat.Matrix) error {
	if len(p.Steps) == 0 {
		return errors.NewValueError("Pipeline.Fit", "pipeline has no steps")
	}

	cur := X
	for i, step := range p.Steps {
		if err := step.Fit(cur); err != nil {
			return errors.Wrapf(err, "pipeline: step %d fit failed", i)
		}
		out, err := step.Transform(cur)
		if err != nil {
			return errors.Wrapf(err, "pipeline: step %d transform failed", i)
		}
		cur = out
	}
	return nil
}

// Transform は学習済みの各ステップを順に適用する
func (p *Pipeline) Transform(X mat.Matrix) (mat.Matrix, error) {
	if len(p.Steps) == 0 {
		return nil, errors.NewValueError("Pipeline.Transform", "pipeline has no steps")
	}

	cur := X
	for i, step := range p.Steps {
		out, err := step.Transform(cur)
		if err != nil {
			return nil, errors.Wrapf(err, "pipeline: step %d transform failed", i)
		}
		cur = out
	}
	return cur, nil
}

// FitTransform は学習と変換を同時に実行する
func (p *Pipeline) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if len(p.Steps) == 0 {
		return nil, errors.NewValueError("Pipeline.FitTransform", "pipeline has no steps")
	}

	cur := X
	for i, step := range p.Steps {
		out, err := step.FitTransform(cur)
		if err != nil {
			return nil, errors.Wrapf(err, "pipeline: step %d fit_transform failed", i)
		}
		cur = out
	}
	return cur, nil
}

// Len はステップ数を返す
func (p *Pipeline) Len() int { return len(p.Steps) }

// String はパイプラインの文字列表現を返す
func (p *Pipeline) String() string {
	return fmt.Sprintf("Pipeline(steps=%d)", len(p.Steps))
}

// Identity は入力をそのまま返す恒等変換器
// 変換器なしの特徴を明示的に表現するために使う
type Identity struct {
	model.StateManager
}

// NewIdentity は新しいIdentityを作成する
func NewIdentity() *Identity {
	return &Identity{}
}

// Fit は入力の形状を記録するだけで何も学習しない
func (id *Identity) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	id.SetDimensions(c, r)
	id.SetFitted()
	return nil
}

// Transform は入力をそのまま返す
func (id *Identity) Transform(X mat.Matrix) (mat.Matrix, error) {
	return X, nil
}

// FitTransform は学習と変換を同時に実行する
func (id *Identity) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := id.Fit(X); err != nil {
		return nil, err
	}
	return id.Transform(X)
}

// String は変換器の文字列表現を返す
func (id *Identity) String() string { return "Identity()" }
