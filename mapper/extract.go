package mapper

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mapframe/frame"
	"github.com/YuminosukeSato/mapframe/pkg/errors"
)

// ExtractX は下流パイプライン向けの特徴抽出で、Transformと等価
func (m *Mapper) ExtractX(X frame.Frame) (mat.Matrix, error) {
	return m.Transform(X)
}

// ExtractY はターゲットFeatureのラベル列をyから（yがなければXから）抽出する
//
// yがなくターゲットFeatureも設定されていない場合はエラーなしでnilを返す。
// ターゲットFeatureが設定されていないのに抽出が要求された場合は設定エラー。
// それ以外はFit時と同じ規則でコンテナを解決し、ターゲットのセレクタで
// 部分集合を取り出して学習済み変換器を適用する。変換器の出力に追加の
// 正規化は行わない。
func (m *Mapper) ExtractY(X frame.Frame, y frame.Frame) (mat.Matrix, error) {
	if y == nil && m.target == nil {
		return nil, nil
	}
	if m.target == nil {
		return nil, errors.NewValueError("Mapper.ExtractY", "no target feature is configured")
	}

	df, err := m.resolveTargetFrame(X, y)
	if err != nil {
		return nil, err
	}

	sub, err := m.target.Selector.resolve(df)
	if err != nil {
		return nil, err
	}
	out, err := m.target.Transformer.Transform(sub)
	if err != nil {
		return nil, errors.Wrapf(err, "mapper: transform failed for target %s", m.target.Selector)
	}
	return out, nil
}

// ExtractXY はExtractXとExtractYの組
func (m *Mapper) ExtractXY(X frame.Frame, y frame.Frame) (mat.Matrix, mat.Matrix, error) {
	xt, err := m.ExtractX(X)
	if err != nil {
		return nil, nil, err
	}
	yt, err := m.ExtractY(X, y)
	if err != nil {
		return nil, nil, err
	}
	return xt, yt, nil
}
