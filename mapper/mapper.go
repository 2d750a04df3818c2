// Package mapper はコンテナの名前付き列部分集合をそれぞれ独立に学習された
// 変換パイプラインへ通し、結果を1つの数値特徴行列へ組み立てる。
//
// 各特徴の出力幅はFit時に記録され、出力列から元のFeatureへの逆引き
// （来歴インデックス）は保存された幅から都度導出される。
package mapper

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mapframe/core/model"
	"github.com/YuminosukeSato/mapframe/frame"
	"github.com/YuminosukeSato/mapframe/pkg/errors"
	"github.com/YuminosukeSato/mapframe/pkg/log"
)

// Mapper は順序付きのFeature列を所有するfit/transformオーケストレーター
//
// Fitは各特徴の変換器をその列部分集合で学習させ、出力幅を記録する。
// Transformは学習済み変換器を適用し、特徴ごとの行列を1つに結合する。
// 同一インスタンスに対する並行なFit呼び出し、またはFitと並行する
// Transform呼び出しは安全ではない。
type Mapper struct {
	model.StateManager

	features []Feature
	target   *Feature
	sparse   bool

	// widths はFit成功時に記録される特徴ごとの出力幅
	// 全特徴の処理が完了した後にのみ置き換えられる
	widths []int
}

// Option はMapperを構成する関数
type Option func(*Mapper)

// WithTarget はターゲット抽出に使うFeatureを設定する
func WithTarget(f Feature) Option {
	return func(m *Mapper) {
		m.target = &f
	}
}

// WithSparse は疎出力フラグを設定する
// trueの場合、いずれかの特徴が疎出力を生成すればTransformの結果も疎行列になる
func WithSparse(sparse bool) Option {
	return func(m *Mapper) {
		m.sparse = sparse
	}
}

// NewMapper はFeature列から新しいMapperを作成する
//
// 特徴の順序は意味を持ち、出力列の順序を決定する。
func NewMapper(features []Feature, opts ...Option) (*Mapper, error) {
	if len(features) == 0 {
		return nil, errors.NewValueError("NewMapper", "at least one feature is required")
	}

	m := &Mapper{
		features: append([]Feature(nil), features...),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// NewMapperFromColumns は変換器なしの単一列Featureの列からMapperを作成する
// 単一の列名だけを渡した場合は1要素のFeature列として扱われる。
func NewMapperFromColumns(names ...string) (*Mapper, error) {
	features := make([]Feature, 0, len(names))
	for _, name := range names {
		features = append(features, FeatureOf(name))
	}
	return NewMapper(features)
}

// NumFeatures は構成されたFeatureの数を返す
func (m *Mapper) NumFeatures() int { return len(m.features) }

// Features は構成されたFeatureのコピーを返す
func (m *Mapper) Features() []Feature {
	return append([]Feature(nil), m.features...)
}

// Sparse は疎出力フラグを返す
func (m *Mapper) Sparse() bool { return m.sparse }

// Fit は各Featureの変換器をXの列部分集合で学習させ、出力幅を記録する
//
// ターゲットFeatureが設定されている場合、そのターゲットはyから
// （yがなければXから）抽出されて学習される。ターゲットの学習は
// 幅の状態に影響しない。途中で失敗した場合、以前の幅の状態は
// そのまま残る。Fitのたびに幅は完全に置き換えられる。
func (m *Mapper) Fit(X frame.Frame, y frame.Frame) error {
	if X == nil {
		return errors.NewValueError("Mapper.Fit", "input container is nil")
	}

	widths := make([]int, 0, len(m.features))
	for _, f := range m.features {
		data, err := f.Selector.resolve(X)
		if err != nil {
			return err
		}
		if err := f.Transformer.Fit(data); err != nil {
			return errors.Wrapf(err, "mapper: fit failed for feature %s", f.Selector)
		}
		out, err := f.Transformer.Transform(data)
		if err != nil {
			return errors.Wrapf(err, "mapper: transform failed for feature %s", f.Selector)
		}
		_, w := asColumn(out).Dims()
		widths = append(widths, w)
	}

	if m.target != nil {
		df, err := m.resolveTargetFrame(X, y)
		if err != nil {
			return err
		}
		sub, err := m.target.Selector.resolve(df)
		if err != nil {
			return err
		}
		if err := m.target.Transformer.Fit(sub); err != nil {
			return errors.Wrapf(err, "mapper: fit failed for target %s", m.target.Selector)
		}
	}

	// 幅の置き換えは全特徴とターゲットの処理が成功してからのみ行う
	m.widths = widths
	m.SetDimensions(len(m.features), X.Len())
	m.SetFitted()

	total := 0
	for _, w := range widths {
		total += w
	}
	log.GetLoggerWithName("mapper").Debug("mapper fitted",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, X.Len(),
		log.FeaturesKey, len(m.features),
		log.OutputColumnsKey, total,
	)
	return nil
}

// Transform は学習済みの各変換器を適用し、特徴ごとの出力を1つの行列に結合する
//
// Fitが完了していることを前提とし、記録済みの幅と現在の出力幅が
// 一致するかの再検証は行わない。入力はFit時と異なっていてよいが、
// セレクタが参照する列を持っていなければならない。
func (m *Mapper) Transform(X frame.Frame) (mat.Matrix, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("Mapper", "Transform")
	}

	extracted := make([]mat.Matrix, 0, len(m.features))
	for _, f := range m.features {
		data, err := f.Selector.resolve(X)
		if err != nil {
			return nil, err
		}
		out, err := f.Transformer.Transform(data)
		if err != nil {
			return nil, errors.Wrapf(err, "mapper: transform failed for feature %s", f.Selector)
		}
		extracted = append(extracted, asColumn(out))
	}

	// ここで結合すると個々の出力列の由来は失われる。
	// 来歴は記録済みの幅からOutputFeaturesで別途導出する。
	combined, err := combine(extracted, m.sparse)
	if err != nil {
		return nil, err
	}

	rows, cols := combined.Dims()
	_, isSparse := combined.(sparseMatrix)
	log.GetLoggerWithName("mapper").Debug("mapper transformed",
		log.OperationKey, log.OperationTransform,
		log.SamplesKey, rows,
		log.OutputColumnsKey, cols,
		log.SparseKey, isSparse,
	)
	return combined, nil
}

// FitTransform は学習と変換を同時に実行する
func (m *Mapper) FitTransform(X frame.Frame, y frame.Frame) (mat.Matrix, error) {
	if err := m.Fit(X, y); err != nil {
		return nil, err
	}
	return m.Transform(X)
}

// resolveTargetFrame はターゲット抽出に使うコンテナを決定する
//
// yが与えられていればそれを使う（Seriesは1列のコンテナとしてそのまま
// 扱える）。yがなければXへフォールバックするが、その場合Xは正規の
// Tableでなければならない。
func (m *Mapper) resolveTargetFrame(X, y frame.Frame) (frame.Frame, error) {
	if y != nil {
		return y, nil
	}
	if _, ok := X.(*frame.Table); !ok {
		return nil, errors.NewValidationError("X", "target fallback requires a table container", X)
	}
	return X, nil
}
