package mapper

import (
	"io"

	"github.com/YuminosukeSato/mapframe/core/model"
	"github.com/YuminosukeSato/mapframe/pipeline"
	"github.com/YuminosukeSato/mapframe/pkg/errors"
)

// mapperState はMapperの永続化レイアウト
//
// 変換器は正規化前のリストとして保存され、復元時に構築と同じ規則で
// 再正規化される。Sparseフィールドを持たない旧レイアウトはfalseとして
// デコードされる。
type mapperState struct {
	Features []featureState
	Target   *featureState
	Sparse   bool
	Widths   []int
}

// featureState は1つのFeatureの永続化レイアウト
type featureState struct {
	Names        []string
	List         bool
	Transformers []model.Transformer
}

// newFeatureState はFeatureを保存形式へ展開する
// パイプラインはステップ列に、恒等変換は空リストに展開される。
func newFeatureState(f Feature) featureState {
	fs := featureState{Names: f.Selector.Names(), List: f.Selector.IsList()}
	switch t := f.Transformer.(type) {
	case *pipeline.Identity:
		// 変換器なしの特徴
	case *pipeline.Pipeline:
		fs.Transformers = append([]model.Transformer(nil), t.Steps...)
	default:
		fs.Transformers = []model.Transformer{t}
	}
	return fs
}

// restore は保存形式からFeatureを再構築する
// 変換器リストはNewFeatureを通して再正規化される。
func (fs featureState) restore() Feature {
	var sel Selector
	if fs.List {
		sel = Cols(fs.Names...)
	} else {
		sel = Col(fs.Names[0])
	}
	return NewFeature(sel, fs.Transformers...)
}

// Save はMapperの状態をgob形式でwへ書き出す
//
// 保存される変換器の具象型はmodel.RegisterTransformerで登録されている
// 必要がある。同梱の変換器は自身のパッケージのinitで登録される。
func (m *Mapper) Save(w io.Writer) error {
	st := mapperState{
		Features: make([]featureState, 0, len(m.features)),
		Sparse:   m.sparse,
	}
	for _, f := range m.features {
		st.Features = append(st.Features, newFeatureState(f))
	}
	if m.target != nil {
		ts := newFeatureState(*m.target)
		st.Target = &ts
	}
	if m.IsFitted() {
		st.Widths = append([]int(nil), m.widths...)
	}

	if err := model.SaveModelToWriter(&st, w); err != nil {
		return errors.Wrap(err, "mapper: save state")
	}
	return nil
}

// Load は永続化されたMapperの状態をrから復元する
//
// 各Featureの変換器リストは構築時と同様に1つのパイプラインへ
// 再正規化される。幅が保存されていればMapperは学習済み状態で復元される。
func Load(r io.Reader) (*Mapper, error) {
	var st mapperState
	if err := model.LoadModelFromReader(&st, r); err != nil {
		return nil, errors.Wrap(err, "mapper: load state")
	}

	features := make([]Feature, 0, len(st.Features))
	for _, fs := range st.Features {
		features = append(features, fs.restore())
	}

	opts := []Option{WithSparse(st.Sparse)}
	if st.Target != nil {
		opts = append(opts, WithTarget(st.Target.restore()))
	}

	m, err := NewMapper(features, opts...)
	if err != nil {
		return nil, err
	}

	if len(st.Widths) > 0 {
		if len(st.Widths) != len(features) {
			return nil, errors.NewDimensionError("mapper.Load", len(features), len(st.Widths), 1)
		}
		m.widths = st.Widths
		m.SetFitted()
	}
	return m, nil
}
