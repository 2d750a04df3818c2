package mapper

import (
	"fmt"

	"github.com/YuminosukeSato/mapframe/core/model"
	"github.com/YuminosukeSato/mapframe/pipeline"
)

// Feature はセレクタと変換器の組。fit/transformの処理単位になる。
//
// Mapperの構築後は構造的に置き換えられることはなく、変換器の内部状態
// だけがFit時に更新される。
type Feature struct {
	Selector    Selector
	Transformer model.Transformer
}

// NewFeature はセレクタと変換器からFeatureを作成する
//
// 変換器が渡されなければ恒等変換が入る。複数渡された場合は1つの
// 逐次パイプラインに正規化して保持する。
func NewFeature(sel Selector, transformers ...model.Transformer) Feature {
	steps := make([]model.Transformer, 0, len(transformers))
	for _, t := range transformers {
		if t != nil {
			steps = append(steps, t)
		}
	}

	switch len(steps) {
	case 0:
		return Feature{Selector: sel, Transformer: pipeline.NewIdentity()}
	case 1:
		return Feature{Selector: sel, Transformer: steps[0]}
	default:
		return Feature{Selector: sel, Transformer: pipeline.New(steps...)}
	}
}

// FeatureOf は変換器なしの単一列Featureを作成する
func FeatureOf(name string) Feature {
	return NewFeature(Col(name))
}

// String はFeatureの文字列表現を返す
func (f Feature) String() string {
	return fmt.Sprintf("(%s, %v)", f.Selector, f.Transformer)
}
