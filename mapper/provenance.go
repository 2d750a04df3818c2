package mapper

import (
	"github.com/YuminosukeSato/mapframe/pkg/errors"
)

// 来歴インデックスはFit時に保存された幅から都度計算される純粋な導出値で、
// フィールドとしてキャッシュしない。再Fit後の古い値が残ることを防ぐため。

// Widths は特徴ごとの出力幅を返す
// 特徴iは結合出力にwidths[i]列を寄与する。
func (m *Mapper) Widths() ([]int, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("Mapper", "Widths")
	}
	return append([]int(nil), m.widths...), nil
}

// Indices は特徴ごとの累積列オフセットを返す
//
// 長さは特徴数+1で、先頭は0。特徴iの出力は結合出力の
// [indices[i], indices[i+1]) の範囲を占める。
func (m *Mapper) Indices() ([]int, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("Mapper", "Indices")
	}
	indices := make([]int, len(m.widths)+1)
	for i, w := range m.widths {
		indices[i+1] = indices[i] + w
	}
	return indices, nil
}

// NumOutputColumns は結合出力の総列数を返す
func (m *Mapper) NumOutputColumns() (int, error) {
	if !m.IsFitted() {
		return 0, errors.NewNotFittedError("Mapper", "NumOutputColumns")
	}
	total := 0
	for _, w := range m.widths {
		total += w
	}
	return total, nil
}

// OutputFeatures は結合出力の各列を生成したFeatureを返す
//
// 戻り値は出力列ごとに1要素で、各Featureはその出力幅の回数だけ
// 順に繰り返される。
func (m *Mapper) OutputFeatures() ([]Feature, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("Mapper", "OutputFeatures")
	}
	var out []Feature
	for i, w := range m.widths {
		for k := 0; k < w; k++ {
			out = append(out, m.features[i])
		}
	}
	return out, nil
}

// OutputSelectors は結合出力の各列を生成したセレクタを返す
func (m *Mapper) OutputSelectors() ([]Selector, error) {
	features, err := m.OutputFeatures()
	if err != nil {
		return nil, err
	}
	selectors := make([]Selector, len(features))
	for i, f := range features {
		selectors[i] = f.Selector
	}
	return selectors, nil
}
