package preprocessing

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mapframe/core/model"
	"github.com/YuminosukeSato/mapframe/pkg/errors"
)

func init() {
	model.RegisterTransformer(&OneHotEncoder{})
}

// 未知カテゴリの扱い
const (
	// HandleUnknownError は未知の値をエラーにする (デフォルト)
	HandleUnknownError = "error"
	// HandleUnknownIgnore は未知の値を全て0の行として無視する
	HandleUnknownIgnore = "ignore"
)

// OneHotEncoder はscikit-learn互換のone-hotエンコーダー
// 各入力列の相異なる値をカテゴリとして学習し、カテゴリごとの2値列へ展開する
type OneHotEncoder struct {
	model.StateManager

	// Categories は学習された各入力列のカテゴリ（昇順ソート済み）
	Categories [][]float64

	// NInputs は入力列の数
	NInputs int

	// SparseOutput は疎行列(CSR)で出力するかどうか (デフォルト: false)
	SparseOutput bool

	// HandleUnknown は未知カテゴリの扱い ("error" または "ignore")
	HandleUnknown string
}

// NewOneHotEncoder は新しいOneHotEncoderを作成する
//
// パラメータ:
//   - sparseOutput: 疎行列で出力するかどうか
//
// 使用例:
//
//	enc := preprocessing.NewOneHotEncoder(false)
//	err := enc.Fit(X)
//	XEnc, err := enc.Transform(X)
func NewOneHotEncoder(sparseOutput bool) *OneHotEncoder {
	return &OneHotEncoder{
		SparseOutput:  sparseOutput,
		HandleUnknown: HandleUnknownError,
	}
}

// NewOneHotEncoderDefault はデフォルト設定（密行列出力）でOneHotEncoderを作成する
func NewOneHotEncoderDefault() *OneHotEncoder {
	return NewOneHotEncoder(false)
}

// Fit は訓練データから各列のカテゴリを学習する
func (e *OneHotEncoder) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("OneHotEncoder.Fit", "empty data", errors.ErrEmptyData)
	}

	e.NInputs = c
	e.Categories = make([][]float64, c)

	for j := 0; j < c; j++ {
		seen := make(map[float64]struct{}, r)
		for i := 0; i < r; i++ {
			seen[X.At(i, j)] = struct{}{}
		}
		cats := make([]float64, 0, len(seen))
		for v := range seen {
			cats = append(cats, v)
		}
		sort.Float64s(cats)
		e.Categories[j] = cats
	}

	e.SetDimensions(c, r)
	e.SetFitted()
	return nil
}

// Transform は学習済みカテゴリを使ってデータを2値列へ展開する
//
// 出力幅は各列のカテゴリ数の合計になる。SparseOutputがtrueの場合は
// *sparse.CSR、そうでなければ*mat.Denseを返す。
func (e *OneHotEncoder) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "Transform")
	}

	r, c := X.Dims()
	if c != e.NInputs {
		return nil, errors.NewDimensionError("OneHotEncoder.Transform", e.NInputs, c, 1)
	}

	offsets := make([]int, c+1)
	for j, cats := range e.Categories {
		offsets[j+1] = offsets[j] + len(cats)
	}
	width := offsets[c]

	if e.SparseOutput {
		dok := sparse.NewDOK(r, width)
		if err := e.encode(X, r, c, offsets, func(i, j int) { dok.Set(i, j, 1.0) }); err != nil {
			return nil, err
		}
		return dok.ToCSR(), nil
	}

	out := mat.NewDense(r, width, nil)
	if err := e.encode(X, r, c, offsets, func(i, j int) { out.Set(i, j, 1.0) }); err != nil {
		return nil, err
	}
	return out, nil
}

// encode は各セルのカテゴリ位置を解決してsetで1を立てる
func (e *OneHotEncoder) encode(X mat.Matrix, r, c int, offsets []int, set func(i, j int)) error {
	for j := 0; j < c; j++ {
		cats := e.Categories[j]
		for i := 0; i < r; i++ {
			v := X.At(i, j)
			k := sort.SearchFloat64s(cats, v)
			if k < len(cats) && cats[k] == v {
				set(i, offsets[j]+k)
				continue
			}
			if e.HandleUnknown == HandleUnknownIgnore {
				continue
			}
			return errors.NewValueError("OneHotEncoder.Transform",
				fmt.Sprintf("found unknown category %v in column %d during transform", v, j))
		}
	}
	return nil
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (e *OneHotEncoder) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := e.Fit(X); err != nil {
		return nil, err
	}
	return e.Transform(X)
}

// NumOutputColumns は学習済みカテゴリから出力幅を返す
func (e *OneHotEncoder) NumOutputColumns() (int, error) {
	if !e.IsFitted() {
		return 0, errors.NewNotFittedError("OneHotEncoder", "NumOutputColumns")
	}
	width := 0
	for _, cats := range e.Categories {
		width += len(cats)
	}
	return width, nil
}

// GetParams はエンコーダーのパラメータを取得する
func (e *OneHotEncoder) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"sparse_output":  e.SparseOutput,
		"handle_unknown": e.HandleUnknown,
	}
}

// String はエンコーダーの文字列表現を返す
func (e *OneHotEncoder) String() string {
	if !e.IsFitted() {
		return fmt.Sprintf("OneHotEncoder(sparse_output=%t)", e.SparseOutput)
	}
	return fmt.Sprintf("OneHotEncoder(sparse_output=%t, n_inputs=%d)", e.SparseOutput, e.NInputs)
}
