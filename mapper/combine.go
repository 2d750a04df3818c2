package mapper

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mapframe/core/parallel"
	"github.com/YuminosukeSato/mapframe/pkg/errors"
)

// 密結合で行ループを並列化する行数の閾値
const denseParallelThreshold = 256

// sparseMatrix は疎表現の行列が満たすインターフェース
type sparseMatrix interface {
	mat.Matrix
	NNZ() int
}

// nonZeroDoer は非ゼロ要素の走査を提供する疎行列のインターフェース
type nonZeroDoer interface {
	DoNonZero(fn func(i, j int, v float64))
}

// combine は特徴ごとの出力行列を水平方向に結合する
//
// いずれかのブロックが疎表現の場合は疎結合になり、密ブロックは疎表現へ
// 昇格される。疎結合の結果はwantSparseがfalseなら密行列へ変換して返す。
// 全ブロックが密なら密のまま結合する。
func combine(blocks []mat.Matrix, wantSparse bool) (mat.Matrix, error) {
	if len(blocks) == 0 {
		return nil, errors.NewModelError("Mapper.Transform", "no feature outputs to combine", errors.ErrEmptyData)
	}

	rows, _ := blocks[0].Dims()
	totalCols := 0
	anySparse := false
	for _, b := range blocks {
		r, c := b.Dims()
		if r != rows {
			return nil, errors.NewDimensionError("Mapper.Transform", rows, r, 0)
		}
		totalCols += c
		if _, ok := b.(sparseMatrix); ok {
			anySparse = true
		}
	}

	if anySparse {
		return combineSparse(blocks, rows, totalCols, wantSparse)
	}
	return combineDense(blocks, rows, totalCols), nil
}

// combineDense は密ブロックだけを1つの密行列に結合する
func combineDense(blocks []mat.Matrix, rows, totalCols int) *mat.Dense {
	out := mat.NewDense(rows, totalCols, nil)
	parallel.ParallelizeWithThreshold(rows, denseParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			off := 0
			for _, b := range blocks {
				_, c := b.Dims()
				for j := 0; j < c; j++ {
					out.Set(i, off+j, b.At(i, j))
				}
				off += c
			}
		}
	})
	return out
}

// combineSparse は少なくとも1つの疎ブロックを含む列をCSRへ結合する
func combineSparse(blocks []mat.Matrix, rows, totalCols int, wantSparse bool) (mat.Matrix, error) {
	dok := sparse.NewDOK(rows, totalCols)
	off := 0
	for _, b := range blocks {
		_, c := b.Dims()
		if nz, ok := b.(nonZeroDoer); ok {
			colOff := off
			nz.DoNonZero(func(i, j int, v float64) {
				dok.Set(i, colOff+j, v)
			})
		} else {
			errors.Warn(errors.NewDataConversionWarning("dense", "sparse",
				"dense feature output promoted for sparse combination"))
			for i := 0; i < rows; i++ {
				for j := 0; j < c; j++ {
					if v := b.At(i, j); v != 0 {
						dok.Set(i, off+j, v)
					}
				}
			}
		}
		off += c
	}

	csr := dok.ToCSR()
	if !wantSparse {
		return csr.ToDense(), nil
	}
	return csr, nil
}
