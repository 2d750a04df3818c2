package mapper

import (
	"testing"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mapframe/pkg/errors"
)

func TestCombineDense(t *testing.T) {
	a := mat.NewDense(2, 1, []float64{1, 2})
	b := mat.NewDense(2, 2, []float64{3, 4, 5, 6})

	out, err := combine([]mat.Matrix{a, b}, false)
	if err != nil {
		t.Fatalf("combine failed: %v", err)
	}

	r, c := out.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("dims = (%d,%d), want (2,3)", r, c)
	}
	want := [][]float64{{1, 3, 4}, {2, 5, 6}}
	for i := range want {
		for j := range want[i] {
			if out.At(i, j) != want[i][j] {
				t.Errorf("out[%d,%d] = %v, want %v", i, j, out.At(i, j), want[i][j])
			}
		}
	}
	if _, ok := out.(*mat.Dense); !ok {
		t.Errorf("output type = %T, want *mat.Dense", out)
	}
}

func TestCombineMixedPromotesDense(t *testing.T) {
	var warned int
	errors.SetWarningHandler(func(error) { warned++ })
	defer errors.SetWarningHandler(nil)

	dense := mat.NewDense(2, 1, []float64{1, 0})
	dok := sparse.NewDOK(2, 2)
	dok.Set(0, 1, 5)
	csr := dok.ToCSR()

	out, err := combine([]mat.Matrix{dense, csr}, true)
	if err != nil {
		t.Fatalf("combine failed: %v", err)
	}

	if _, ok := out.(*sparse.CSR); !ok {
		t.Fatalf("output type = %T, want *sparse.CSR", out)
	}
	if out.At(0, 0) != 1 || out.At(0, 2) != 5 || out.At(1, 0) != 0 {
		t.Error("combined sparse values are wrong")
	}
	if warned != 1 {
		t.Errorf("dense promotion warnings = %d, want 1", warned)
	}
}

func TestCombineSparseMaterializedWithoutFlag(t *testing.T) {
	dok := sparse.NewDOK(2, 1)
	dok.Set(1, 0, 3)

	out, err := combine([]mat.Matrix{dok.ToCSR()}, false)
	if err != nil {
		t.Fatalf("combine failed: %v", err)
	}
	if _, ok := out.(*mat.Dense); !ok {
		t.Fatalf("output type = %T, want *mat.Dense", out)
	}
	if out.At(1, 0) != 3 {
		t.Errorf("out[1,0] = %v, want 3", out.At(1, 0))
	}
}

func TestCombineRowMismatch(t *testing.T) {
	a := mat.NewDense(2, 1, nil)
	b := mat.NewDense(3, 1, nil)

	_, err := combine([]mat.Matrix{a, b}, false)
	var de *errors.DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want DimensionError", err)
	}
	if de.Axis != 0 {
		t.Errorf("axis = %d, want 0 (rows)", de.Axis)
	}
}

func TestCombineEmpty(t *testing.T) {
	if _, err := combine(nil, false); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("error = %v, want ErrEmptyData", err)
	}
}

func TestAsColumn(t *testing.T) {
	v := mat.NewVecDense(3, []float64{1, 2, 3})
	out := asColumn(v)
	r, c := out.Dims()
	if r != 3 || c != 1 {
		t.Fatalf("dims = (%d,%d), want (3,1)", r, c)
	}
	if out.At(2, 0) != 3 {
		t.Errorf("out[2,0] = %v, want 3", out.At(2, 0))
	}

	// rank-2 input passes through untouched
	m := mat.NewDense(2, 2, nil)
	if asColumn(m) != mat.Matrix(m) {
		t.Error("asColumn should not touch rank-2 matrices")
	}
}
