package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStandardScaler(t *testing.T) {
	tests := []struct {
		name      string
		data      []float64
		rows      int
		cols      int
		wantMean  []float64
		wantScale []float64
	}{
		{
			name:      "simple column",
			data:      []float64{1, 2, 3, 4, 5},
			rows:      5,
			cols:      1,
			wantMean:  []float64{3},
			wantScale: []float64{math.Sqrt(2)}, // population std dev
		},
		{
			name:      "constant column gets unit scale",
			data:      []float64{7, 7, 7},
			rows:      3,
			cols:      1,
			wantMean:  []float64{7},
			wantScale: []float64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			X := mat.NewDense(tt.rows, tt.cols, tt.data)
			s := NewStandardScalerDefault()
			if err := s.Fit(X); err != nil {
				t.Fatalf("Fit failed: %v", err)
			}

			for j := range tt.wantMean {
				if math.Abs(s.Mean[j]-tt.wantMean[j]) > 1e-10 {
					t.Errorf("Mean[%d] = %v, want %v", j, s.Mean[j], tt.wantMean[j])
				}
				if math.Abs(s.Scale[j]-tt.wantScale[j]) > 1e-10 {
					t.Errorf("Scale[%d] = %v, want %v", j, s.Scale[j], tt.wantScale[j])
				}
			}
		})
	}
}

func TestStandardScalerRoundTrip(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 100,
		2, 200,
		3, 300,
		4, 400,
	})

	s := NewStandardScalerDefault()
	scaled, err := s.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	restored, err := s.InverseTransform(scaled)
	if err != nil {
		t.Fatalf("InverseTransform failed: %v", err)
	}

	r, c := X.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.Abs(restored.At(i, j)-X.At(i, j)) > 1e-9 {
				t.Errorf("restored[%d,%d] = %v, want %v", i, j, restored.At(i, j), X.At(i, j))
			}
		}
	}
}

func TestStandardScalerDimensionMismatch(t *testing.T) {
	s := NewStandardScalerDefault()
	if err := s.Fit(mat.NewDense(3, 2, nil)); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if _, err := s.Transform(mat.NewDense(3, 5, nil)); err == nil {
		t.Error("Transform with wrong column count should fail")
	}
}
