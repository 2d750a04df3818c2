package errors

import (
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("Mapper", "Transform")
	if err == nil {
		t.Fatal("NewNotFittedError returned nil")
	}

	var nfe *NotFittedError
	if !As(err, &nfe) {
		t.Fatalf("error is not a *NotFittedError: %v", err)
	}
	if nfe.ModelName != "Mapper" || nfe.Method != "Transform" {
		t.Errorf("unexpected fields: %+v", nfe)
	}
}

func TestDimensionError(t *testing.T) {
	tests := []struct {
		name     string
		axis     int
		wantWord string
	}{
		{name: "row axis", axis: 0, wantWord: "rows"},
		{name: "column axis", axis: 1, wantWord: "columns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("combine", 5, 3, tt.axis)
			var de *DimensionError
			if !As(err, &de) {
				t.Fatalf("error is not a *DimensionError: %v", err)
			}
			if de.Expected != 5 || de.Got != 3 {
				t.Errorf("unexpected fields: %+v", de)
			}
			if got := err.Error(); !contains(got, tt.wantWord) {
				t.Errorf("Error() = %q, expected it to mention %q", got, tt.wantWord)
			}
		})
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	err := NewModelError("Mapper.Fit", "selector failed", ErrColumnNotFound)
	if !Is(err, ErrColumnNotFound) {
		t.Errorf("expected errors.Is to see through ModelError: %v", err)
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	w := NewDataConversionWarning("dense", "sparse", "sparse combination")
	Warn(w)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	var dcw *DataConversionWarning
	if !As(captured, &dcw) {
		t.Fatalf("captured warning has wrong type: %T", captured)
	}
	if dcw.FromType != "dense" || dcw.ToType != "sparse" {
		t.Errorf("unexpected fields: %+v", dcw)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
