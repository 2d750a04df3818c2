package frame

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mapframe/pkg/errors"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable(
		[]string{"a", "b", "c"},
		[][]float64{
			{1, 2, 3},
			{4, 5, 6},
			{7, 8, 9},
		},
	)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return tbl
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		columns [][]float64
		wantErr bool
	}{
		{
			name:    "valid",
			names:   []string{"a", "b"},
			columns: [][]float64{{1, 2}, {3, 4}},
			wantErr: false,
		},
		{
			name:    "name count mismatch",
			names:   []string{"a"},
			columns: [][]float64{{1, 2}, {3, 4}},
			wantErr: true,
		},
		{
			name:    "ragged columns",
			names:   []string{"a", "b"},
			columns: [][]float64{{1, 2}, {3}},
			wantErr: true,
		},
		{
			name:    "duplicate names",
			names:   []string{"a", "a"},
			columns: [][]float64{{1, 2}, {3, 4}},
			wantErr: true,
		},
		{
			name:    "no columns",
			names:   []string{},
			columns: [][]float64{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.names, tt.columns)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTable() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTableColumn(t *testing.T) {
	tbl := newTestTable(t)

	col, err := tbl.Column("b")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	want := []float64{4, 5, 6}
	for i, v := range want {
		if col[i] != v {
			t.Errorf("Column(b)[%d] = %v, want %v", i, col[i], v)
		}
	}

	// returned slice must be a copy
	col[0] = 99
	again, _ := tbl.Column("b")
	if again[0] != 4 {
		t.Error("Column returned a view instead of a copy")
	}

	if _, err := tbl.Column("missing"); !errors.Is(err, errors.ErrColumnNotFound) {
		t.Errorf("Column(missing) error = %v, want ErrColumnNotFound", err)
	}
}

func TestTableColumnsOrder(t *testing.T) {
	tbl := newTestTable(t)

	// requested order, not declaration order
	m, err := tbl.Columns([]string{"c", "a"})
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	r, c := m.Dims()
	if r != 3 || c != 2 {
		t.Fatalf("Columns dims = (%d,%d), want (3,2)", r, c)
	}
	if m.At(0, 0) != 7 || m.At(0, 1) != 1 {
		t.Errorf("column order not preserved: row0 = [%v %v]", m.At(0, 0), m.At(0, 1))
	}
}

func TestNewTableFromMatrix(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	tbl, err := NewTableFromMatrix([]string{"x", "y"}, src)
	if err != nil {
		t.Fatalf("NewTableFromMatrix failed: %v", err)
	}
	col, err := tbl.Column("y")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if col[0] != 2 || col[1] != 4 {
		t.Errorf("Column(y) = %v, want [2 4]", col)
	}
}

func TestSeriesAsFrame(t *testing.T) {
	s := NewSeries("price", []float64{10, 20, 30})

	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}

	col, err := s.Column("price")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if col[2] != 30 {
		t.Errorf("Column(price)[2] = %v, want 30", col[2])
	}

	if _, err := s.Column("other"); !errors.Is(err, errors.ErrColumnNotFound) {
		t.Errorf("Column(other) error = %v, want ErrColumnNotFound", err)
	}

	m, err := s.Columns([]string{"price"})
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if r, c := m.Dims(); r != 3 || c != 1 {
		t.Errorf("Columns dims = (%d,%d), want (3,1)", r, c)
	}
}

func TestRecords(t *testing.T) {
	rs := Records{
		{"a": 1, "b": 2},
		{"a": 3, "b": 4, "extra": 9},
	}

	col, err := rs.Column("a")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if col[0] != 1 || col[1] != 3 {
		t.Errorf("Column(a) = %v, want [1 3]", col)
	}

	m, err := rs.Columns([]string{"b", "a"})
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if m.At(1, 0) != 4 || m.At(1, 1) != 3 {
		t.Errorf("row1 = [%v %v], want [4 3]", m.At(1, 0), m.At(1, 1))
	}

	// a key missing from one record propagates an error
	if _, err := rs.Column("extra"); !errors.Is(err, errors.ErrColumnNotFound) {
		t.Errorf("Column(extra) error = %v, want ErrColumnNotFound", err)
	}
}

func TestRecordsCoerce(t *testing.T) {
	rs := Records{
		{"b": 2, "a": 1},
		{"b": 4, "a": 3},
	}
	tbl, err := rs.Coerce()
	if err != nil {
		t.Fatalf("Coerce failed: %v", err)
	}
	names := tbl.ColumnNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("ColumnNames = %v, want [a b]", names)
	}
	if tbl.Len() != 2 {
		t.Errorf("Len = %d, want 2", tbl.Len())
	}
}

func TestUnwrap(t *testing.T) {
	tbl := newTestTable(t)

	var f Frame = Wrap(Wrap(tbl))
	got := Unwrap(f)
	if got != Frame(tbl) {
		t.Error("Unwrap did not reach the base container")
	}

	// selection also works through delegation without explicit unwrapping
	col, err := f.Column("a")
	if err != nil {
		t.Fatalf("Column through wrapper failed: %v", err)
	}
	if col[0] != 1 {
		t.Errorf("Column(a)[0] = %v, want 1", col[0])
	}
}
