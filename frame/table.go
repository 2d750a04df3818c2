package frame

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mapframe/pkg/errors"
)

// Table は列指向の具象コンテナ
// 全ての列は同じ行数を持つ
type Table struct {
	names   []string
	columns [][]float64
	index   map[string]int
}

// NewTable は列名と列データからTableを作成する
//
// 列名と列データは同じ数でなければならず、全ての列は同じ長さでなければならない。
func NewTable(names []string, columns [][]float64) (*Table, error) {
	if len(names) != len(columns) {
		return nil, errors.NewDimensionError("NewTable", len(names), len(columns), 1)
	}
	if len(names) == 0 {
		return nil, errors.NewModelError("NewTable", "no columns", errors.ErrEmptyData)
	}

	rows := len(columns[0])
	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := index[name]; dup {
			return nil, errors.NewValidationError("names", "duplicate column name", name)
		}
		if len(columns[i]) != rows {
			return nil, errors.NewDimensionError("NewTable", rows, len(columns[i]), 0)
		}
		index[name] = i
	}

	t := &Table{
		names:   append([]string(nil), names...),
		columns: make([][]float64, len(columns)),
		index:   index,
	}
	for i, col := range columns {
		t.columns[i] = append([]float64(nil), col...)
	}
	return t, nil
}

// NewTableFromMatrix は行列の各列を名前付き列としてTableを作成する
func NewTableFromMatrix(names []string, X mat.Matrix) (*Table, error) {
	r, c := X.Dims()
	if len(names) != c {
		return nil, errors.NewDimensionError("NewTableFromMatrix", c, len(names), 1)
	}
	columns := make([][]float64, c)
	for j := 0; j < c; j++ {
		col := make([]float64, r)
		mat.Col(col, j, X)
		columns[j] = col
	}
	return NewTable(names, columns)
}

// Len は行数を返す
func (t *Table) Len() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0])
}

// Column は単一列の値のコピーを返す
func (t *Table) Column(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrColumnNotFound, "frame: no column %q", name)
	}
	return append([]float64(nil), t.columns[i]...), nil
}

// Columns は指定した順序の列からなる行列を返す
func (t *Table) Columns(names []string) (*mat.Dense, error) {
	rows := t.Len()
	if rows == 0 {
		return nil, errors.NewModelError("Table.Columns", "no rows", errors.ErrEmptyData)
	}
	out := mat.NewDense(rows, len(names), nil)
	for j, name := range names {
		i, ok := t.index[name]
		if !ok {
			return nil, errors.Wrapf(errors.ErrColumnNotFound, "frame: no column %q", name)
		}
		out.SetCol(j, t.columns[i])
	}
	return out, nil
}

// ColumnNames は列名を定義順で返す
func (t *Table) ColumnNames() []string {
	return append([]string(nil), t.names...)
}

// Series は名前を持つ単一列のコンテナ
// 1列のFrameとして振る舞うため、ターゲット抽出にそのまま渡せる
type Series struct {
	name   string
	values []float64
}

// NewSeries は名前と値からSeriesを作成する
func NewSeries(name string, values []float64) *Series {
	return &Series{name: name, values: append([]float64(nil), values...)}
}

// Name は列名を返す
func (s *Series) Name() string { return s.name }

// Len は行数を返す
func (s *Series) Len() int { return len(s.values) }

// Column は列名が一致する場合に値のコピーを返す
func (s *Series) Column(name string) ([]float64, error) {
	if name != s.name {
		return nil, errors.Wrapf(errors.ErrColumnNotFound, "frame: no column %q", name)
	}
	return append([]float64(nil), s.values...), nil
}

// Columns は指定した列からなる行列を返す
func (s *Series) Columns(names []string) (*mat.Dense, error) {
	if len(s.values) == 0 {
		return nil, errors.NewModelError("Series.Columns", "no rows", errors.ErrEmptyData)
	}
	out := mat.NewDense(len(s.values), len(names), nil)
	for j, name := range names {
		if name != s.name {
			return nil, errors.Wrapf(errors.ErrColumnNotFound, "frame: no column %q", name)
		}
		out.SetCol(j, s.values)
	}
	return out, nil
}

// ColumnNames は列名を返す
func (s *Series) ColumnNames() []string { return []string{s.name} }

// Record は1行分の名前付き値
type Record = map[string]float64

// Records は行レコードの列。要求された列名ごとに各レコードから値を取り出す
// ことでコンテナとして振る舞う。行順は保存される。
type Records []Record

// Len は行数を返す
func (rs Records) Len() int { return len(rs) }

// Column は各レコードから同名の値を集めた1次元ベクトルを返す
func (rs Records) Column(name string) ([]float64, error) {
	out := make([]float64, len(rs))
	for i, rec := range rs {
		v, ok := rec[name]
		if !ok {
			return nil, errors.Wrapf(errors.ErrColumnNotFound, "frame: record %d has no column %q", i, name)
		}
		out[i] = v
	}
	return out, nil
}

// Columns は各レコードから指定した列を集めた行列を返す
func (rs Records) Columns(names []string) (*mat.Dense, error) {
	if len(rs) == 0 {
		return nil, errors.NewModelError("Records.Columns", "no rows", errors.ErrEmptyData)
	}
	out := mat.NewDense(len(rs), len(names), nil)
	for i, rec := range rs {
		for j, name := range names {
			v, ok := rec[name]
			if !ok {
				return nil, errors.Wrapf(errors.ErrColumnNotFound, "frame: record %d has no column %q", i, name)
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}

// ColumnNames は全レコードに共通する列名の和集合をソート順で返す
func (rs Records) ColumnNames() []string {
	seen := make(map[string]struct{})
	for _, rec := range rs {
		for name := range rec {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Coerce はRecordsを列和集合で1つのTableに正規化する
func (rs Records) Coerce() (*Table, error) {
	names := rs.ColumnNames()
	if len(names) == 0 {
		return nil, errors.NewModelError("Records.Coerce", "no columns", errors.ErrEmptyData)
	}
	columns := make([][]float64, len(names))
	for j, name := range names {
		col, err := rs.Column(name)
		if err != nil {
			return nil, err
		}
		columns[j] = col
	}
	return NewTable(names, columns)
}
