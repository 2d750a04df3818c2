package mapper

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mapframe/frame"
	"github.com/YuminosukeSato/mapframe/pkg/errors"
)

// Selector はコンテナのどの列を選択するかを表すタグ付きバリアント
//
// 単一列名のセレクタはベクトル（N×1列として正規化される）を、
// 列名リストのセレクタは指定順の列を持つ行列を生成する。
type Selector struct {
	names []string
	list  bool
}

// Col は単一列名のSelectorを作成する
func Col(name string) Selector {
	return Selector{names: []string{name}}
}

// Cols は列名リストのSelectorを作成する。列順は保存される。
func Cols(names ...string) Selector {
	return Selector{names: append([]string(nil), names...), list: true}
}

// IsList はセレクタが列名リスト形式かどうかを返す
func (s Selector) IsList() bool { return s.list }

// Names は選択対象の列名を返す
func (s Selector) Names() []string {
	return append([]string(nil), s.names...)
}

// String はセレクタの文字列表現を返す
func (s Selector) String() string {
	if !s.list {
		return s.names[0]
	}
	return fmt.Sprintf("[%s]", strings.Join(s.names, ", "))
}

// resolve はコンテナからセレクタに対応する部分を取り出す
//
// 薄いラッパーは選択前に剥がされる。単一列名はベクトルとして解決され、
// 列ベクトル規則によりN×1の列行列へ正規化される。列名リストは指定順の
// 列を持つ行列として解決される。列が存在しない場合のエラーはコンテナの
// ものをそのまま伝播する。
func (s Selector) resolve(f frame.Frame) (mat.Matrix, error) {
	f = frame.Unwrap(f)
	if !s.list {
		return s.resolveVector(f)
	}
	return s.resolveMatrix(f)
}

// resolveVector は単一列名のセレクタを解決し、N×1の列行列を返す
func (s Selector) resolveVector(f frame.Frame) (mat.Matrix, error) {
	col, err := f.Column(s.names[0])
	if err != nil {
		return nil, err
	}
	if len(col) == 0 {
		return nil, errors.NewModelError("Selector.resolve",
			fmt.Sprintf("column %q is empty", s.names[0]), errors.ErrEmptyData)
	}
	return mat.NewVecDense(len(col), col), nil
}

// resolveMatrix は列名リストのセレクタを解決し、指定順の行列を返す
func (s Selector) resolveMatrix(f frame.Frame) (mat.Matrix, error) {
	if len(s.names) == 0 {
		return nil, errors.NewValueError("Selector.resolve", "selector has no column names")
	}
	return f.Columns(s.names)
}

// asColumn は1次元の出力をN×1の列行列に正規化する（列ベクトル規則）
//
// 変換器が何次元の結果を返しても、結合前には必ずランク2になることを保証する。
func asColumn(m mat.Matrix) mat.Matrix {
	v, ok := m.(mat.Vector)
	if !ok {
		return m
	}
	n := v.Len()
	col := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		col.Set(i, 0, v.AtVec(i))
	}
	return col
}
