// Package frame は表形式データのコンテナ抽象を提供する。
//
// コンテナは列名による部分選択だけを契約とする小さなインターフェースで、
// 具象実装として列指向のTable、単一列のSeries、行レコード列のRecords、
// そして薄いアダプタのWrapperを持つ。
package frame

import (
	"gonum.org/v1/gonum/mat"
)

// Frame は列名で部分選択できる表形式コンテナのインターフェース
type Frame interface {
	// Len は行数を返す
	Len() int

	// Column は単一列の値を1次元ベクトルとして返す
	Column(name string) ([]float64, error)

	// Columns は指定した順序の列からなる行列を返す
	Columns(names []string) (*mat.Dense, error)

	// ColumnNames は列名を定義順で返す
	ColumnNames() []string
}

// Unwrapper は薄いラッパーコンテナが満たすインターフェース
type Unwrapper interface {
	Unwrap() Frame
}

// Unwrap はラッパーを再帰的に剥がして基底のコンテナを返す
func Unwrap(f Frame) Frame {
	for {
		u, ok := f.(Unwrapper)
		if !ok {
			return f
		}
		f = u.Unwrap()
	}
}

// Wrapper はFrameを包む薄いアダプタ。交差検証などでコンテナに
// 付随情報を持たせたまま受け渡すために使う。選択操作は基底コンテナへ
// 委譲される。
type Wrapper struct {
	Frame
}

// Wrap はコンテナをWrapperで包む
func Wrap(f Frame) *Wrapper {
	return &Wrapper{Frame: f}
}

// Unwrap は包まれたコンテナを返す
func (w *Wrapper) Unwrap() Frame {
	return w.Frame
}
