package model

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// RegisterTransformer はgobエンコーディングで使用する変換器の具象型を登録する
//
// インターフェース値として保存される変換器は、デコード前に具象型の登録が
// 必要になる。各変換器パッケージはinitで自身の型を登録する。
func RegisterTransformer(t Transformer) {
	gob.Register(t)
}

// SaveModel はモデルをファイルに保存する
//
// パラメータ:
//   - model: 保存するモデル
//   - filename: 保存先のファイルパス
//
// 戻り値:
//   - error: 保存に失敗した場合のエラー
func SaveModel(model interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(model); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}

	return nil
}

// LoadModel はファイルからモデルを読み込む
//
// パラメータ:
//   - model: 読み込み先のモデル（ポインタ）
//   - filename: 読み込み元のファイルパス
//
// 戻り値:
//   - error: 読み込みに失敗した場合のエラー
func LoadModel(model interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(model); err != nil {
		return fmt.Errorf("failed to decode model: %w", err)
	}

	return nil
}

// SaveModelToWriter はモデルをio.Writerに保存する
func SaveModelToWriter(model interface{}, w io.Writer) error {
	encoder := gob.NewEncoder(w)
	if err := encoder.Encode(model); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	return nil
}

// LoadModelFromReader はio.Readerからモデルを読み込む
func LoadModelFromReader(model interface{}, r io.Reader) error {
	decoder := gob.NewDecoder(r)
	if err := decoder.Decode(model); err != nil {
		return fmt.Errorf("failed to decode model: %w", err)
	}
	return nil
}
