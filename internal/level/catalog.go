// internal/level/catalog.go
package level

import (
	"fmt"
)

// カーソル移動トークン。フロントエンドがアニメーション再生に使う語彙で、
// サーバー側では解釈しない。
const (
	MoveLeft  = "left"
	MoveRight = "right"
	MoveDown  = "down"
	MoveUp    = "up"
	MoveSpace = "space"
)

// Entry は1レベル分の静的データです。
type Entry struct {
	Number    int      // 1始まりの連番
	Code      string   // お手本コード（表示用テキスト）
	Movements []string // 移動トークン列
	Cursor    []int    // 各トークン時点のカーソル行。Movements と同じ長さ
}

// Catalog は全レベルの静的カタログです。起動時に一度構築され、以後不変。
type Catalog struct {
	entries []Entry
}

// --- レベル定義（コード・移動・カーソルは同じ並び順） ---

var codeLevels = []string{
	"forward 10",
	"forward 20",
	"forward 10\nforward 20\nforward 10",
	"forward 20\nturnleft 90\nforward 20",
}

var movementLevels = [][]string{
	{MoveSpace},
	{MoveSpace, MoveSpace},
	{MoveSpace, MoveSpace, MoveSpace, MoveSpace},
	{MoveSpace, MoveSpace, MoveLeft, MoveSpace, MoveSpace},
}

var cursorLevels = [][]int{
	{0},
	{0, 0},
	{0, 1, 1, 2},
	{0, 0, 1, 2, 2},
}

// New はコンパイル時定義からカタログを構築します。
// リスト長の不整合はデプロイ時の致命的エラーであり、リクエスト時には決して起きない。
func New() (*Catalog, error) {
	return build(codeLevels, movementLevels, cursorLevels)
}

func build(codes []string, movements [][]string, cursors [][]int) (*Catalog, error) {
	if len(codes) != len(movements) || len(codes) != len(cursors) {
		return nil, fmt.Errorf("level catalog is malformed: code=%d movements=%d cursor=%d entries",
			len(codes), len(movements), len(cursors))
	}

	entries := make([]Entry, 0, len(codes))
	for i := range codes {
		if len(movements[i]) != len(cursors[i]) {
			return nil, fmt.Errorf("level %d is malformed: %d movements but %d cursor positions",
				i+1, len(movements[i]), len(cursors[i]))
		}
		entries = append(entries, Entry{
			Number:    i + 1,
			Code:      codes[i],
			Movements: movements[i],
			Cursor:    cursors[i],
		})
	}
	return &Catalog{entries: entries}, nil
}

// Total はレベル総数を返します。
func (c *Catalog) Total() int {
	return len(c.entries)
}

// Contains は n が [1, Total] に収まるかを返します。
func (c *Catalog) Contains(n int) bool {
	return n >= 1 && n <= len(c.entries)
}

// Get は 1 <= n <= Total の範囲でレベルデータを返します。範囲外はエラー。
func (c *Catalog) Get(n int) (Entry, error) {
	if !c.Contains(n) {
		return Entry{}, fmt.Errorf("level %d out of range [1, %d]", n, len(c.entries))
	}
	return c.entries[n-1], nil
}
