// Package piece holds the presentations a rendered grid cell can take.
package piece

import (
	"math"
	"strconv"

	nt "tablo/entity"
)

// Piece is a rendered cell.
type Piece interface {
	Render() string
}

// Empty is a blank cell.
type Empty struct{}

func (empty Empty) Render() string {
	return ""
}

// Label is a cell shown as text.
type Label struct {
	text string
}

func NewLabel(text string) Label {
	return Label{text: text}
}

func (l Label) Render() string {
	return l.text
}

// Number is a cell shown as a number.
// Content that does not convert renders as NaN rather than as its text.
type Number struct {
	value float64
}

func NewNumber(val nt.Value) Number {
	f, _ := val.Number() // NaN on failure
	return Number{value: f}
}

// Value returns the number held.
func (n Number) Value() float64 {
	return n.value
}

func (n Number) Render() string {
	if math.IsNaN(n.value) {
		return "NaN"
	}
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}
