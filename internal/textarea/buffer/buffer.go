package buffer

import (
	"github.com/dshills/textwell/internal/textarea/core"
)

// blockSize is the granularity of capacity growth, in runes.
const blockSize = 64

// Buffer is a growable store of characters with per-character colors.
// It is owned exclusively by one text area and is not safe for
// concurrent use.
type Buffer struct {
	chars  []rune
	colors []core.Color
	length int

	replaced replacedLog
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the current capacity in characters.
func (b *Buffer) Cap() int {
	return len(b.chars)
}

// At returns the character at the given index.
// The index must be in [0, Len()).
func (b *Buffer) At(i int) rune {
	return b.chars[i]
}

// ColorAt returns the color of the character at the given index.
func (b *Buffer) ColorAt(i int) core.Color {
	return b.colors[i]
}

// Chars returns the live character slice for [start, start+count).
// The slice aliases buffer storage and is invalidated by mutation.
func (b *Buffer) Chars(start, count int) []rune {
	return b.chars[start : start+count]
}

// Colors returns the live color slice for [start, start+count).
// The slice aliases buffer storage and is invalidated by mutation.
func (b *Buffer) Colors(start, count int) []core.Color {
	return b.colors[start : start+count]
}

// SetChar overwrites the character at the given index without touching
// its color. Used by the layout engine for glyph substitution.
func (b *Buffer) SetChar(i int, r rune) {
	b.chars[i] = r
}

// SetText replaces the entire buffer content with text, all in one color.
// The replaced-character log is discarded.
func (b *Buffer) SetText(text string, color core.Color) {
	b.length = 0
	b.replaced.reset()
	if text == "" {
		return
	}
	b.AppendString(text, color)
}

// AppendString appends text in a single color.
func (b *Buffer) AppendString(text string, color core.Color) {
	runes := []rune(text)
	b.grow(len(runes))
	copy(b.chars[b.length:], runes)
	for i := range runes {
		b.colors[b.length+i] = color
	}
	b.length += len(runes)
}

// Append appends characters with per-character colors.
// len(colors) must equal len(chars).
func (b *Buffer) Append(chars []rune, colors []core.Color) error {
	if len(colors) != len(chars) {
		return ErrRangeInvalid
	}
	b.grow(len(chars))
	copy(b.chars[b.length:], chars)
	copy(b.colors[b.length:], colors)
	b.length += len(chars)
	return nil
}

// AppendRange appends chars[start:start+count] in a single color.
// Fails with a range error if start is out of bounds or the range
// exceeds the source span. No partial mutation occurs on failure.
func (b *Buffer) AppendRange(chars []rune, start, count int, color core.Color) error {
	if start < 0 || start >= len(chars) {
		return ErrIndexOutOfRange
	}
	if count <= 0 {
		return ErrCountInvalid
	}
	if start+count > len(chars) {
		return ErrRangeInvalid
	}

	b.grow(count)
	copy(b.chars[b.length:], chars[start:start+count])
	for i := 0; i < count; i++ {
		b.colors[b.length+i] = color
	}
	b.length += count
	return nil
}

// Remove deletes count characters starting at start, shifting the tail
// left. Fails with a range error on a contract violation; no partial
// mutation occurs on failure. Replacement-log entries inside the removed
// range are dropped and entries past it are shifted.
func (b *Buffer) Remove(start, count int) error {
	if start < 0 || start >= b.length {
		return ErrIndexOutOfRange
	}
	if count <= 0 {
		return ErrCountInvalid
	}
	if start+count > b.length {
		return ErrRangeInvalid
	}

	copy(b.chars[start:], b.chars[start+count:b.length])
	copy(b.colors[start:], b.colors[start+count:b.length])
	b.length -= count
	b.replaced.adjustForRemoval(start, count)
	return nil
}

// Clear resets the buffer to empty. Capacity is retained.
func (b *Buffer) Clear() {
	b.length = 0
	b.replaced.reset()
}

// String returns the buffer content as stored, substitutions included.
func (b *Buffer) String() string {
	return string(b.chars[:b.length])
}

// SetColors overwrites the colors for [start, start+count).
func (b *Buffer) SetColors(start int, colors []core.Color) {
	copy(b.colors[start:], colors)
}

// grow ensures capacity for n more characters. Capacity doubles when
// exceeded and is rounded up to a whole number of 64-rune blocks.
func (b *Buffer) grow(n int) {
	need := b.length + n
	if need <= len(b.chars) {
		return
	}

	newCap := len(b.chars) * 2
	if newCap < need {
		newCap = need
	}
	newCap = roundUpBlock(newCap)

	chars := make([]rune, newCap)
	colors := make([]core.Color, newCap)
	copy(chars, b.chars[:b.length])
	copy(colors, b.colors[:b.length])
	b.chars = chars
	b.colors = colors
}

// roundUpBlock rounds n up to the next multiple of blockSize.
func roundUpBlock(n int) int {
	return (n + blockSize - 1) / blockSize * blockSize
}
