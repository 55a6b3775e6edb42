// Package buffer provides the growable character store backing a text area.
//
// The buffer keeps two parallel arrays: one of rune codepoints and one of
// per-character colors. Both grow together in 64-rune blocks, doubling the
// previous capacity when it is exceeded, and never shrink. Mutation is
// append/remove only: removal shifts the tail left with bulk copies, and
// there are no in-place edits of interior ranges.
//
// The buffer also owns the replaced-character log. When the layout engine
// substitutes a codepoint the active face cannot display, the original is
// recorded here so it can be restored before a re-parse and reconstructed
// on read (selection copy).
package buffer
