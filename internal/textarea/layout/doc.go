// Package layout computes wrapped line boundaries for a text area.
//
// The line index is an ordered sequence of (start, length) spans over the
// character buffer. After a mutation only the tail of the index is
// recomputed: parsing restarts from the first character of the last
// existing line and runs to the end of the buffer. A full reflow happens
// only when the whole buffer is replaced, the face changes, or the
// container width changes.
//
// The parser performs tab-stop expansion, newline termination (\n and
// \r\n as one unit), word wrapping at the last whitespace break
// candidate, and missing-glyph substitution recorded in the buffer's
// replacement log.
//
// The package also provides the width-measurement helpers pointer hit
// testing and highlight geometry are built on. Measurement walks a line
// with the same accumulation rules as the parser, so both always agree
// on character positions.
package layout
