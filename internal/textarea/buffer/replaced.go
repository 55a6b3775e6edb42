package buffer

import "sort"

// Replacement records one glyph substitution: the original codepoint
// that was stored at Index before the layout engine replaced it.
type Replacement struct {
	Index    int
	Original rune
}

// replacedLog is an ordered ledger of glyph substitutions.
// Indices are strictly increasing.
type replacedLog struct {
	entries []Replacement
}

func (l *replacedLog) reset() {
	l.entries = l.entries[:0]
}

// record adds a substitution, keeping entries sorted by index.
// Recording an index that is already present overwrites it.
func (l *replacedLog) record(index int, original rune) {
	i := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].Index >= index
	})
	if i < len(l.entries) && l.entries[i].Index == index {
		l.entries[i].Original = original
		return
	}
	l.entries = append(l.entries, Replacement{})
	copy(l.entries[i+1:], l.entries[i:])
	l.entries[i] = Replacement{Index: index, Original: original}
}

// truncateFrom drops all entries at or past the given index.
func (l *replacedLog) truncateFrom(index int) {
	i := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].Index >= index
	})
	l.entries = l.entries[:i]
}

// adjustForRemoval drops entries inside the removed range and shifts
// entries past it left by count.
func (l *replacedLog) adjustForRemoval(start, count int) {
	out := l.entries[:0]
	for _, e := range l.entries {
		switch {
		case e.Index < start:
			out = append(out, e)
		case e.Index >= start+count:
			e.Index -= count
			out = append(out, e)
		}
	}
	l.entries = out
}

// originalAt returns the original codepoint recorded for index, if any.
func (l *replacedLog) originalAt(index int) (rune, bool) {
	i := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].Index >= index
	})
	if i < len(l.entries) && l.entries[i].Index == index {
		return l.entries[i].Original, true
	}
	return 0, false
}

// RecordReplacement logs that the character at index was substituted and
// remembers its original codepoint. An existing entry for the index is
// kept: the oldest original wins, so repeated substitution of the same
// slot cannot lose the true source character.
func (b *Buffer) RecordReplacement(index int, original rune) {
	if _, ok := b.replaced.originalAt(index); ok {
		return
	}
	b.replaced.record(index, original)
}

// RestoreReplacedFrom writes the original codepoints back into the
// buffer for every logged substitution at or past start, then drops
// those log entries. Called before a re-parse so substitution decisions
// are recomputed against the current face.
func (b *Buffer) RestoreReplacedFrom(start int) {
	i := sort.Search(len(b.replaced.entries), func(i int) bool {
		return b.replaced.entries[i].Index >= start
	})
	for _, e := range b.replaced.entries[i:] {
		if e.Index < b.length {
			b.chars[e.Index] = e.Original
		}
	}
	b.replaced.truncateFrom(start)
}

// OriginalText reconstructs the source text for [start, start+count),
// reading originals from the replacement log where substitutions were
// made and stored characters everywhere else.
func (b *Buffer) OriginalText(start, count int) string {
	out := make([]rune, 0, count)
	for i := start; i < start+count && i < b.length; i++ {
		if orig, ok := b.replaced.originalAt(i); ok {
			out = append(out, orig)
		} else {
			out = append(out, b.chars[i])
		}
	}
	return string(out)
}

// Replacements returns a copy of the substitution ledger, sorted by index.
func (b *Buffer) Replacements() []Replacement {
	out := make([]Replacement, len(b.replaced.entries))
	copy(out, b.replaced.entries)
	return out
}
