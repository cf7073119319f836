// SPDX-License-Identifier: MIT
package parser

import "fmt"

type (
	// Loc is a 1-based line & column position within some source text.
	Loc struct {
		Line int
		Col  int
	}

	// Span is an immutable window over the unconsumed remainder of some
	// source text, annotated with the Loc of its first character.
	//
	// Operations yield new Span values; a Span never moves backward.
	Span struct {
		text string
		loc  Loc
	}
)

// firstLine & firstCol anchor the 1-based coordinate space.
const (
	firstLine = 1
	firstCol  = 1
)

// NewSpan instantiates a Span over a source text, positioned at its start.
func NewSpan(text string) Span {
	return Span{text: text, loc: Loc{Line: firstLine, Col: firstCol}}
}

// NewSpanAt instantiates a Span over the remainder of some source text, with
// line & col locating the remainder's first character.
//
// Coordinates below the 1-based floor are raised to it.
func NewSpanAt(text string, line, col int) Span {
	if line < firstLine {
		line = firstLine
	}
	if col < firstCol {
		col = firstCol
	}

	return Span{text: text, loc: Loc{Line: line, Col: col}}
}

// Text obtains the unconsumed text.
func (s Span) Text() string { return s.text }

// Loc obtains the position of the Span's first character.
func (s Span) Loc() Loc { return s.loc }

// Len obtains the number of unconsumed bytes.
func (s Span) Len() int { return len(s.text) }

// Advance consumes n bytes, yielding a Span over the remaining text with its
// Loc pushed past the consumed runes.
//
// A newline moves the Loc to the start of the next line; any other rune
// advances the column by one. n is clamped to [0, Len()].
func (s Span) Advance(n int) Span {
	if n < 1 {
		return s
	}
	if n > len(s.text) {
		n = len(s.text)
	}

	next := Span{text: s.text[n:], loc: s.loc}
	for _, r := range s.text[:n] {
		if r == '\n' {
			next.loc.Line++
			next.loc.Col = firstCol
			continue
		}

		next.loc.Col++
	}

	return next
}

// String renders the Loc as `line:col`.
func (l Loc) String() string { return fmt.Sprintf("%d:%d", l.Line, l.Col) }
