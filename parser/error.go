// SPDX-License-Identifier: MIT
package parser

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// Error is a positioned parse failure, decorated with the context labels
	// of the parsers it crossed on its way up.
	Error struct {
		// Err is the underlying cause, ErrNoMatch unless a parser failed for
		// a reason of its own.
		Err error

		// Context holds failure descriptions, outermost parser first.
		Context []string

		// Loc is the position of the deepest failed parse attempt.
		Loc Loc
	}
)

// Parse failures are non-fatal; callers remain free to try another parser.
var (
	// ErrNoMatch is the uniform terminal cause for parser failures.
	ErrNoMatch = errors.New("no match")
)

// Error renders the failure as `line:col: label: ...: cause`.
func (e *Error) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: ", e.Loc)
	for _, label := range e.Context {
		b.WriteString(label)
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())

	return b.String()
}

// Unwrap obtains the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// noMatch instantiates an undecorated failure at loc.
func noMatch(loc Loc) *Error { return &Error{Err: ErrNoMatch, Loc: loc} }

// withLabel copies the Error, prepending label to its Context.
//
// The receiver is left untouched; the deepest failure's Loc & cause carry
// over to the copy.
func (e *Error) withLabel(label string) *Error {
	context := make([]string, 0, len(e.Context)+1)
	context = append(context, label)
	context = append(context, e.Context...)

	return &Error{Err: e.Err, Context: context, Loc: e.Loc}
}
