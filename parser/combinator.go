// SPDX-License-Identifier: MIT
package parser

// REF: combinator vocabulary. https://docs.rs/nom/latest/nom/

import (
	"errors"
	"strings"
	"unicode/utf8"
)

type (
	// Parser is a function consuming input from the start of a Span.
	//
	// On success it yields the parsed value & a Span past the consumed text.
	// On failure it yields a *Error & the input Span untouched, leaving the
	// caller free to hand the same input to another Parser.
	Parser[T any] func(Span) (T, Span, error)
)

// horizontal flags the whitespace bytes discarded around tokens; newlines are
// structure, not padding.
var horizontal = [256]bool{
	' ':  true,
	'\t': true,
}

// Exact recognizes a literal token at the start of the Span.
func Exact(token string) Parser[string] {
	return func(s Span) (string, Span, error) {
		if !strings.HasPrefix(s.text, token) {
			return "", s, noMatch(s.loc)
		}

		return token, s.Advance(len(token)), nil
	}
}

// To maps a Parser's successes to a fixed value.
func To[T, U any](p Parser[T], value U) Parser[U] {
	return func(s Span) (U, Span, error) {
		_, rest, err := p(s)
		if err != nil {
			var zero U
			return zero, s, err
		}

		return value, rest, nil
	}
}

// Alt applies parsers in order against the same input, yielding the first
// success.
//
// Once every candidate fails the failure is a bare no-match at the start of
// the attempt; candidate failures are not ranked against each other.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(s Span) (T, Span, error) {
		for _, p := range parsers {
			value, rest, err := p(s)
			if err == nil {
				return value, rest, nil
			}
		}

		var zero T
		return zero, s, noMatch(s.loc)
	}
}

// Terminated applies p then next, discarding next's value.
func Terminated[T, U any](p Parser[T], next Parser[U]) Parser[T] {
	return func(s Span) (T, Span, error) {
		var zero T

		value, rest, err := p(s)
		if err != nil {
			return zero, s, err
		}

		if _, rest, err = next(rest); err != nil {
			return zero, s, err
		}

		return value, rest, nil
	}
}

// NotAhead succeeds when the Span does not start with r, consuming nothing
// either way.
//
// The end of input counts as a success. Guards a short operator against
// matching the head of a longer one.
func NotAhead(r rune) Parser[struct{}] {
	return func(s Span) (struct{}, Span, error) {
		if len(s.text) < 1 {
			return struct{}{}, s, nil
		}

		if next, _ := utf8.DecodeRuneInString(s.text); next == r {
			return struct{}{}, s, noMatch(s.loc)
		}

		return struct{}{}, s, nil
	}
}

// Padded applies p with horizontal whitespace discarded on both sides of the
// match.
//
// On failure the input Span is yielded untouched while the failure's Loc
// stays past the leading whitespace, at the character the attempt rejected.
func Padded[T any](p Parser[T]) Parser[T] {
	return func(s Span) (T, Span, error) {
		value, rest, err := p(skipHorizontal(s))
		if err != nil {
			var zero T
			return zero, s, err
		}

		return value, skipHorizontal(rest), nil
	}
}

// WithContext decorates p's failures with a fixed description, prepended so
// the outermost parser reads first; successes pass through untouched.
func WithContext[T any](label string, p Parser[T]) Parser[T] {
	return func(s Span) (T, Span, error) {
		value, rest, err := p(s)
		if err == nil {
			return value, rest, nil
		}

		var zero T

		var perr *Error
		if !errors.As(err, &perr) {
			return zero, s, &Error{Err: err, Context: []string{label}, Loc: s.loc}
		}

		return zero, s, perr.withLabel(label)
	}
}

// Observed invokes fn on p's successes with the parsed value & the Loc the
// match started at; failures pass through untouched.
//
// A nil fn disables the notification.
func Observed[T any](p Parser[T], fn func(T, Loc)) Parser[T] {
	return func(s Span) (T, Span, error) {
		value, rest, err := p(s)
		if err != nil {
			var zero T
			return zero, s, err
		}

		if fn != nil {
			fn(value, s.loc)
		}

		return value, rest, nil
	}
}

// skipHorizontal discards leading horizontal whitespace from a Span.
func skipHorizontal(s Span) Span {
	index := 0
	for index < len(s.text) && horizontal[s.text[index]] {
		index++
	}

	return s.Advance(index)
}
