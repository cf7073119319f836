// SPDX-License-Identifier: MIT
package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/DarkDrek/pijama/ast"
)

type (
	// Observer is notified of each recognized operator together with the Loc
	// its match started at, past any leading whitespace.
	//
	// An Observer must be safe for concurrent use; see Survey.
	Observer func(op ast.BinOp, loc Loc)
)

// Static failure descriptions, one per precedence level.
const (
	logicalLabel        = "expected logical operator (&&, ||)"
	comparisonLabel     = "expected comparison operator (<=, >=, <, >, ==, !=)"
	bitwiseLabel        = "expected binary operator (&, |, ^, <<, >>)"
	additiveLabel       = "expected binary operator (+, -)"
	multiplicativeLabel = "expected binary operator (*, /, %)"
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// observer is notified on each recognized operator; logObserver unless
// replaced.
var observer Observer = logObserver

// SetObserver configures the Observer notified by the operator recognizers.
//
// A nil Observer disables notification. Like SetLogger this is setup-time
// configuration, not synchronized with in-flight parses.
func SetObserver(fn Observer) { observer = fn }

// logObserver traces recognized operators through the package logger.
func logObserver(op ast.BinOp, loc Loc) {
	fLogger.Debugf("parsed %s operator %s at %s", opClass(op), op, loc)
}

// opClass names an operator's class the way the failure descriptions do.
func opClass(op ast.BinOp) (class string) {
	switch op.Precedence() {
	case 1:
		class = "logical"
	case 2:
		class = "comparison"
	default:
		class = "binary"
	}

	return
}

// notify forwards a recognition to the configured observer.
func notify(op ast.BinOp, loc Loc) {
	if observer == nil {
		return
	}

	observer(op, loc)
}

// The operator recognizers, one per precedence level, composed once at
// package initialization.
//
// Candidates are ordered so a longer spelling is tried before any operator
// prefixing it; a single-character spelling that begins a longer operator
// carries a lookahead guard instead.
var (
	binOp1 = levelParser(logicalLabel,
		To(Exact("&&"), ast.And),
		To(Exact("||"), ast.Or),
	)

	binOp2 = levelParser(comparisonLabel,
		To(Exact("<="), ast.Lte),
		To(Exact(">="), ast.Gte),
		To(Terminated(Exact("<"), NotAhead('<')), ast.Lt),
		To(Terminated(Exact(">"), NotAhead('>')), ast.Gt),
		To(Exact("=="), ast.Eq),
		To(Exact("!="), ast.Neq),
	)

	binOp3 = levelParser(bitwiseLabel,
		To(Terminated(Exact("&"), NotAhead('&')), ast.BitAnd),
		To(Terminated(Exact("|"), NotAhead('|')), ast.BitOr),
		To(Exact("^"), ast.BitXor),
		To(Exact(">>"), ast.Shr),
		To(Exact("<<"), ast.Shl),
	)

	binOp4 = levelParser(additiveLabel,
		To(Exact("+"), ast.Add),
		To(Exact("-"), ast.Sub),
	)

	binOp5 = levelParser(multiplicativeLabel,
		To(Exact("*"), ast.Mul),
		To(Exact("/"), ast.Div),
		To(Exact("%"), ast.Rem),
	)

	// binOps indexes the recognizers by precedence level, loosest first.
	binOps = []Parser[ast.BinOp]{binOp1, binOp2, binOp3, binOp4, binOp5}
)

// levelParser assembles the recognizer for one precedence level: an ordered
// choice over the level's candidates, decorated with its failure description,
// notifying the package Observer & trimmed of surrounding whitespace.
func levelParser(label string, candidates ...Parser[ast.BinOp]) Parser[ast.BinOp] {
	return Padded(WithContext(label, Observed(Alt(candidates...), notify)))
}

// BinOp1 recognizes a precedence level 1 (logical) operator at the start of
// the Span: `&&` or `||`.
//
// The operator may be surrounded by zero or more spaces or tabs; both sides
// are consumed. On failure the input Span is yielded untouched & the error is
// a *Error carrying the level's description, positioned past any leading
// whitespace.
func BinOp1(s Span) (ast.BinOp, Span, error) { return binOp1(s) }

// BinOp2 recognizes a precedence level 2 (comparison) operator: `<=`, `>=`,
// `<`, `>`, `==` or `!=`.
//
// `<` & `>` are rejected when they begin the `<<` & `>>` operators. The
// whitespace & failure contract matches BinOp1.
func BinOp2(s Span) (ast.BinOp, Span, error) { return binOp2(s) }

// BinOp3 recognizes a precedence level 3 (bitwise & shift) operator: `&`,
// `|`, `^`, `<<` or `>>`.
//
// `&` & `|` are rejected when they begin the `&&` & `||` operators. The
// whitespace & failure contract matches BinOp1.
func BinOp3(s Span) (ast.BinOp, Span, error) { return binOp3(s) }

// BinOp4 recognizes a precedence level 4 (additive) operator: `+` or `-`.
//
// The whitespace & failure contract matches BinOp1.
func BinOp4(s Span) (ast.BinOp, Span, error) { return binOp4(s) }

// BinOp5 recognizes a precedence level 5 (multiplicative) operator: `*`, `/`
// or `%`.
//
// The whitespace & failure contract matches BinOp1.
func BinOp5(s Span) (ast.BinOp, Span, error) { return binOp5(s) }
