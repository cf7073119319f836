// SPDX-License-Identifier: MIT
package ast

import "fmt"

type (
	// BinOp int holding an identifier for the binary operator tokens.
	BinOp int
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_ BinOp = iota // Consume 0 to start actual numbering at 1.

	// Precedence level 1; loosest binding.

	And // `&&`.
	Or  // `||`.

	// Precedence level 2.

	Lte // `<=`.
	Gte // `>=`.
	Lt  // `<`.
	Gt  // `>`.
	Eq  // `==`.
	Neq // `!=`.

	// Precedence level 3.

	BitAnd // `&`.
	BitOr  // `|`.
	BitXor // `^`.
	Shr    // `>>`.
	Shl    // `<<`.

	// Precedence level 4.

	Add // `+`.
	Sub // `-`.

	// Precedence level 5; tightest binding.

	Mul // `*`.
	Div // `/`.
	Rem // `%`.
)

// Binding limits for BinOp precedence levels.
const (
	// MinPrecedence is the loosest BinOp binding level.
	MinPrecedence = 1

	// MaxPrecedence is the tightest BinOp binding level.
	MaxPrecedence = 5
)

// binOpNames maps a BinOp to its source spelling.
var binOpNames = map[BinOp]string{
	And:    "&&",
	Or:     "||",
	Lte:    "<=",
	Gte:    ">=",
	Lt:     "<",
	Gt:     ">",
	Eq:     "==",
	Neq:    "!=",
	BitAnd: "&",
	BitOr:  "|",
	BitXor: "^",
	Shr:    ">>",
	Shl:    "<<",
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Rem:    "%",
}

// String obtains the source spelling for a BinOp.
func (op BinOp) String() string {
	name, ok := binOpNames[op]
	if !ok {
		return fmt.Sprintf("BinOp(%d)", int(op))
	}

	return name
}

// Precedence obtains the binding level for a BinOp; MinPrecedence is the
// loosest & MaxPrecedence the tightest.
//
// Each BinOp belongs to exactly one level; 0 is returned for values outside
// the operator set.
func (op BinOp) Precedence() (level int) {
	switch op {
	case And, Or:
		level = 1
	case Lte, Gte, Lt, Gt, Eq, Neq:
		level = 2
	case BitAnd, BitOr, BitXor, Shr, Shl:
		level = 3
	case Add, Sub:
		level = 4
	case Mul, Div, Rem:
		level = 5
	}

	return
}
