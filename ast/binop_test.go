// SPDX-License-Identifier: MIT
package ast

import (
	"testing"
)

func TestBinOp_String(t *testing.T) {
	tests := []struct {
		name string
		op   BinOp
		want string
	}{
		{name: "and", op: And, want: "&&"},
		{name: "or", op: Or, want: "||"},
		{name: "lte", op: Lte, want: "<="},
		{name: "gte", op: Gte, want: ">="},
		{name: "lt", op: Lt, want: "<"},
		{name: "gt", op: Gt, want: ">"},
		{name: "eq", op: Eq, want: "=="},
		{name: "neq", op: Neq, want: "!="},
		{name: "bitwise and", op: BitAnd, want: "&"},
		{name: "bitwise or", op: BitOr, want: "|"},
		{name: "bitwise xor", op: BitXor, want: "^"},
		{name: "shift right", op: Shr, want: ">>"},
		{name: "shift left", op: Shl, want: "<<"},
		{name: "add", op: Add, want: "+"},
		{name: "sub", op: Sub, want: "-"},
		{name: "mul", op: Mul, want: "*"},
		{name: "div", op: Div, want: "/"},
		{name: "rem", op: Rem, want: "%"},
		{name: "outside the operator set", op: BinOp(99), want: "BinOp(99)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("BinOp.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBinOp_Precedence(t *testing.T) {
	tests := []struct {
		name string
		ops  []BinOp
		want int
	}{
		{name: "logical", ops: []BinOp{And, Or}, want: 1},
		{name: "comparison", ops: []BinOp{Lte, Gte, Lt, Gt, Eq, Neq}, want: 2},
		{name: "bitwise", ops: []BinOp{BitAnd, BitOr, BitXor, Shr, Shl}, want: 3},
		{name: "additive", ops: []BinOp{Add, Sub}, want: 4},
		{name: "multiplicative", ops: []BinOp{Mul, Div, Rem}, want: 5},
		{name: "outside the operator set", ops: []BinOp{BinOp(0), BinOp(99)}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, op := range tt.ops {
				if got := op.Precedence(); got != tt.want {
					t.Errorf("BinOp.Precedence() = %v for %v, want %v", got, op, tt.want)
				}
			}
		})
	}
}

// TestBinOp_Partition asserts the operator set is partitioned into disjoint,
// fully populated binding levels.
func TestBinOp_Partition(t *testing.T) {
	counts := make(map[int]int)
	for op := range binOpNames {
		level := op.Precedence()
		if level < MinPrecedence || level > MaxPrecedence {
			t.Errorf("BinOp.Precedence() = %v for %v, want within [%d, %d]", level, op, MinPrecedence, MaxPrecedence)
		}

		counts[level]++
	}

	wantCounts := map[int]int{1: 2, 2: 6, 3: 5, 4: 2, 5: 3}
	for level := MinPrecedence; level <= MaxPrecedence; level++ {
		if counts[level] != wantCounts[level] {
			t.Errorf("operator count = %v for level %d, want %v", counts[level], level, wantCounts[level])
		}
	}
}
