// SPDX-License-Identifier: MIT
package parser

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"
	"golang.org/x/exp/slices"

	"github.com/DarkDrek/pijama/ast"
)

type (
	// Match reports one precedence level accepting the surveyed Span.
	Match struct {
		// Rest is the Span past the operator & its surrounding whitespace.
		Rest Span

		// Op is the recognized operator.
		Op ast.BinOp

		// Precedence is the accepting level, within
		// [ast.MinPrecedence, ast.MaxPrecedence].
		Precedence int
	}
)

// Survey errors.
var (
	ErrSurveyOperators = errors.New("failed to survey operators")
)

// Survey applies every operator recognizer to independent copies of the Span
// concurrently, reporting the precedence levels that accept it.
//
// Matches are ordered by ascending precedence; an empty result with a nil
// error means no level recognizes an operator here. The reference parse path
// stays sequential (BinOp1 through BinOp5); Survey serves diagnostics &
// tooling asking which operator class could start a source remainder.
func Survey(ctx context.Context, s Span, options ...Option) (matches []Match, err error) {
	defer func() {
		if err != nil {
			matches = nil
			err = fmt.Errorf("%w: %v", ErrSurveyOperators, err)
		}
	}()

	o := NewOpts()
	for _, option := range options {
		option(o)
	}
	o.Validate()

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
		var pool *ants.Pool
		if pool, err = ants.NewPool(o.PoolSize); err != nil {
			return
		}
		defer pool.Release()

		var (
			mutex sync.Mutex
			wg    sync.WaitGroup
		)

		matches = make([]Match, 0, len(binOps))

		var submitErr error
		for index := range binOps {
			level, recognize := index+1, binOps[index]

			wg.Add(1)
			if submitErr = pool.Submit(func() {
				defer wg.Done()

				op, rest, matchErr := recognize(s)
				if matchErr != nil {
					return
				}

				mutex.Lock()
				matches = append(matches, Match{Rest: rest, Op: op, Precedence: level})
				mutex.Unlock()
			}); submitErr != nil {
				// Balance the failed submission before bailing out.
				wg.Done()
				break
			}
		}
		wg.Wait()

		if err = submitErr; err != nil {
			return
		}
		if err = ctx.Err(); err != nil {
			return
		}

		slices.SortFunc(matches, func(a, b Match) int { return a.Precedence - b.Precedence })

		if o.Debug {
			o.Logger.Debugf("operator survey at %s: %s", s.loc, spew.Sprint(matches))
		}
	}

	return
}
