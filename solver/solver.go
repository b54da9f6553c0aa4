// Package solver computes optimal play for Nim, under both normal rules
// (whoever takes the last token wins) and misère rules (whoever takes the
// last token loses).
//
// The normal-play theory is Bouton's: the player to move can force a win
// iff the XOR of the pile sizes is nonzero, and a winning move is one that
// brings that XOR to zero. Misère play follows the exact same strategy
// until the endgame, when at most one pile holds more than one token; from
// there the winning amounts shift by one so as to leave the opponent the
// last token instead of taking it.
package solver

import (
	"github.com/samber/lo"
)

// Bias is the misère endgame correction added to the removal amount. It is
// kept separate from the misère flag itself so that endgame detection and
// sign selection stay independently testable.
type Bias int

const (
	// BiasNone applies outside the endgame, and always under normal rules.
	BiasNone Bias = 0
	// BiasOdd applies in a misère endgame with an odd number of live piles:
	// leave one token more than normal play would.
	BiasOdd Bias = -1
	// BiasEven applies in a misère endgame with an even number of live
	// piles: take one token more than normal play would.
	BiasEven Bias = 1
)

// Endgame reports whether at most one pile holds more than one token. From
// here on, misère and normal optimal play diverge.
func Endgame(piles []int) bool {
	return lo.CountBy(piles, func(v int) bool { return v > 1 }) <= 1
}

// MisereBias returns the correction to apply to the removal amount, which
// is BiasNone unless misère rules are in force and the position is an
// endgame.
func MisereBias(piles []int, misere bool) Bias {
	if !misere || !Endgame(piles) {
		return BiasNone
	}
	if lo.CountBy(piles, func(v int) bool { return v > 0 })%2 == 1 {
		return BiasOdd
	}
	return BiasEven
}

// Solve returns the number of tokens to remove to keep control of the
// game, together with every pile index that amount may be removed from.
// All ties are reported; the candidates are equally optimal. A zero sub
// with no candidates means the mover has no forcing move and loses against
// perfect opposition.
func Solve(piles []int, misere bool) (sub int, opts []int) {
	bias := MisereBias(piles, misere)

	xor := 0
	for _, v := range piles {
		xor ^= v
	}
	if xor+int(bias) == 0 {
		return 0, nil
	}

	// The residual of a pile is the xor restricted to bits the pile does
	// not hold. The pile(s) with the smallest residual are the ones that
	// can be shrunk to zero the xor of the whole position.
	minResidual := xor
	for i, v := range piles {
		residual := xor &^ v
		if residual < minResidual {
			minResidual = residual
			opts = opts[:0]
		}
		if residual == minResidual {
			opts = append(opts, i)
		}
	}
	sub = xor - 2*minResidual

	// The bias changes how many tokens to leave, never which pile to
	// target, so it folds in after the pile search.
	return sub + int(bias), opts
}

// Controllable reports whether the player to move can force a win.
func Controllable(piles []int, misere bool) bool {
	sub, _ := Solve(piles, misere)
	return sub != 0
}
