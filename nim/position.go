// Package nim holds the shared game state for a game of Nim: an ordered
// sequence of token piles and the moves that mutate it. It knows nothing
// about strategy; see the solver package for that.
package nim

import (
	"errors"

	"github.com/samber/lo"
)

var (
	ErrNoSuchPile    = errors.New("no pile at that index")
	ErrBadTokenCount = errors.New("must remove at least one token and no more than the pile holds")
)

// A Move removes Tokens tokens from the pile at index Pile.
type Move struct {
	Pile   int
	Tokens int
}

// Position is the pile state at a point in the game. Pile order is
// meaningful: indices are how piles are addressed and displayed, so piles
// mutate in place and are never reordered or removed. A pile that reaches
// zero stays in the sequence as a spent pile.
type Position struct {
	piles []int
}

// NewPosition copies piles into a fresh Position.
func NewPosition(piles []int) *Position {
	return &Position{piles: append([]int{}, piles...)}
}

// Piles returns the underlying pile values. Callers must not mutate the
// returned slice directly; use Apply.
func (p *Position) Piles() []int {
	return p.piles
}

// NumPiles returns how many piles the position holds, spent ones included.
func (p *Position) NumPiles() int {
	return len(p.piles)
}

// Pile returns the token count of pile i.
func (p *Position) Pile(i int) int {
	return p.piles[i]
}

// Apply validates m and subtracts its token count from the addressed pile.
func (p *Position) Apply(m Move) error {
	if m.Pile < 0 || m.Pile >= len(p.piles) {
		return ErrNoSuchPile
	}
	if m.Tokens <= 0 || m.Tokens > p.piles[m.Pile] {
		return ErrBadTokenCount
	}
	p.piles[m.Pile] -= m.Tokens
	return nil
}

// Ended returns true once every pile is spent.
func (p *Position) Ended() bool {
	return !lo.SomeBy(p.piles, func(v int) bool { return v > 0 })
}

// TokensLeft returns the total number of tokens still on the board. It is
// an upper bound on the number of moves left in the game.
func (p *Position) TokensLeft() int {
	return lo.Sum(p.piles)
}

// NonEmpty returns the indices of piles that still hold tokens.
func (p *Position) NonEmpty() []int {
	idxs := []int{}
	for i, v := range p.piles {
		if v > 0 {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
