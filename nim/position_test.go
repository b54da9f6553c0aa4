package nim

import (
	"testing"

	"github.com/matryer/is"
)

func TestApply(t *testing.T) {
	is := is.New(t)
	p := NewPosition([]int{2, 4, 1})

	is.NoErr(p.Apply(Move{Pile: 1, Tokens: 3}))
	is.Equal(p.Piles(), []int{2, 1, 1})

	// take a pile down to zero; it keeps its slot
	is.NoErr(p.Apply(Move{Pile: 2, Tokens: 1}))
	is.Equal(p.Piles(), []int{2, 1, 0})
	is.Equal(p.NumPiles(), 3)
	is.Equal(p.NonEmpty(), []int{0, 1})
}

func TestApplyRejectsBadMoves(t *testing.T) {
	is := is.New(t)
	p := NewPosition([]int{2, 0})

	is.Equal(p.Apply(Move{Pile: -1, Tokens: 1}), ErrNoSuchPile)
	is.Equal(p.Apply(Move{Pile: 2, Tokens: 1}), ErrNoSuchPile)
	is.Equal(p.Apply(Move{Pile: 0, Tokens: 0}), ErrBadTokenCount)
	is.Equal(p.Apply(Move{Pile: 0, Tokens: 3}), ErrBadTokenCount)
	// a spent pile has nothing to give
	is.Equal(p.Apply(Move{Pile: 1, Tokens: 1}), ErrBadTokenCount)
	// nothing was mutated by any of the rejected moves
	is.Equal(p.Piles(), []int{2, 0})
}

func TestEnded(t *testing.T) {
	is := is.New(t)
	is.True(!NewPosition([]int{0, 1, 0}).Ended())
	is.True(NewPosition([]int{0, 0, 0}).Ended())
	is.Equal(NewPosition([]int{3, 0, 4}).TokensLeft(), 7)
}

func TestNewPositionCopies(t *testing.T) {
	is := is.New(t)
	src := []int{5, 5}
	p := NewPosition(src)
	is.NoErr(p.Apply(Move{Pile: 0, Tokens: 2}))
	is.Equal(src, []int{5, 5})
}
