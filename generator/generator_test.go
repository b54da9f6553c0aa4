package generator

import (
	"testing"

	"github.com/matryer/is"

	"github.com/lruais/nimtools/solver"
)

func TestGenerateDeterministic(t *testing.T) {
	is := is.New(t)
	for seed := int64(0); seed < 200; seed++ {
		first := GenerateWithSeed(seed, true)
		second := GenerateWithSeed(seed, true)
		is.Equal(first, second)
		is.Equal(first.Seed, seed)
	}
}

func TestGenerateFairness(t *testing.T) {
	for seed := int64(0); seed < 2000; seed++ {
		fair := GenerateWithSeed(seed, true)
		if !solver.Controllable(fair.Piles, false) {
			t.Fatalf("seed %d with fairstart produced dead position %v", seed, fair.Piles)
		}
		unfair := GenerateWithSeed(seed, false)
		if solver.Controllable(unfair.Piles, false) {
			t.Fatalf("seed %d without fairstart produced live position %v", seed, unfair.Piles)
		}
	}
}

func TestGeneratePileRanges(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		res := GenerateWithSeed(seed, true)
		// at most one rebalancing pile on top of the drawn count
		if len(res.Piles) < MinPiles || len(res.Piles) > MaxPiles+1 {
			t.Fatalf("seed %d: %d piles", seed, len(res.Piles))
		}
		for i, v := range res.Piles {
			if v < 1 || (i < len(res.Piles)-1 && (v < MinTokens || v > MaxTokens)) {
				t.Fatalf("seed %d: pile %d of %v out of range", seed, i, res.Piles)
			}
		}
	}
}

func TestGenerateReportsUsableSeed(t *testing.T) {
	is := is.New(t)
	res := Generate(true)
	is.True(res.Seed >= 0)
	replay := GenerateWithSeed(res.Seed, true)
	is.Equal(replay.Piles, res.Piles)
}
