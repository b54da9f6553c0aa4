package automatic

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/matryer/is"

	"github.com/lruais/nimtools/generator"
	"github.com/lruais/nimtools/nim"
)

// Every game terminates within its token budget, whatever mix of optimal
// and fallback moves the engine ends up making.
func TestPlayPositionTerminates(t *testing.T) {
	for _, misere := range []bool{false, true} {
		runner := NewGameRunner(nil, misere, true)
		for seed := int64(0); seed < 500; seed++ {
			res := generator.GenerateWithSeed(seed, true)
			pos := nim.NewPosition(res.Piles)
			budget := pos.TokensLeft()
			rec, err := runner.PlayPosition(pos, res.Seed)
			if err != nil {
				t.Fatalf("seed %d (misere %v): %v", seed, misere, err)
			}
			if !pos.Ended() {
				t.Fatalf("seed %d (misere %v): game did not finish", seed, misere)
			}
			if rec.Moves < 1 || rec.Moves > budget {
				t.Fatalf("seed %d (misere %v): %d moves for %d tokens", seed, misere, rec.Moves, budget)
			}
		}
	}
}

// A fairstart position is controllable by the first player, and optimal
// play keeps control; the first player must win every time.
func TestFairStartFirstPlayerAlwaysWins(t *testing.T) {
	runner := NewGameRunner(nil, false, true)
	for seed := int64(0); seed < 300; seed++ {
		res := generator.GenerateWithSeed(seed, true)
		rec, err := runner.PlayPosition(nim.NewPosition(res.Piles), res.Seed)
		if err != nil {
			t.Fatal(err)
		}
		if !rec.FirstPlayerWon {
			t.Fatalf("seed %d: first player lost from %v", seed, rec.Start)
		}
	}
}

// In a misère endgame with a dead xor, every pile's residual is zero, so
// the solver's candidate list includes spent piles; the picker must only
// play piles that can give the full removal amount.
func TestPickMoveLegalWithSpentPiles(t *testing.T) {
	is := is.New(t)
	for trial := 0; trial < 200; trial++ {
		pos := nim.NewPosition([]int{0, 1, 1})
		m := PickMove(pos, true)
		is.Equal(m.Tokens, 1)
		is.True(m.Pile == 1 || m.Pile == 2)
		is.NoErr(pos.Apply(m))
	}
}

// (2,1,1) at misère funnels through (1,1,1) and a spent-pile endgame; the
// mover holds control the whole way and must win every time, with no
// illegal engine moves along the line.
func TestMiserePlayThroughSpentPiles(t *testing.T) {
	runner := NewGameRunner(nil, true, true)
	for trial := 0; trial < 200; trial++ {
		pos := nim.NewPosition([]int{2, 1, 1})
		rec, err := runner.PlayPosition(pos, 0)
		if err != nil {
			t.Fatal(err)
		}
		if !pos.Ended() {
			t.Fatal("game did not finish")
		}
		if rec.Moves != 4 {
			t.Fatalf("expected 4 moves, got %d", rec.Moves)
		}
		if !rec.FirstPlayerWon {
			t.Fatalf("first player lost from %v", rec.Start)
		}
	}
}

func TestPlayPositionForcedEndings(t *testing.T) {
	is := is.New(t)

	// one token: first player takes it and wins at normal rules
	rec, err := NewGameRunner(nil, false, true).PlayPosition(nim.NewPosition([]int{1}), 0)
	is.NoErr(err)
	is.Equal(rec.Moves, 1)
	is.True(rec.FirstPlayerWon)

	// ...and loses at misère
	rec, err = NewGameRunner(nil, true, true).PlayPosition(nim.NewPosition([]int{1}), 0)
	is.NoErr(err)
	is.Equal(rec.Moves, 1)
	is.True(!rec.FirstPlayerWon)

	// (1,1) misère: the engine takes one whole pile, leaving the last
	// token to the loser
	rec, err = NewGameRunner(nil, true, true).PlayPosition(nim.NewPosition([]int{1, 1}), 0)
	is.NoErr(err)
	is.Equal(rec.Moves, 2)
	is.True(rec.FirstPlayerWon)
}

func TestRunMany(t *testing.T) {
	is := is.New(t)
	logchan := make(chan string)
	runner := NewGameRunner(logchan, false, true)

	var wg sync.WaitGroup
	wg.Add(1)
	moves := 0
	go func() {
		defer wg.Done()
		for m := range logchan {
			if !strings.Contains(m, ",") {
				t.Errorf("malformed log line %q", m)
			}
			moves++
		}
	}()

	records, err := runner.RunMany(context.Background(), 50)
	close(logchan)
	wg.Wait()

	is.NoErr(err)
	is.Equal(len(records), 50)
	total := 0
	for _, rec := range records {
		is.True(rec.Moves > 0)
		is.True(rec.FirstPlayerWon) // fairstart + optimal play
		total += rec.Moves
	}
	is.Equal(total, moves)

	summary := SummarizeText(records)
	is.True(strings.Contains(summary, "games: 50"))
	is.True(strings.Contains(summary, "100.0%"))
}
