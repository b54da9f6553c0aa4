// Package automatic contains the logic for unattended games of Nim: the
// engine's move picker, and a runner that plays the engine against itself
// for smoke testing and statistics.
package automatic

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/lruais/nimtools/generator"
	"github.com/lruais/nimtools/nim"
	"github.com/lruais/nimtools/solver"
)

// A GameRecord summarizes one finished self-play game.
type GameRecord struct {
	Seed  int64
	Start []int
	Moves int
	// FirstPlayerWon is judged under the game's win condition: in misère
	// games the player who takes the last token loses.
	FirstPlayerWon bool
}

// GameRunner plays engine-vs-engine games.
type GameRunner struct {
	misere    bool
	fairstart bool
	logchan   chan string
}

// NewGameRunner instantiates a runner. logchan may be nil; when set, each
// move is reported on it as "mover,pile,tokens".
func NewGameRunner(logchan chan string, misere, fairstart bool) *GameRunner {
	return &GameRunner{logchan: logchan, misere: misere, fairstart: fairstart}
}

// PickMove returns the move the engine plays from pos: an optimal one when
// the position is controllable, otherwise a random nibble from a random
// live pile. The random choices deliberately do not come from any seeded
// stream, so replaying the same seed sees different engine fallbacks.
func PickMove(pos *nim.Position, misere bool) nim.Move {
	sub, opts := solver.Solve(pos.Piles(), misere)
	if sub > 0 {
		// In a misère endgame with a dead xor every residual ties at zero,
		// so the candidate list sweeps in piles (spent ones included) too
		// small for the biased removal. Only piles that can actually give
		// sub tokens are playable.
		playable := make([]int, 0, len(opts))
		for _, i := range opts {
			if pos.Pile(i) >= sub {
				playable = append(playable, i)
			}
		}
		if len(playable) > 0 {
			return nim.Move{Pile: playable[frand.Intn(len(playable))], Tokens: sub}
		}
	}
	live := pos.NonEmpty()
	pile := live[frand.Intn(len(live))]
	return nim.Move{Pile: pile, Tokens: 1 + frand.Intn(pos.Pile(pile)/2+1)}
}

// PlayPosition plays pos to completion with both sides using PickMove and
// returns the finished record. Every game must end within TokensLeft
// moves; exceeding that budget means the engine produced a null move and
// is reported as an error rather than looping forever.
func (r *GameRunner) PlayPosition(pos *nim.Position, seed int64) (GameRecord, error) {
	rec := GameRecord{Seed: seed, Start: append([]int{}, pos.Piles()...)}
	budget := pos.TokensLeft()
	mover := 0
	for !pos.Ended() {
		if rec.Moves >= budget {
			return rec, fmt.Errorf("game from %v exceeded its budget of %d moves", rec.Start, budget)
		}
		m := PickMove(pos, r.misere)
		if err := pos.Apply(m); err != nil {
			return rec, fmt.Errorf("engine made an illegal move %+v: %w", m, err)
		}
		if r.logchan != nil {
			r.logchan <- fmt.Sprintf("%d,%d,%d\n", mover, m.Pile, m.Tokens)
		}
		rec.Moves++
		mover = 1 - mover
	}
	lastMover := 1 - mover
	won := lastMover == 0
	if r.misere {
		won = !won
	}
	rec.FirstPlayerWon = won
	return rec, nil
}

// RunMany generates and plays n games concurrently and returns every
// record.
func (r *GameRunner) RunMany(ctx context.Context, n int) ([]GameRecord, error) {
	records := make([]GameRecord, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := generator.Generate(r.fairstart)
			rec, err := r.PlayPosition(nim.NewPosition(res.Piles), res.Seed)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug().Msgf("finished %d self-play games", n)
	return records, nil
}
