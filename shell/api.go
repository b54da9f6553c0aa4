package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/lruais/nimtools/alphaidx"
	"github.com/lruais/nimtools/automatic"
	"github.com/lruais/nimtools/config"
	"github.com/lruais/nimtools/generator"
	"github.com/lruais/nimtools/nim"
	"github.com/lruais/nimtools/solver"
)

const defaultAutoplayGames = 100

func (sc *ShellController) requireGame() error {
	if sc.pos == nil {
		return errNoGame
	}
	return nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	fairstart := sc.cfg.GetBool(config.KeyFairStart)
	var res generator.Result
	if len(cmd.args) > 0 {
		seed, err := strconv.ParseInt(cmd.args[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse seed: %w", err)
		}
		res = generator.GenerateWithSeed(seed, fairstart)
	} else if seed := sc.cfg.GetInt64(config.KeySeed); seed != 0 {
		res = generator.GenerateWithSeed(seed, fairstart)
	} else {
		res = generator.Generate(fairstart)
	}
	sc.pos = nim.NewPosition(res.Piles)
	sc.seedLabel = strconv.FormatInt(res.Seed, 10)
	sc.over = false
	log.Debug().Msgf("Generated game with seed %s: %v", sc.seedLabel, res.Piles)

	out := fmt.Sprintf("game: %s - %v\n\n%s", sc.seedLabel, res.Piles, sc.pos.ToDisplayText())
	if !sc.cfg.GetBool(config.KeyHumanStart) {
		out += "\n\n" + sc.cpuMove()
	}
	return msg(out), nil
}

// setPosition starts a game from explicit pile sizes instead of a seed.
func (sc *ShellController) setPosition(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: set <piles...>, e.g. set 3 5 7")
	}
	piles := make([]int, len(cmd.args))
	for i, arg := range cmd.args {
		v, err := strconv.Atoi(arg)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%q is not a valid pile size", arg)
		}
		piles[i] = v
	}
	sc.pos = nim.NewPosition(piles)
	sc.seedLabel = "custom"
	sc.over = sc.pos.Ended()
	out := fmt.Sprintf("game: custom - %v\n\n%s", piles, sc.pos.ToDisplayText())
	if !sc.over && !sc.cfg.GetBool(config.KeyHumanStart) {
		out += "\n\n" + sc.cpuMove()
	}
	return msg(out), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	return msg(sc.pos.ToDisplayText()), nil
}

func (sc *ShellController) take(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if sc.over {
		return nil, errGameOver
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: take <pile> <count|all>")
	}
	pile, err := alphaidx.Decode(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if pile >= sc.pos.NumPiles() {
		return nil, nim.ErrNoSuchPile
	}
	var tokens int
	if strings.EqualFold(cmd.args[1], "all") {
		tokens = sc.pos.Pile(pile)
	} else {
		tokens, err = strconv.Atoi(cmd.args[1])
		if err != nil {
			return nil, fmt.Errorf("could not parse token count: %w", err)
		}
	}
	if err := sc.pos.Apply(nim.Move{Pile: pile, Tokens: tokens}); err != nil {
		return nil, err
	}
	if sc.pos.Ended() {
		sc.over = true
		return msg(sc.verdict(true)), nil
	}
	return msg(sc.cpuMove()), nil
}

// cpuMove plays the engine's reply to the current position and returns the
// text to show: the move, then either the new board or the verdict.
func (sc *ShellController) cpuMove() string {
	m := automatic.PickMove(sc.pos, sc.misere)
	if err := sc.pos.Apply(m); err != nil {
		// Solve guarantees legal moves; this is an engine bug, not a user
		// error.
		log.Error().Err(err).Msgf("engine made an illegal move %+v", m)
		return "the engine forfeits"
	}
	line := fmt.Sprintf("cpu: %s -%d", alphaidx.Encode(m.Pile), m.Tokens)
	if sc.pos.Ended() {
		sc.over = true
		return line + "\n\n" + sc.verdict(false)
	}
	return line + "\n\n" + sc.pos.ToDisplayText()
}

// verdict announces the result once every pile is spent. The mover who
// took the last token wins at standard rules and loses at misère.
func (sc *ShellController) verdict(humanMovedLast bool) string {
	if humanMovedLast != sc.misere {
		return "you win!"
	}
	return "you lose!"
}

func (sc *ShellController) hint(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if sc.over {
		return nil, errGameOver
	}
	sub, opts := solver.Solve(sc.pos.Piles(), sc.misere)
	if sub == 0 {
		return msg("no forcing move exists; every move loses against perfect play"), nil
	}
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = alphaidx.Encode(o)
	}
	return msg(fmt.Sprintf("take %d from %s", sub, strings.Join(labels, " or "))), nil
}

func (sc *ShellController) seed(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	return msg(sc.seedLabel), nil
}

func (sc *ShellController) mode(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: mode <standard|misere>")
	}
	switch cmd.args[0] {
	case "standard":
		sc.misere = false
	case "misere":
		sc.misere = true
	default:
		return nil, errors.New("mode " + cmd.args[0] + " is not a valid choice")
	}
	return msg("Setting current mode to " + cmd.args[0]), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	n := defaultAutoplayGames
	if len(cmd.args) > 0 {
		var err error
		n, err = strconv.Atoi(cmd.args[0])
		if err != nil || n < 1 {
			return nil, errors.New("autoplay takes a positive game count")
		}
	}
	runner := automatic.NewGameRunner(nil, sc.misere, sc.cfg.GetBool(config.KeyFairStart))
	records, err := runner.RunMany(context.Background(), n)
	if err != nil {
		return nil, err
	}
	return msg(automatic.SummarizeText(records)), nil
}
