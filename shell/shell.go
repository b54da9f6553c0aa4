// Package shell implements the interactive Nim session: a readline loop
// where the human plays against the engine.
package shell

import (
	"errors"
	"io"
	"os"
	"regexp"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/lruais/nimtools/config"
	"github.com/lruais/nimtools/nim"
)

var (
	errNoGame   = errors.New("no game in progress; start one with `new`")
	errGameOver = errors.New("the game is over; start another with `new`")
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	pos       *nim.Position
	seedLabel string
	misere    bool
	over      bool
}

type shellcmd struct {
	cmd  string
	args []string
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(m string, w io.Writer) {
	io.WriteString(w, m)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mnim>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg, misere: cfg.GetBool(config.KeyMisere)}
}

func (sc *ShellController) showMessage(m string) {
	showMessage(m, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// The original one-line move syntax: a pile label followed by a dashed
// token count, e.g. `a -3` or `c -all`.
var bareMoveRe = regexp.MustCompile(`^(?i)([a-z]+)\s+-(all|[0-9]+)$`)

func (sc *ShellController) executor(line string) (*Response, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	cmd := &shellcmd{cmd: fields[0], args: fields[1:]}
	switch cmd.cmd {
	case "new":
		return sc.newGame(cmd)
	case "set":
		return sc.setPosition(cmd)
	case "show":
		return sc.show(cmd)
	case "take":
		return sc.take(cmd)
	case "solve", "hint":
		return sc.hint(cmd)
	case "seed":
		return sc.seed(cmd)
	case "mode":
		return sc.mode(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "help":
		return usage(), nil
	default:
		if m := bareMoveRe.FindStringSubmatch(line); m != nil {
			return sc.take(&shellcmd{cmd: "take", args: []string{m[1], m[2]}})
		}
		log.Debug().Msgf("you said: %v", line)
		return nil, errors.New("unrecognized command; try `help`")
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "bye" {
			sig <- syscall.SIGINT
			break
		}
		resp, err := sc.executor(line)
		if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func usage() *Response {
	return msg(strings.TrimSpace(`
commands:
new [seed]          - start a game (optionally replaying a seed)
set <piles...>      - start a game from a custom position, e.g. set 3 5 7
take <pile> <n|all> - remove tokens, e.g. take b 3; ` + "`a -3`" + ` works too
show                - redraw the board
solve               - ask the engine for the optimal move
seed                - print the current game's seed
mode <standard|misere> - set the win condition for new moves
autoplay [n]        - play n engine-vs-engine games and summarize (default 100)
help                - this message
exit                - leave the shell
`))
}
