// Package shell is the interactive front end: load a grid structure
// and a word list, solve, inspect, and export the fill.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/crossgen/cache"
	"github.com/domino14/crossgen/config"
	"github.com/domino14/crossgen/crossword"
	"github.com/domino14/crossgen/render"
	"github.com/domino14/crossgen/solver"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	structure [][]bool
	words     []string
	cw        *crossword.Crossword
	lastFill  solver.Assignment
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcrossgen>\033[0m ",
		HistoryFile:     cfg.HistoryFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) loadStructure(path string) error {
	structure, err := crossword.LoadStructure(path)
	if err != nil {
		return err
	}
	sc.structure = structure
	sc.cw = nil
	sc.lastFill = nil
	sc.showMessage(fmt.Sprintf("loaded structure %s (%d rows)", path, len(structure)))
	return nil
}

func (sc *ShellController) loadWords(src string) error {
	words, err := cache.Vocabulary(src)
	if err != nil {
		return err
	}
	sc.words = words
	sc.cw = nil
	sc.lastFill = nil
	sc.showMessage(fmt.Sprintf("loaded %d words from %s", len(words), src))
	return nil
}

// buildCrossword lazily combines the loaded structure and word list.
func (sc *ShellController) buildCrossword() error {
	if sc.cw != nil {
		return nil
	}
	if sc.structure == nil {
		return errors.New("please load a structure first with the `load` command")
	}
	if sc.words == nil {
		if err := sc.loadWords(sc.cfg.WordList); err != nil {
			return err
		}
	}
	cw, err := crossword.New(sc.structure, sc.words)
	if err != nil {
		return err
	}
	sc.cw = cw
	return nil
}

func (sc *ShellController) solve() error {
	if err := sc.buildCrossword(); err != nil {
		return err
	}
	var opts []solver.Option
	if sc.cfg.Seed != 0 {
		opts = append(opts, solver.WithTieBreaker(solver.SeededTieBreaker(sc.cfg.Seed)))
	} else if sc.cfg.RandomTieBreak {
		opts = append(opts, solver.WithTieBreaker(solver.RandomTieBreaker))
	}
	s := solver.New(sc.cw, opts...)
	fill, err := s.Solve()
	if errors.Is(err, solver.ErrNoSolution) {
		sc.showMessage("No solution.")
		sc.lastFill = nil
		return nil
	} else if err != nil {
		return err
	}
	sc.lastFill = fill
	sc.showMessage(render.Text(sc.cw, fill))
	return nil
}

func (sc *ShellController) show() error {
	if err := sc.buildCrossword(); err != nil {
		return err
	}
	sc.showMessage(render.Text(sc.cw, sc.lastFill))
	return nil
}

func (sc *ShellController) save(filename string) error {
	if sc.lastFill == nil {
		return errors.New("nothing to save; run `solve` first")
	}
	if err := render.SavePNG(sc.cw, sc.lastFill, filename); err != nil {
		return err
	}
	sc.showMessage("saved image to " + filename)
	return nil
}

type shellcmd struct {
	cmd  string
	args []string
}

var errNoData = errors.New("no command entered")

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	return &shellcmd{cmd: fields[0], args: fields[1:]}, nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) error {
	parsed, err := extractFields(line)
	if err == errNoData {
		return nil
	} else if err != nil {
		sc.showError(err)
		return nil
	}
	cmd, args := parsed.cmd, parsed.args
	switch {
	case cmd == "load" && len(args) == 1:
		if err := sc.loadStructure(args[0]); err != nil {
			sc.showError(err)
		}
	case cmd == "words" && len(args) == 1:
		if err := sc.loadWords(args[0]); err != nil {
			sc.showError(err)
		}
	case cmd == "solve":
		if err := sc.solve(); err != nil {
			sc.showError(err)
		}
	case cmd == "show":
		if err := sc.show(); err != nil {
			sc.showError(err)
		}
	case cmd == "save" && len(args) == 1:
		if err := sc.save(args[0]); err != nil {
			sc.showError(err)
		}
	case cmd == "seed" && len(args) == 1:
		seed, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			sc.showError(fmt.Errorf("badly formatted seed: %w", err))
			break
		}
		sc.cfg.Seed = seed
		sc.showMessage("tie-break seed set to " + args[0])
	case cmd == "random" && len(args) == 1:
		sc.cfg.RandomTieBreak = args[0] == "on"
		sc.cfg.Seed = 0
		sc.showMessage("random tie-break " + args[0])
	case cmd == "bye" || cmd == "exit":
		sig <- syscall.SIGINT
		return errors.New("sending quit signal")
	case cmd == "help":
		usage(sc.l.Stderr())
	default:
		if strings.TrimSpace(line) != "" {
			log.Debug().Msgf("you said: %v", strconv.Quote(line))
			sc.showMessage("unknown command; type `help`")
		}
	}
	return nil
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

		err = sc.standardModeSwitch(line, sig)
		if err != nil {
			log.Error().Err(err).Msg("")
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
