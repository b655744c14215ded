// batchsolve fills many grid structures against one word list, in
// parallel. Each solve owns its own crossword and domain store, so
// the only shared state is the read-only vocabulary.
package main

import (
	"errors"
	"flag"
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/crossgen/cache"
	"github.com/domino14/crossgen/crossword"
	"github.com/domino14/crossgen/render"
	"github.com/domino14/crossgen/solver"
)

var (
	wordsPath = flag.String("words", "./data/words.txt", "word list path or URL")
	debug     = flag.Bool("debug", false, "debug logging")
)

func solveOne(structurePath string, words []string) (string, error) {
	structure, err := crossword.LoadStructure(structurePath)
	if err != nil {
		return "", err
	}
	cw, err := crossword.New(structure, words)
	if err != nil {
		return "", err
	}
	fill, err := solver.New(cw).Solve()
	if err != nil {
		return "", err
	}
	return render.Text(cw, fill), nil
}

func main() {
	flag.Parse()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	structures := flag.Args()
	if len(structures) == 0 {
		log.Fatal().Msg("usage: batchsolve -words <list> structure [structure ...]")
	}
	words, err := cache.Vocabulary(*wordsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading word list")
	}

	var mu sync.Mutex
	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for _, path := range structures {
		path := path
		g.Go(func() error {
			text, err := solveOne(path, words)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, solver.ErrNoSolution):
				fmt.Printf("=== %s\nNo solution.\n", path)
			case err != nil:
				return fmt.Errorf("%s: %w", path, err)
			default:
				fmt.Printf("=== %s\n%s", path, text)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
