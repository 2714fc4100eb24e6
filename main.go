package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"uct/engine"
	"uct/experiments"
	"uct/game"
	"uct/searcher"
)

func main() {
	gameName := flag.String("game", "nim", "game to play: nim, oxo, othello or dice")
	games := flag.Int("games", 100, "number of self-play games")
	budget1 := flag.Int("iterations1", 1, "player 1 iteration budget")
	budget2 := flag.Int("iterations2", 10, "player 2 iteration budget")
	seed := flag.Uint64("seed", 0, "random seed, 0 for a time-based one")
	verbose := flag.Bool("verbose", false, "dump the root's children after every search")
	experiment := flag.Bool("experiment", false, "run the budget experiment instead of the demo")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *experiment {
		if err := experiments.RunBudgetExperiment("experiments"); err != nil {
			log.Fatal().Err(err).Msg("budget experiment failed")
		}
		return
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	results := map[game.Player]int{}
	for i := 0; i < *games; i++ {
		gameSeed := *seed + uint64(i)*3
		state, err := newState(*gameName, gameSeed)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot start game")
		}

		e := engine.NewLocalEngine(
			state,
			newSearcher(*budget1, gameSeed+1, *verbose),
			newSearcher(*budget2, gameSeed+2, *verbose),
		)
		winner, _ := e.Run()
		results[winner]++
	}

	log.Info().
		Int("player1_wins", results[game.Player1]).
		Int("player2_wins", results[game.Player2]).
		Int("draws", results[game.Nobody]).
		Msgf("finished %d games of %s with budgets %d vs %d",
			*games, *gameName, *budget1, *budget2)
}

func newState(name string, seed uint64) (game.State, error) {
	switch name {
	case "nim":
		return game.NewNim(15), nil
	case "oxo":
		return game.NewOXO(), nil
	case "othello":
		return game.NewOthello(6), nil
	case "dice":
		return game.NewDice(rand.New(rand.NewSource(seed))), nil
	default:
		return nil, fmt.Errorf("unknown game %q", name)
	}
}

func newSearcher(iterations int, seed uint64, verbose bool) *searcher.UCT {
	options := []searcher.Option{
		searcher.WithIterations(iterations),
		searcher.WithRand(rand.New(rand.NewSource(seed))),
	}
	if verbose {
		options = append(options, searcher.WithDiagnostics(os.Stdout))
	}
	return searcher.NewUCT(options...)
}
