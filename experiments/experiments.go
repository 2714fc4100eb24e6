// Package experiments measures how the iteration budget translates into
// playing strength by pitting unequally budgeted searchers against each
// other over many self-play games.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"uct/engine"
	"uct/experiments/metrics"
	"uct/game"
	"uct/searcher"
)

const (
	NumGames       = 100 // per matchup
	StartingChips  = 15
	BaselineBudget = 10
)

var contenderConfigs = []metrics.AgentConfig{
	{ID: 1, Iterations: 10, Seed: 11},
	{ID: 2, Iterations: 50, Seed: 12},
	{ID: 3, Iterations: 100, Seed: 13},
	{ID: 4, Iterations: 500, Seed: 14},
	{ID: 5, Iterations: 1000, Seed: 15},
}

// RunBudgetExperiment plays every contender against the baseline on the
// subtraction game, alternating seats between games, and writes the results
// as CSV under baseDir.
func RunBudgetExperiment(baseDir string) error {
	baseline := metrics.AgentConfig{ID: 0, Iterations: BaselineBudget, Seed: 1}
	configs := append([]metrics.AgentConfig{baseline}, contenderConfigs...)

	log.Info().Msg("starting budget experiment")

	count := 0
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for mi, contender := range contenderConfigs {
		log.Info().Msgf("starting matchup %d of %d between agent %d and agent %d",
			mi+1, len(contenderConfigs), baseline.ID, contender.ID)

		tally := map[int]int{} // wins by AgentConfig.ID, -1 for draws
		for i := 0; i < NumGames; i++ {
			// Alternate seats so neither config always has the first move.
			first, second := baseline, contender
			if i%2 == 1 {
				first, second = contender, baseline
			}

			count++
			record, moves := runGame(count, uint64(i), first, second)
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)

			switch record.Winner {
			case game.Player1.String():
				tally[first.ID]++
			case game.Player2.String():
				tally[second.ID]++
			default:
				tally[-1]++
			}
		}

		log.Info().
			Int("baseline_wins", tally[baseline.ID]).
			Int("contender_wins", tally[contender.ID]).
			Int("draws", tally[-1]).
			Msgf("completed matchup %d of %d", mi+1, len(contenderConfigs))
	}

	log.Info().Msg("completed budget experiment")

	writer, err := metrics.NewWriter(baseDir, "budget")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Str("dir", writer.RunDir()).Msg("stored experiment results")
	return nil
}

// runGame plays one subtraction game between the two configs, cfg1 holding
// the first move.
func runGame(id int, gameSeed uint64, cfg1, cfg2 metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord) {
	e := engine.NewLocalEngine(
		game.NewNim(StartingChips),
		newAgent(cfg1, gameSeed),
		newAgent(cfg2, gameSeed),
	)

	start := time.Now()
	winner, moveMetrics := e.Run()
	end := time.Now()

	record := metrics.GameRecord{
		ID:     id,
		Agent1: cfg1.ID,
		Agent2: cfg2.ID,
		GameMetric: metrics.GameMetric{
			Winner:     winner.String(),
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
			TotalMoves: len(moveMetrics),
		},
	}

	moves := make([]metrics.MoveRecord, 0, len(moveMetrics))
	for _, mm := range moveMetrics {
		moves = append(moves, metrics.MoveRecord{
			Game:         id,
			Step:         mm.Step,
			Player:       int(mm.Player),
			Iterations:   mm.Search.Iterations,
			RolloutMoves: mm.Search.RolloutMoves,
			MaxDepth:     mm.Search.MaxDepth,
			Duration:     mm.Search.Duration,
		})
	}
	return record, moves
}

// newAgent builds a searcher for cfg, seeded per game so repeated games
// differ while the experiment stays reproducible.
func newAgent(cfg metrics.AgentConfig, gameSeed uint64) *searcher.UCT {
	return searcher.NewUCT(
		searcher.WithIterations(cfg.Iterations),
		searcher.WithRand(rand.New(rand.NewSource(cfg.Seed+(gameSeed+1)*1000))),
		searcher.WithMetrics(),
	)
}
