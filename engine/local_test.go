package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"uct/game"
	"uct/searcher"
)

func newTestAgent(iterations int, seed uint64) *searcher.UCT {
	return searcher.NewUCT(
		searcher.WithIterations(iterations),
		searcher.WithRand(rand.New(rand.NewSource(seed))),
		searcher.WithMetrics(),
	)
}

func TestLocalEngineRunsToTermination(t *testing.T) {
	e := NewLocalEngine(game.NewOXO(), newTestAgent(50, 1), newTestAgent(50, 2))

	winner, metrics := e.Run()

	require.Contains(t, []game.Player{game.Player1, game.Player2, game.Nobody}, winner,
		"The outcome must be a win for either side or a draw")
	require.NotEmpty(t, metrics, "Metric-reporting agents should yield per-move metrics")
	require.LessOrEqual(t, len(metrics), 9, "A 3x3 game cannot exceed nine moves")
	for i, m := range metrics {
		require.Equal(t, i+1, m.Step, "Steps should count up from one")
		require.Equal(t, 50, m.Search.Iterations, "Every search should spend its full budget")
	}
}

func TestLocalEngineSecondPlayerWinsFourChipNim(t *testing.T) {
	e := NewLocalEngine(game.NewNim(4), newTestAgent(200, 3), newTestAgent(200, 4))

	winner, _ := e.Run()

	require.Equal(t, game.Player2, winner,
		"A 4-chip heap is lost for the first player under near-optimal play")
}

func TestLocalEngineValidation(t *testing.T) {
	t.Run("missing state", func(t *testing.T) {
		require.Panics(t, func() { NewLocalEngine(nil, newTestAgent(10, 1), newTestAgent(10, 2)) })
	})

	t.Run("missing agent", func(t *testing.T) {
		require.Panics(t, func() { NewLocalEngine(game.NewOXO(), newTestAgent(10, 1), nil) })
	})
}
