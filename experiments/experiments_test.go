package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uct/experiments/metrics"
	"uct/game"
)

func TestRunGame(t *testing.T) {
	weak := metrics.AgentConfig{ID: 0, Iterations: 10, Seed: 1}
	strong := metrics.AgentConfig{ID: 1, Iterations: 100, Seed: 2}

	record, moves := runGame(7, 0, weak, strong)

	require.Equal(t, 7, record.ID, "The record should carry the assigned game id")
	require.Equal(t, weak.ID, record.Agent1, "Agent 1 holds the first move")
	require.Equal(t, strong.ID, record.Agent2, "Agent 2 moves second")
	require.Contains(t,
		[]string{game.Player1.String(), game.Player2.String(), game.Nobody.String()},
		record.Winner, "The winner must be a player or nobody")
	require.Equal(t, record.TotalMoves, len(moves), "One move record per search call")
	for _, m := range moves {
		require.Equal(t, 7, m.Game, "Move records should reference their game")
		require.Positive(t, m.Iterations, "Every search spends a positive budget")
	}
}

func TestRunGameIsDeterministicPerSeed(t *testing.T) {
	cfg1 := metrics.AgentConfig{ID: 0, Iterations: 10, Seed: 1}
	cfg2 := metrics.AgentConfig{ID: 1, Iterations: 10, Seed: 2}

	a, _ := runGame(1, 0, cfg1, cfg2)
	b, _ := runGame(1, 0, cfg1, cfg2)

	require.Equal(t, a.TotalMoves, b.TotalMoves, "Identical seeds should replay the identical game")
	require.Equal(t, a.Winner, b.Winner, "Identical seeds should replay the identical game")
}
