package engine

import (
	"uct/game"
	"uct/searcher"
)

// MaxMoves guards against games that fail to terminate.
const MaxMoves = 10000

// Agent produces the next move for the side it plays.
type Agent interface {
	FindNextMove(state game.State) game.Move
}

// MetricsReporter is implemented by agents that expose per-search metrics,
// such as a searcher built with WithMetrics.
type MetricsReporter interface {
	Metrics() searcher.MoveMetrics
}

// MoveMetric ties one search's metrics to its place in the game.
type MoveMetric struct {
	Step   int
	Player game.Player
	Search searcher.MoveMetrics
}

type Engine interface {
	// Run plays a game to termination and returns the winner, game.Nobody
	// on a draw, along with per-move search metrics.
	Run() (winner game.Player, metrics []MoveMetric)
}
