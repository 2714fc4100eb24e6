package metrics

import "time"

// AgentConfig describes one searcher configuration under test. Seed is the
// base random seed; each game derives its own seed from it so repeated games
// differ while the whole experiment stays reproducible.
type AgentConfig struct {
	ID         int
	Iterations int
	Seed       uint64
}

// GameMetric describes one finished game.
type GameMetric struct {
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// GameRecord is a GameMetric plus the agents that played it. Agent1 held the
// first move.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

// MoveRecord is one search call within a game.
type MoveRecord struct {
	Game         int // GameRecord.ID
	Step         int
	Player       int
	Iterations   int
	RolloutMoves int
	MaxDepth     int
	Duration     time.Duration
}
