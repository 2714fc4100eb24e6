package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"uct/game"
)

// localEngine plays one game to termination between two in-process agents,
// mutating a single authoritative state.
type localEngine struct {
	state  game.State
	agents map[game.Player]Agent
}

func NewLocalEngine(state game.State, player1, player2 Agent) Engine {
	if state == nil {
		panic("engine needs a starting state")
	}
	if player1 == nil || player2 == nil {
		panic("engine needs an agent for both players")
	}
	return &localEngine{
		state: state,
		agents: map[game.Player]Agent{
			game.Player1: player1,
			game.Player2: player2,
		},
	}
}

func (e *localEngine) Run() (game.Player, []MoveMetric) {
	var metrics []MoveMetric

	step := 0
	for len(e.state.LegalMoves()) > 0 {
		if step >= MaxMoves {
			panic(fmt.Sprintf("game exceeded %d moves without terminating", MaxMoves))
		}
		step++

		mover := e.state.JustMoved().Opponent()
		move := e.agents[mover].FindNextMove(e.state)
		log.Debug().Int("step", step).Stringer("player", mover).Msgf("playing %v", move)
		e.state.Play(move)

		if reporter, ok := e.agents[mover].(MetricsReporter); ok {
			metrics = append(metrics, MoveMetric{
				Step:   step,
				Player: mover,
				Search: reporter.Metrics(),
			})
		}
	}

	winner := e.winner()
	log.Info().Int("moves", step).Stringer("winner", winner).Msg("game over")
	return winner, metrics
}

// winner reads the terminal state from the last mover's viewpoint.
func (e *localEngine) winner() game.Player {
	justMoved := e.state.JustMoved()
	switch e.state.ResultFor(justMoved) {
	case game.Win:
		return justMoved
	case game.Loss:
		return justMoved.Opponent()
	default:
		return game.Nobody
	}
}
