package game

// Player identifies one of the two players. By convention player 1 has the
// first move, so a freshly constructed state reports player 2 as having just
// moved.
type Player int

const (
	// Nobody marks a drawn outcome when tallying finished games.
	Nobody Player = 0

	Player1 Player = 1
	Player2 Player = 2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return 3 - p
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	default:
		return "nobody"
	}
}

// Results of a finished game from one player's viewpoint, as reported by
// State.ResultFor.
const (
	Win  = 1.0
	Draw = 0.5
	Loss = 0.0
)

// Move is a single action playable from a state. Concrete move types are
// defined by each game.
type Move interface {
	String() string
}

// State is the capability contract a game position must satisfy to be
// searchable: any two-player, zero-sum, perfect-information deterministic
// game can implement it. States are mutable; the searcher works on clones
// and never touches the caller's value.
//
// Play and ResultFor have preconditions. Violating them is a programming
// error in the caller or the game implementation, not a runtime condition,
// and panics immediately.
type State interface {
	// Clone returns a deep copy. Mutating the copy must never affect the
	// original, including any board arrays or other substructure.
	Clone() State
	// Play applies a legal move in place and flips the just-moved player.
	// The move must be a member of LegalMoves.
	Play(Move)
	// LegalMoves returns the moves playable from this state, empty exactly
	// when the state is terminal.
	LegalMoves() []Move
	// ResultFor reports the result from p's viewpoint: Win, Loss or Draw.
	// The state must be terminal.
	ResultFor(p Player) float64
	// JustMoved returns the player who made the most recent move.
	JustMoved() Player
}
