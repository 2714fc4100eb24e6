package game

import "fmt"

// TakeMove removes 1 to 3 chips from the heap.
type TakeMove int

func (m TakeMove) String() string {
	return fmt.Sprintf("take %d", int(m))
}

// NimState is the subtraction game: players alternately take 1, 2 or 3 chips
// and whoever takes the last chip wins. A heap of size 4n is lost for the
// player to move under perfect play.
type NimState struct {
	chips     int
	justMoved Player
}

func NewNim(chips int) *NimState {
	if chips < 0 {
		panic("nim heap cannot be negative")
	}
	return &NimState{
		chips:     chips,
		justMoved: Player2,
	}
}

func (s *NimState) Clone() State {
	clone := *s
	return &clone
}

func (s *NimState) Play(move Move) {
	take, ok := move.(TakeMove)
	if !ok || take < 1 || take > 3 || int(take) > s.chips {
		panic(fmt.Sprintf("illegal nim move: %v", move))
	}
	s.chips -= int(take)
	s.justMoved = s.justMoved.Opponent()
}

func (s *NimState) LegalMoves() []Move {
	moves := make([]Move, 0, 3)
	for take := 1; take <= 3 && take <= s.chips; take++ {
		moves = append(moves, TakeMove(take))
	}
	return moves
}

func (s *NimState) ResultFor(p Player) float64 {
	if s.chips != 0 {
		panic("nim result requested on a non-terminal state")
	}
	if s.justMoved == p {
		return Win // p took the last chip
	}
	return Loss
}

func (s *NimState) JustMoved() Player {
	return s.justMoved
}

func (s *NimState) String() string {
	return fmt.Sprintf("chips: %d, just moved: %v", s.chips, s.justMoved)
}
