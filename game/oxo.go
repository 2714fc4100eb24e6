package game

import (
	"fmt"
	"strings"
)

// Cell is the board square an OXO move marks, 0 to 8 in row-major order.
type Cell int

func (c Cell) String() string {
	return fmt.Sprintf("square %d", int(c))
}

// The eight winning lines of the 3x3 board.
var oxoLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// OXOState is the 3x3 marking game: the first player to own a full row,
// column or diagonal wins. A position with a completed line is terminal and
// has no legal moves, even if empty squares remain.
type OXOState struct {
	board     [9]Player // Nobody marks an empty square
	justMoved Player
}

func NewOXO() *OXOState {
	return &OXOState{justMoved: Player2}
}

func (s *OXOState) Clone() State {
	clone := *s
	return &clone
}

func (s *OXOState) Play(move Move) {
	cell, ok := move.(Cell)
	if !ok || cell < 0 || cell > 8 || s.board[cell] != Nobody || s.lineOwner() != Nobody {
		panic(fmt.Sprintf("illegal oxo move: %v", move))
	}
	s.justMoved = s.justMoved.Opponent()
	s.board[cell] = s.justMoved
}

func (s *OXOState) LegalMoves() []Move {
	if s.lineOwner() != Nobody {
		return nil
	}
	var moves []Move
	for i, owner := range s.board {
		if owner == Nobody {
			moves = append(moves, Cell(i))
		}
	}
	return moves
}

func (s *OXOState) ResultFor(p Player) float64 {
	if owner := s.lineOwner(); owner != Nobody {
		if owner == p {
			return Win
		}
		return Loss
	}
	for _, owner := range s.board {
		if owner == Nobody {
			panic("oxo result requested on a non-terminal state")
		}
	}
	return Draw // full board, no line
}

func (s *OXOState) JustMoved() Player {
	return s.justMoved
}

// lineOwner returns the player owning a completed line, or Nobody.
func (s *OXOState) lineOwner() Player {
	for _, line := range oxoLines {
		owner := s.board[line[0]]
		if owner != Nobody && owner == s.board[line[1]] && owner == s.board[line[2]] {
			return owner
		}
	}
	return Nobody
}

func (s *OXOState) String() string {
	var sb strings.Builder
	for i, owner := range s.board {
		sb.WriteByte(".XO"[owner])
		if i%3 == 2 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
