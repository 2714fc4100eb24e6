package game

import (
	"fmt"
	"strings"
)

// Square is the board coordinate an Othello piece is placed on.
type Square struct {
	X, Y int
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d,%d)", sq.X, sq.Y)
}

var othelloDirections = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// OthelloState is the flip-based board game on an even-sized square board.
// Each piece played must sandwich opponent pieces between itself and a piece
// already on the board; sandwiched pieces are flipped. The game ends as soon
// as the player about to move has no legal placement, and the player with
// the piece majority wins.
type OthelloState struct {
	board     [][]Player // board[x][y], Nobody marks an empty square
	size      int
	justMoved Player
}

// NewOthello sets up the four central pieces on a size x size board. size
// must be even.
func NewOthello(size int) *OthelloState {
	if size < 4 || size%2 != 0 {
		panic(fmt.Sprintf("othello board size must be even and at least 4, got %d", size))
	}
	board := make([][]Player, size)
	for x := range board {
		board[x] = make([]Player, size)
	}
	mid := size / 2
	board[mid][mid] = Player1
	board[mid-1][mid-1] = Player1
	board[mid][mid-1] = Player2
	board[mid-1][mid] = Player2
	return &OthelloState{
		board:     board,
		size:      size,
		justMoved: Player2,
	}
}

func (s *OthelloState) Clone() State {
	board := make([][]Player, s.size)
	for x := range board {
		board[x] = make([]Player, s.size)
		copy(board[x], s.board[x])
	}
	return &OthelloState{
		board:     board,
		size:      s.size,
		justMoved: s.justMoved,
	}
}

func (s *OthelloState) Play(move Move) {
	sq, ok := move.(Square)
	if !ok || !s.onBoard(sq.X, sq.Y) || s.board[sq.X][sq.Y] != Nobody {
		panic(fmt.Sprintf("illegal othello move: %v", move))
	}
	flips := s.sandwichedAround(sq.X, sq.Y)
	if len(flips) == 0 {
		panic(fmt.Sprintf("illegal othello move: %v flips nothing", move))
	}
	s.justMoved = s.justMoved.Opponent()
	s.board[sq.X][sq.Y] = s.justMoved
	for _, f := range flips {
		s.board[f.X][f.Y] = s.justMoved
	}
}

func (s *OthelloState) LegalMoves() []Move {
	var moves []Move
	for x := 0; x < s.size; x++ {
		for y := 0; y < s.size; y++ {
			if s.board[x][y] == Nobody && len(s.sandwichedAround(x, y)) > 0 {
				moves = append(moves, Square{x, y})
			}
		}
	}
	return moves
}

func (s *OthelloState) ResultFor(p Player) float64 {
	if len(s.LegalMoves()) > 0 {
		panic("othello result requested on a non-terminal state")
	}
	mine, theirs := 0, 0
	for x := 0; x < s.size; x++ {
		for y := 0; y < s.size; y++ {
			switch s.board[x][y] {
			case p:
				mine++
			case p.Opponent():
				theirs++
			}
		}
	}
	switch {
	case mine > theirs:
		return Win
	case theirs > mine:
		return Loss
	default:
		return Draw
	}
}

func (s *OthelloState) JustMoved() Player {
	return s.justMoved
}

// sandwichedAround returns every opponent piece that placing at (x,y) would
// flip, from the viewpoint of the player about to move. The opponent of the
// mover is exactly the just-moved player.
func (s *OthelloState) sandwichedAround(x, y int) []Square {
	var flips []Square
	for _, d := range othelloDirections {
		flips = append(flips, s.sandwichedInDirection(x, y, d[0], d[1])...)
	}
	return flips
}

// sandwichedInDirection walks from (x,y) along (dx,dy) over a chain of
// just-moved-player pieces and returns the chain if it ends on one of the
// mover's own pieces.
func (s *OthelloState) sandwichedInDirection(x, y, dx, dy int) []Square {
	x += dx
	y += dy
	var chain []Square
	for s.onBoard(x, y) && s.board[x][y] == s.justMoved {
		chain = append(chain, Square{x, y})
		x += dx
		y += dy
	}
	if s.onBoard(x, y) && s.board[x][y] == s.justMoved.Opponent() {
		return chain
	}
	return nil
}

func (s *OthelloState) onBoard(x, y int) bool {
	return x >= 0 && x < s.size && y >= 0 && y < s.size
}

func (s *OthelloState) String() string {
	var sb strings.Builder
	for y := s.size - 1; y >= 0; y-- {
		for x := 0; x < s.size; x++ {
			sb.WriteByte(".XO"[s.board[x][y]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
