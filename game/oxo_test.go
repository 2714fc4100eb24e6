package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOXOCompletedRow(t *testing.T) {
	s := &OXOState{
		board:     [9]Player{Player1, Player1, Player1},
		justMoved: Player1,
	}

	require.Empty(t, s.LegalMoves(), "A completed line ends the game even with empty squares left")
	require.Equal(t, Win, s.ResultFor(Player1), "Player 1 owns the top row")
	require.Equal(t, Loss, s.ResultFor(Player2), "Player 2 lost to the top row")
}

func TestOXODrawnBoard(t *testing.T) {
	s := &OXOState{
		board: [9]Player{
			Player1, Player2, Player1,
			Player1, Player2, Player2,
			Player2, Player1, Player1,
		},
		justMoved: Player1,
	}

	require.Empty(t, s.LegalMoves(), "A full board is terminal")
	require.Equal(t, Draw, s.ResultFor(Player1), "A full board without a line is a draw")
	require.Equal(t, Draw, s.ResultFor(Player2), "A full board without a line is a draw")
}

func TestOXOPlayMarksWithTheMover(t *testing.T) {
	s := NewOXO()

	s.Play(Cell(4))

	require.Equal(t, Player1, s.board[4], "The first move belongs to player 1")
	require.Equal(t, Player1, s.JustMoved(), "Playing flips the just-moved player")
	require.Len(t, s.LegalMoves(), 8, "Eight squares remain")
}

func TestOXOCloneIndependence(t *testing.T) {
	s := NewOXO()
	s.Play(Cell(0))

	clone := s.Clone()
	clone.Play(Cell(4))

	require.Equal(t, Nobody, s.board[4], "Mutating a clone must not touch the original board")
	require.Equal(t, Player1, s.JustMoved(), "Mutating a clone must not touch the original")
}

func TestOXOContractViolations(t *testing.T) {
	t.Run("marking an occupied square", func(t *testing.T) {
		s := NewOXO()
		s.Play(Cell(4))
		require.Panics(t, func() { s.Play(Cell(4)) })
	})

	t.Run("playing after a completed line", func(t *testing.T) {
		s := &OXOState{
			board:     [9]Player{Player1, Player1, Player1},
			justMoved: Player1,
		}
		require.Panics(t, func() { s.Play(Cell(5)) })
	})

	t.Run("result on a non-terminal board", func(t *testing.T) {
		s := NewOXO()
		require.Panics(t, func() { s.ResultFor(Player1) })
	})
}
