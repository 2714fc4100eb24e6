package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNimStartingPosition(t *testing.T) {
	s := NewNim(4)

	require.Equal(t, Player2, s.JustMoved(), "Player 1 has the first move")
	require.Equal(t, []Move{TakeMove(1), TakeMove(2), TakeMove(3)}, s.LegalMoves(),
		"A 4-chip heap allows taking 1, 2 or 3 chips")
}

func TestNimPlay(t *testing.T) {
	s := NewNim(4)

	s.Play(TakeMove(3))

	require.Equal(t, 1, s.chips, "Taking 3 chips from 4 leaves 1")
	require.Equal(t, Player1, s.JustMoved(), "Playing flips the just-moved player")
	require.Equal(t, []Move{TakeMove(1)}, s.LegalMoves(), "Only the last chip remains")
}

func TestNimCloneIndependence(t *testing.T) {
	s := NewNim(4)

	clone := s.Clone()
	clone.Play(TakeMove(3))

	require.Equal(t, 4, s.chips, "Mutating a clone must not touch the original")
	require.Equal(t, Player2, s.JustMoved(), "Mutating a clone must not touch the original")
	require.Len(t, s.LegalMoves(), 3, "Mutating a clone must not touch the original")
}

func TestNimTakerOfLastChipWins(t *testing.T) {
	s := NewNim(2)

	s.Play(TakeMove(2))

	require.Empty(t, s.LegalMoves(), "An empty heap is terminal")
	require.Equal(t, Win, s.ResultFor(Player1), "Player 1 took the last chip")
	require.Equal(t, Loss, s.ResultFor(Player2), "Player 2 lost the heap")
}

func TestNimContractViolations(t *testing.T) {
	t.Run("taking more chips than remain", func(t *testing.T) {
		s := NewNim(2)
		require.Panics(t, func() { s.Play(TakeMove(3)) })
	})

	t.Run("playing a foreign move type", func(t *testing.T) {
		s := NewNim(2)
		require.Panics(t, func() { s.Play(Cell(1)) })
	})

	t.Run("result on a non-terminal heap", func(t *testing.T) {
		s := NewNim(2)
		require.Panics(t, func() { s.ResultFor(Player1) })
	})
}
