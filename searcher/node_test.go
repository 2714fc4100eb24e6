package searcher

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"uct/game"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return fmt.Sprintf("mock %d", m.id)
}

type mockState struct {
	player game.Player
	moves  []game.Move
	played []game.Move
	result map[game.Player]float64
}

func (m *mockState) Clone() game.State {
	clone := *m
	clone.moves = append([]game.Move(nil), m.moves...)
	clone.played = append([]game.Move(nil), m.played...)
	return &clone
}

func (m *mockState) Play(move game.Move) {
	m.played = append(m.played, move)
	m.player = m.player.Opponent()
}

func (m *mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m *mockState) ResultFor(p game.Player) float64 {
	return m.result[p]
}

func (m *mockState) JustMoved() game.Player {
	return m.player
}

func TestSelectChild(t *testing.T) {
	t.Run("selecting the child with the max UCB1 value", func(t *testing.T) {
		worse := &node{wins: 0, visits: 2}
		better := &node{wins: 2, visits: 2}
		parent := &node{children: []*node{worse, better}, visits: 4}

		got := parent.selectChild()

		require.Equal(t, better, got, "Node should select the child with the best UCB1 value")
	})

	t.Run("preferring a rarely visited child", func(t *testing.T) {
		exploited := &node{wins: 60, visits: 99}
		unexplored := &node{wins: 0, visits: 1}
		parent := &node{children: []*node{exploited, unexplored}, visits: 100}

		got := parent.selectChild()

		require.Equal(t, unexplored, got, "Exploration bonus should dominate for a rarely visited child")
	})

	t.Run("breaking ties by the first maximal child", func(t *testing.T) {
		first := &node{wins: 1, visits: 2}
		second := &node{wins: 1, visits: 2}
		parent := &node{children: []*node{first, second}, visits: 4}

		got := parent.selectChild()

		require.Same(t, first, got, "Ties should go to the first maximal child in insertion order")
	})

	t.Run("panicking on a parent without visits", func(t *testing.T) {
		parent := &node{children: []*node{{wins: 1, visits: 1}}}

		require.Panics(t, func() { parent.selectChild() },
			"A node with children but no visits breaks the phase ordering contract")
	})

	t.Run("panicking on an unvisited child", func(t *testing.T) {
		parent := &node{children: []*node{{}}, visits: 1}

		require.Panics(t, func() { parent.selectChild() },
			"Every child must have been visited before selection")
	})
}

func TestAddChild(t *testing.T) {
	t.Run("moving the move from untried to children", func(t *testing.T) {
		m0, m1, m2 := mockMove{id: 0}, mockMove{id: 1}, mockMove{id: 2}
		parent := newNode(nil, nil, &mockState{
			player: game.Player2,
			moves:  []game.Move{m0, m1, m2},
		})
		childState := &mockState{player: game.Player1, moves: []game.Move{mockMove{id: 3}}}

		child := parent.addChild(m1, childState)

		require.Equal(t, []game.Move{m0, m2}, parent.untried, "Added move should leave the untried set")
		require.Equal(t, []*node{child}, parent.children, "New child should be appended to the child collection")
		require.Equal(t, m1, child.move, "Child should remember the move that produced it")
		require.Same(t, parent, child.parent, "Child should back-reference its parent")
		require.Equal(t, game.Player1, child.player, "Child should copy the just-moved player from the state")
		require.Equal(t, []game.Move{mockMove{id: 3}}, child.untried, "Child untried set should start from the state's legal moves")
	})

	t.Run("panicking for a move outside the untried set", func(t *testing.T) {
		parent := newNode(nil, nil, &mockState{moves: []game.Move{mockMove{id: 0}}})

		require.Panics(t, func() { parent.addChild(mockMove{id: 9}, &mockState{}) },
			"Adding an unknown move is a contract violation")
	})
}

func TestRecord(t *testing.T) {
	n := &node{}

	n.record(1.0)
	n.record(0.5)

	require.Equal(t, 2, n.visits, "Each record should add exactly one visit")
	require.Equal(t, 1.5, n.wins, "Results should accumulate into the cumulative score")
}

func TestRobustChild(t *testing.T) {
	t.Run("picking the most visited child", func(t *testing.T) {
		parent := &node{children: []*node{
			{visits: 3},
			{visits: 5, wins: 1},
			{visits: 5, wins: 4},
		}}

		got := parent.robustChild()

		require.Same(t, parent.children[1], got,
			"Most visits should win, first maximal child on a tie, regardless of win ratio")
	})

	t.Run("panicking without children", func(t *testing.T) {
		require.Panics(t, func() { (&node{}).robustChild() },
			"A root without children has nothing valid to return")
	})
}
