package searcher

import (
	"fmt"
	"math"
	"strings"

	"uct/game"
)

// node is one vertex of the search tree, representing a position reached by
// some path of moves from the root. wins is always from the viewpoint of
// the node's own just-moved player, never the root's.
type node struct {
	move     game.Move // move that produced this node; nil at the root
	parent   *node     // nil at the root
	children []*node   // insertion-ordered, exclusively owned
	wins     float64
	visits   int
	untried  []game.Move // legal moves not yet expanded into children
	player   game.Player // just-moved player, copied from the state at creation
}

func newNode(move game.Move, parent *node, state game.State) *node {
	return &node{
		move:    move,
		parent:  parent,
		untried: state.LegalMoves(),
		player:  state.JustMoved(),
	}
}

// selectChild returns the child with the best UCB1 value. Children are
// scanned in insertion order and ties go to the first maximal child, so
// selection is deterministic for a given tree.
func (n *node) selectChild() *node {
	if n.visits == 0 {
		panic("node has children but no visits")
	}
	lnN := math.Log(float64(n.visits))

	var best *node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		if score := ucb1(child.wins, child.visits, lnN); score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// addChild moves move from the untried set into the child collection and
// returns the new child.
func (n *node) addChild(move game.Move, state game.State) *node {
	at := -1
	for i, m := range n.untried {
		if m == move {
			at = i
			break
		}
	}
	if at < 0 {
		panic(fmt.Sprintf("%v is not an untried move", move))
	}
	n.untried = append(n.untried[:at], n.untried[at+1:]...)

	child := newNode(move, n, state)
	n.children = append(n.children, child)
	return child
}

// record adds one visit and a result from the viewpoint of this node's
// just-moved player.
func (n *node) record(result float64) {
	n.visits++
	n.wins += result
}

// robustChild returns the most-visited child, the first maximal one on a
// tie. Visit count is a lower-variance signal of the recommended move than
// win ratio, especially at low budgets.
func (n *node) robustChild() *node {
	if len(n.children) == 0 {
		panic("node has no children")
	}
	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.visits > best.visits {
			best = child
		}
	}
	return best
}

func (n *node) String() string {
	return fmt.Sprintf("[M:%v W/V:%.1f/%d U:%d]", n.move, n.wins, n.visits, len(n.untried))
}

// writeTree renders the subtree for the diagnostics sink.
func (n *node) writeTree(sb *strings.Builder, indent int) {
	sb.WriteByte('\n')
	for i := 0; i < indent; i++ {
		sb.WriteString("| ")
	}
	sb.WriteString(n.String())
	for _, child := range n.children {
		child.writeTree(sb, indent+1)
	}
}

// writeChildren renders a one-line-per-child summary of the immediate
// children.
func (n *node) writeChildren(sb *strings.Builder) {
	for _, child := range n.children {
		sb.WriteString(child.String())
		sb.WriteByte('\n')
	}
}
