package searcher

import (
	"io"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"uct/game"
)

type Option func(u *UCT)

// UCT drives the search: each iteration runs selection, expansion, rollout
// and backpropagation to completion, in that order, on a tree it builds from
// the root position. The search is strictly single-threaded and the tree is
// discarded when FindNextMove returns.
type UCT struct {
	iterations int
	duration   time.Duration
	rng        *rand.Rand
	sink       io.Writer
	dumpTree   bool
	metrics    MetricsCollector

	lastMetrics MoveMetrics
}

// WithIterations sets the iteration budget.
func WithIterations(iterations int) Option {
	return func(u *UCT) {
		if iterations > 0 {
			u.iterations = iterations
		}
	}
}

// WithDuration adds a wall-clock deadline as a second stopping predicate,
// checked at the top of the iteration loop alongside the iteration budget.
func WithDuration(duration time.Duration) Option {
	return func(u *UCT) {
		if duration > 0 {
			u.duration = duration
		}
	}
}

// WithRand sets the random source used for expansion and rollouts. Seed it
// for reproducible searches.
func WithRand(rng *rand.Rand) Option {
	return func(u *UCT) {
		if rng != nil {
			u.rng = rng
		}
	}
}

// WithDiagnostics routes a human-readable summary of the root's children to
// w after every search. The format is for inspection only, not a contract.
func WithDiagnostics(w io.Writer) Option {
	return func(u *UCT) {
		u.sink = w
	}
}

// WithTreeDump routes a dump of the entire tree to w after every search.
func WithTreeDump(w io.Writer) Option {
	return func(u *UCT) {
		u.sink = w
		u.dumpTree = true
	}
}

// WithMetrics enables per-search metrics collection, readable through
// Metrics after each FindNextMove call.
func WithMetrics() Option {
	return func(u *UCT) {
		u.metrics = NewMetricsCollector()
	}
}

func NewUCT(options ...Option) *UCT {
	u := &UCT{
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(u)
	}
	if u.iterations <= 0 && u.duration <= 0 {
		panic("must specify search iterations or duration")
	}
	if u.rng == nil {
		u.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return u
}

// FindNextMove searches from state and returns the move of the most-visited
// root child. state must be non-terminal; searching a terminal position is
// a caller error. The caller's state is never mutated: every iteration
// works on a clone.
func (u *UCT) FindNextMove(state game.State) game.Move {
	root := newNode(nil, nil, state)
	if len(root.untried) == 0 {
		panic("cannot search a terminal position")
	}

	u.metrics.Start()
	start := time.Now()
	for i := 0; u.searching(i, start); i++ {
		u.simulate(root, state)
		u.metrics.AddIteration()
	}
	u.lastMetrics = u.metrics.Complete()

	u.dump(root)
	return root.robustChild().move
}

// Metrics reports statistics for the most recent FindNextMove call. Zero
// unless the searcher was built with WithMetrics.
func (u *UCT) Metrics() MoveMetrics {
	return u.lastMetrics
}

// searching evaluates the stopping predicates: the iteration budget and,
// when set, the wall-clock deadline.
func (u *UCT) searching(iteration int, start time.Time) bool {
	if u.iterations > 0 && iteration >= u.iterations {
		return false
	}
	if u.duration > 0 && time.Since(start) >= u.duration {
		return false
	}
	return true
}

// simulate runs one iteration of the four phases.
func (u *UCT) simulate(root *node, rootState game.State) {
	state := rootState.Clone()

	// Selection: descend through fully expanded, non-terminal nodes.
	n := root
	depth := 0
	for len(n.untried) == 0 && len(n.children) > 0 {
		n = n.selectChild()
		state.Play(n.move)
		depth++
	}

	// Expansion: materialize one untried move, chosen uniformly at random.
	// A terminal node has none and stays as is.
	if len(n.untried) > 0 {
		move := n.untried[u.rng.Intn(len(n.untried))]
		state.Play(move)
		n = n.addChild(move, state)
		depth++
	}
	u.metrics.ObserveDepth(depth)

	// Rollout: play uniformly at random to a terminal position. No tree
	// mutation below the expanded node.
	played := 0
	for moves := state.LegalMoves(); len(moves) > 0; moves = state.LegalMoves() {
		state.Play(moves[u.rng.Intn(len(moves))])
		played++
	}
	u.metrics.AddRolloutMoves(played)

	// Backpropagation: every node on the path scores the terminal position
	// from its own just-moved player's viewpoint, so alternating levels
	// interpret the same outcome from opposite sides without an explicit
	// sign flip.
	for ; n != nil; n = n.parent {
		n.record(state.ResultFor(n.player))
	}
}

func (u *UCT) dump(root *node) {
	if u.sink == nil {
		return
	}
	var sb strings.Builder
	if u.dumpTree {
		root.writeTree(&sb, 0)
		sb.WriteByte('\n')
	} else {
		root.writeChildren(&sb)
	}
	io.WriteString(u.sink, sb.String())
}
