// Package searcher implements Monte Carlo Tree Search with the UCB1
// selection rule (UCT) for two-player, zero-sum, perfect-information
// deterministic games. It depends only on the game.State capability, never
// on a concrete game.
package searcher

import "math"

// ucb1 scores a child holding rewards q over n visits, under a parent whose
// visit count has natural log lnN. The exploration weight is fixed at 1.
func ucb1(q float64, n int, lnN float64) float64 {
	if n == 0 {
		panic("cannot compute UCB1: 0 visits")
	}
	return q/float64(n) + math.Sqrt(2*lnN/float64(n))
}
