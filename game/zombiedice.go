package game

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/rand"
)

// DiceMove is a push-your-luck decision: roll again or bank the round score.
type DiceMove int

const (
	Roll DiceMove = iota
	Keep
)

func (m DiceMove) String() string {
	if m == Roll {
		return "roll"
	}
	return "keep"
}

type die int

const (
	redDie die = iota
	yellowDie
	greenDie
)

var dieNames = [...]string{"red", "yellow", "green"}

func (d die) String() string {
	return dieNames[d]
}

type dieFace int

const (
	shotgunFace dieFace = iota
	footstepsFace
	brainsFace
)

// DiceState is the push-your-luck dice game. On each turn a player draws
// dice from the cup and rolls them: brains score, three shotguns bust the
// round. Keeping banks the round score and passes the turn. Reaching 13
// brains triggers the last round; equal totals after it force a tiebreaker
// round.
//
// Die rolls happen inside Play, so two clones playing the same move may
// diverge; legality and terminal results still depend only on the copied
// state, which is all the search contract requires.
type DiceState struct {
	scores    [3]int // indexed by Player
	round     int
	lastRound bool
	tiebreak  bool
	ended     bool
	justMoved Player

	// current round, reset by startRound
	rollCount int
	score     int
	brains    []die
	shotguns  []die
	hand      []die
	cup       []die

	rng *rand.Rand
}

// NewDice starts a game with player 1 rolling first. rng drives the die
// rolls; pass a seeded source for reproducible games, or nil for a
// time-seeded one.
func NewDice(rng *rand.Rand) *DiceState {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	s := &DiceState{
		justMoved: Player1,
		rng:       rng,
	}
	s.startRound()
	return s
}

// Clone deep-copies the game state. The random source is shared with the
// original: it is roll machinery, not position.
func (s *DiceState) Clone() State {
	clone := *s
	clone.brains = append([]die(nil), s.brains...)
	clone.shotguns = append([]die(nil), s.shotguns...)
	clone.hand = append([]die(nil), s.hand...)
	clone.cup = append([]die(nil), s.cup...)
	return &clone
}

func (s *DiceState) Play(move Move) {
	m, ok := move.(DiceMove)
	if !ok || s.ended || (m == Keep && s.rollCount == 0) {
		panic(fmt.Sprintf("illegal dice move: %v", move))
	}
	switch m {
	case Roll:
		s.rollHand()
		if len(s.shotguns) >= 3 {
			s.endRound()
		}
	case Keep:
		s.endRound()
	}
}

func (s *DiceState) LegalMoves() []Move {
	if s.ended {
		return nil
	}
	if s.rollCount == 0 {
		return []Move{Roll}
	}
	return []Move{Roll, Keep}
}

func (s *DiceState) ResultFor(p Player) float64 {
	if !s.ended {
		panic("dice result requested on a non-terminal state")
	}
	switch {
	case s.scores[p] > s.scores[p.Opponent()]:
		return Win
	case s.scores[p] < s.scores[p.Opponent()]:
		return Loss
	default:
		return Draw
	}
}

func (s *DiceState) JustMoved() Player {
	return s.justMoved
}

func (s *DiceState) startRound() {
	s.round++
	s.rollCount = 0
	s.score = 0
	s.brains = nil
	s.shotguns = nil
	s.hand = nil
	s.cup = nil
	for i := 0; i < 3; i++ {
		s.cup = append(s.cup, redDie)
	}
	for i := 0; i < 4; i++ {
		s.cup = append(s.cup, yellowDie)
	}
	for i := 0; i < 6; i++ {
		s.cup = append(s.cup, greenDie)
	}
}

func (s *DiceState) endRound() {
	s.justMoved = s.justMoved.Opponent()

	if len(s.shotguns) < 3 { // not busted
		s.scores[s.justMoved] += s.score
	}

	if s.tiebreak {
		s.ended = true
	}
	if s.lastRound && s.justMoved == Player2 {
		s.tiebreak = s.scores[Player1] == s.scores[Player2]
		s.ended = !s.tiebreak
	}
	if s.scores[s.justMoved] >= 13 {
		// once a player reaches 13 brains, the next round is the last
		s.lastRound = true
	}

	s.startRound()
}

func (s *DiceState) rollHand() {
	// ran out of dice: rolled brains go back into the cup
	if 3-len(s.hand) > len(s.cup) {
		s.cup = append(s.cup, s.brains...)
		s.brains = nil
	}

	// refill the hand to 3 dice from the cup
	for len(s.hand) < 3 {
		i := s.rng.Intn(len(s.cup))
		s.hand = append(s.hand, s.cup[i])
		s.cup = append(s.cup[:i], s.cup[i+1:]...)
	}

	s.rollCount++

	kept := s.hand[:0]
	for _, d := range s.hand {
		switch s.rollDie(d) {
		case shotgunFace:
			s.shotguns = append(s.shotguns, d)
		case brainsFace:
			s.score++
			s.brains = append(s.brains, d)
		default: // footsteps stay in hand for the next roll
			kept = append(kept, d)
		}
	}
	s.hand = kept
}

// rollDie rolls one die. Red dice carry three shotgun faces, green dice
// three brain faces, yellow dice two of each.
func (s *DiceState) rollDie(d die) dieFace {
	roll := s.rng.Intn(6) + 1
	switch d {
	case redDie:
		switch {
		case roll <= 3:
			return shotgunFace
		case roll <= 5:
			return footstepsFace
		default:
			return brainsFace
		}
	case yellowDie:
		switch {
		case roll <= 2:
			return shotgunFace
		case roll <= 4:
			return footstepsFace
		default:
			return brainsFace
		}
	default: // green
		switch {
		case roll <= 1:
			return shotgunFace
		case roll <= 3:
			return footstepsFace
		default:
			return brainsFace
		}
	}
}

func (s *DiceState) String() string {
	var sb strings.Builder
	mover := s.justMoved.Opponent()
	fmt.Fprintf(&sb, "to play: %v\n", mover)
	fmt.Fprintf(&sb, "my score: %d\n", s.scores[mover])
	fmt.Fprintf(&sb, "their score: %d\n", s.scores[s.justMoved])
	fmt.Fprintf(&sb, "round: %d\n", s.round)
	fmt.Fprintf(&sb, "round score: %d\n", s.score)
	fmt.Fprintf(&sb, "rolls: %d\n", s.rollCount)
	fmt.Fprintf(&sb, "brains: %v, shotguns: %v, hand: %v\n", s.brains, s.shotguns, s.hand)
	return sb.String()
}
