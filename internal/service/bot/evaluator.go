package bot

import (
	"math/rand"

	"github.com/mshenoda/connect4/internal/domain"
)

// Heuristic selects how leaf positions are scored.
type Heuristic int

const (
	Threats Heuristic = iota
	Defensive
	BlockingOpponent
	Random
)

const (
	SCORE_LINE        = 100 // four of a kind in a window
	SCORE_THREE_OPEN  = 10  // three plus one empty
	SCORE_TWO_OPEN    = 5   // two plus two empty
	SCORE_OWN_THREAT  = 20  // threats heuristic, own three plus one empty
	SCORE_OPP_THREAT  = 50  // threats heuristic, opponent three plus one empty
	RANDOM_SCORE_SPAN = 100
)

var heuristicNames = map[Heuristic]string{
	Threats:          "threats",
	Defensive:        "defensive",
	BlockingOpponent: "blocking_opponent",
	Random:           "random",
}

// HeuristicNames lists the accepted configuration names.
var HeuristicNames = []string{"default", "threats", "defensive", "blocking_opponent", "random"}

// ParseHeuristic maps a configuration name to a heuristic. "default" and any
// unknown name resolve to Threats.
func ParseHeuristic(name string) Heuristic {
	switch name {
	case "blocking_opponent":
		return BlockingOpponent
	case "defensive":
		return Defensive
	case "random":
		return Random
	default:
		return Threats
	}
}

func (h Heuristic) String() string {
	if name, ok := heuristicNames[h]; ok {
		return name
	}
	return "threats"
}

// windowScore scores one window given the number of self marks, opponent
// marks and empty cells in it.
func (h Heuristic) windowScore(s, o, e int) int {
	score := 0
	switch h {
	case BlockingOpponent:
		score += ownWindowScore(s, e)
		score += opponentWindowScore(o, e)
	case Defensive:
		score += opponentWindowScore(o, e)
	default:
		if s == domain.ToWin-1 && e == 1 {
			score += SCORE_OWN_THREAT
		}
		if o == domain.ToWin-1 && e == 1 {
			score -= SCORE_OPP_THREAT
		}
	}
	return score
}

func ownWindowScore(s, e int) int {
	switch {
	case s == domain.ToWin:
		return SCORE_LINE
	case s == domain.ToWin-1 && e == 1:
		return SCORE_THREE_OPEN
	case s == domain.ToWin-2 && e == 2:
		return SCORE_TWO_OPEN
	}
	return 0
}

func opponentWindowScore(o, e int) int {
	switch {
	case o == domain.ToWin:
		return -SCORE_LINE
	case o == domain.ToWin-1 && e == 1:
		return -SCORE_THREE_OPEN
	case o == domain.ToWin-2 && e == 2:
		return -SCORE_TWO_OPEN
	}
	return 0
}

// Evaluator scores positions from the fixed perspective of self.
type Evaluator struct {
	Heuristic Heuristic
	Self      domain.PlayerID
	rng       *rand.Rand
}

// NewEvaluator binds a heuristic to self. rng is only consulted by Random;
// a nil rng gets a source seeded with 1.
func NewEvaluator(h Heuristic, self domain.PlayerID, rng *rand.Rand) *Evaluator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Evaluator{Heuristic: h, Self: self, rng: rng}
}

// Evaluate returns a signed score, positive favours self.
func (ev *Evaluator) Evaluate(g *domain.Game) int {
	if ev.Heuristic == Random {
		return ev.evaluateRandom(g)
	}

	opponent := g.Opponent(ev.Self)
	score := 0
	g.ForEachWindow(func(w domain.Window) {
		s := w.Count(ev.Self)
		o := w.Count(opponent)
		e := w.Count(domain.Empty)
		score += ev.Heuristic.windowScore(s, o, e)
	})
	return score
}

// evaluateRandom: at a terminal position the current player is the one who
// just won, and a win for self still scores -100.
func (ev *Evaluator) evaluateRandom(g *domain.Game) int {
	if g.IsOver() {
		if g.CurrentPlayer() == ev.Self {
			return -RANDOM_SCORE_SPAN
		}
		return RANDOM_SCORE_SPAN
	}
	return ev.rng.Intn(2*RANDOM_SCORE_SPAN+1) - RANDOM_SCORE_SPAN
}
