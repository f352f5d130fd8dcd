package bot

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mshenoda/connect4/internal/domain"
)

// NoMove is returned by BestMove when the game has no legal column left.
const NoMove = -1

// Engine picks moves for Self with depth limited minimax and alpha-beta
// pruning. Every branch works on its own clone of the game, so an Engine
// keeps no board state between calls. An Engine is not safe for concurrent
// use because its evaluator owns a random source.
type Engine struct {
	Self      domain.PlayerID
	Depth     int
	Evaluator *Evaluator

	nodes int
}

// NewEngine panics when depth is negative.
func NewEngine(self domain.PlayerID, depth int, h Heuristic, rng *rand.Rand) *Engine {
	if depth < 0 {
		panic(fmt.Sprintf("bot: %v (got %d)", domain.ErrInvalidDepth, depth))
	}
	return &Engine{
		Self:      self,
		Depth:     depth,
		Evaluator: NewEvaluator(h, self, rng),
	}
}

// NewEngineFromName resolves the heuristic by its configuration name.
func NewEngineFromName(self domain.PlayerID, depth int, heuristic string, rng *rand.Rand) *Engine {
	return NewEngine(self, depth, ParseHeuristic(heuristic), rng)
}

// BestMove returns the column with the highest minimax score; ties go to
// the lowest column. NoMove when there is nothing to play.
func (e *Engine) BestMove(g *domain.Game) int {
	e.nodes = 0

	bestCol := NoMove
	bestScore := math.MinInt

	for _, col := range g.ValidMoves() {
		child := g.Clone()
		child.MakeMove(col)

		score := e.minimax(child, e.Depth, math.MinInt, math.MaxInt, false)
		if bestCol == NoMove || score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	return bestCol
}

// Nodes reports how many positions the last BestMove call visited.
func (e *Engine) Nodes() int {
	return e.nodes
}

// minimax scores every leaf from Self's point of view; only the max/min
// choice alternates between plies.
func (e *Engine) minimax(g *domain.Game, depth int, alpha, beta int, isMaximizing bool) int {
	e.nodes++

	if depth == 0 || g.IsOver() {
		return e.Evaluator.Evaluate(g)
	}

	validColumns := g.ValidMoves()
	// a full board is a leaf as well
	if len(validColumns) == 0 {
		return e.Evaluator.Evaluate(g)
	}

	if isMaximizing {
		maxEval := math.MinInt
		for _, col := range validColumns {
			child := g.Clone()
			child.MakeMove(col)

			eval := e.minimax(child, depth-1, alpha, beta, false)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)

			if beta <= alpha {
				break // Beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, col := range validColumns {
		child := g.Clone()
		child.MakeMove(col)

		eval := e.minimax(child, depth-1, alpha, beta, true)
		minEval = min(minEval, eval)
		beta = min(beta, eval)

		if beta <= alpha {
			break // Alpha cutoff
		}
	}
	return minEval
}
