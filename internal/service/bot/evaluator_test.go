package bot

import (
	"math/rand"
	"testing"

	"github.com/mshenoda/connect4/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeuristic(t *testing.T) {
	tests := map[string]Heuristic{
		"default":           Threats,
		"threats":           Threats,
		"defensive":         Defensive,
		"blocking_opponent": BlockingOpponent,
		"random":            Random,
		"":                  Threats,
		"aggressive":        Threats,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseHeuristic(name), "name %q", name)
	}
	assert.Equal(t, "blocking_opponent", BlockingOpponent.String())
}

func TestWindowScore(t *testing.T) {
	tests := []struct {
		name    string
		h       Heuristic
		s, o, e int
		want    int
	}{
		{"blocking four own", BlockingOpponent, 4, 0, 0, 100},
		{"blocking four opp", BlockingOpponent, 0, 4, 0, -100},
		{"blocking three own", BlockingOpponent, 3, 0, 1, 10},
		{"blocking three opp", BlockingOpponent, 0, 3, 1, -10},
		{"blocking two own", BlockingOpponent, 2, 0, 2, 5},
		{"blocking two opp", BlockingOpponent, 0, 2, 2, -5},
		{"blocking mixed", BlockingOpponent, 2, 1, 1, 0},
		{"blocking one each", BlockingOpponent, 1, 1, 2, 0},
		{"defensive three opp", Defensive, 0, 3, 1, -10},
		{"defensive four opp", Defensive, 0, 4, 0, -100},
		{"defensive two opp", Defensive, 0, 2, 2, -5},
		{"defensive ignores own", Defensive, 4, 0, 0, 0},
		{"threats three own", Threats, 3, 0, 1, 20},
		{"threats three opp", Threats, 0, 3, 1, -50},
		{"threats ignores four", Threats, 4, 0, 0, 0},
		{"threats ignores two", Threats, 2, 0, 2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.h.windowScore(tc.s, tc.o, tc.e))
		})
	}
}

// Player1 owns row 5 columns 0-3, Player2 row 4 columns 0-2.
func wonGame(t *testing.T) *domain.Game {
	t.Helper()
	g := domain.NewGame(domain.Player1, domain.Player2)
	for _, col := range []int{0, 0, 1, 1, 2, 2, 3} {
		_, ok := g.MakeMove(col)
		require.True(t, ok)
	}
	require.True(t, g.IsOver())
	return g
}

func TestEvaluateBoard(t *testing.T) {
	g := wonGame(t)

	tests := []struct {
		h    Heuristic
		self domain.PlayerID
		want int
	}{
		{BlockingOpponent, domain.Player1, 100},
		{BlockingOpponent, domain.Player2, -100},
		{Defensive, domain.Player1, -15},
		{Defensive, domain.Player2, -115},
		{Threats, domain.Player1, -30},
		{Threats, domain.Player2, -30},
	}
	for _, tc := range tests {
		ev := NewEvaluator(tc.h, tc.self, nil)
		assert.Equal(t, tc.want, ev.Evaluate(g), "%s for player %d", tc.h, tc.self)
	}
}

func TestEvaluateEmptyBoard(t *testing.T) {
	g := domain.NewGame(domain.Player1, domain.Player2)
	for _, h := range []Heuristic{Threats, Defensive, BlockingOpponent} {
		assert.Equal(t, 0, NewEvaluator(h, domain.Player1, nil).Evaluate(g))
	}
}

func TestEvaluateRandomTerminal(t *testing.T) {
	g := wonGame(t)
	require.Equal(t, domain.Player1, g.CurrentPlayer())

	// the side that just won is the current player and scores -100
	assert.Equal(t, -100, NewEvaluator(Random, domain.Player1, nil).Evaluate(g))
	assert.Equal(t, 100, NewEvaluator(Random, domain.Player2, nil).Evaluate(g))
}

func TestEvaluateRandomIsSeeded(t *testing.T) {
	g := domain.NewGame(domain.Player1, domain.Player2)
	a := NewEvaluator(Random, domain.Player1, rand.New(rand.NewSource(42)))
	b := NewEvaluator(Random, domain.Player1, rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		x := a.Evaluate(g)
		assert.Equal(t, x, b.Evaluate(g))
		assert.GreaterOrEqual(t, x, -100)
		assert.LessOrEqual(t, x, 100)
	}
}
