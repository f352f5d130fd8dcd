package arena

import (
	"fmt"
	"strings"
	"time"

	"github.com/mshenoda/connect4/internal/domain"
)

// Report aggregates a matchup. The per-game series are ordered by game
// index and are only populated for reports produced by Run; stored reports
// carry the totals.
type Report struct {
	ID            int64         `json:"id" db:"id"`
	Player1       string        `json:"player1" db:"player1"`
	Player2       string        `json:"player2" db:"player2"`
	Games         int           `json:"games" db:"games"`
	Player1Wins   int           `json:"player1Wins" db:"player1_wins"`
	Player2Wins   int           `json:"player2Wins" db:"player2_wins"`
	Draws         int           `json:"draws" db:"draws"`
	AvgMoves      float64       `json:"avgMoves" db:"avg_moves"`
	TotalDuration time.Duration `json:"totalDuration" db:"-"`
	TotalSeconds  float64       `json:"totalSeconds" db:"total_seconds"`
	Seed          int64         `json:"seed" db:"seed"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`

	// Per-game series, only on a report returned by Run. Stored and cached
	// reports carry the totals above.
	Player1WinRates []float64       `json:"player1WinRates,omitempty" db:"-"`
	Player2WinRates []float64       `json:"player2WinRates,omitempty" db:"-"`
	GameLengths     []int           `json:"gameLengths,omitempty" db:"-"`
	Durations       []time.Duration `json:"durations,omitempty" db:"-"`
}

func NewReport(player1, player2 string, seed int64, results []GameResult) *Report {
	r := &Report{
		Player1:   player1,
		Player2:   player2,
		Games:     len(results),
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
	}

	totalMoves := 0
	for i, res := range results {
		switch res.Winner {
		case domain.Player1:
			r.Player1Wins++
		case domain.Player2:
			r.Player2Wins++
		default:
			r.Draws++
		}
		totalMoves += res.Moves
		r.TotalDuration += res.Duration

		played := float64(i + 1)
		r.Player1WinRates = append(r.Player1WinRates, float64(r.Player1Wins)/played*100)
		r.Player2WinRates = append(r.Player2WinRates, float64(r.Player2Wins)/played*100)
		r.GameLengths = append(r.GameLengths, res.Moves)
		r.Durations = append(r.Durations, res.Duration)
	}
	if r.Games > 0 {
		r.AvgMoves = float64(totalMoves) / float64(r.Games)
	}
	r.TotalSeconds = r.TotalDuration.Seconds()
	return r
}

// Totals is the report as it is stored: series and TotalDuration dropped.
func (r *Report) Totals() Report {
	t := *r
	t.TotalDuration = 0
	t.Player1WinRates = nil
	t.Player2WinRates = nil
	t.GameLengths = nil
	t.Durations = nil
	return t
}

func (r *Report) percent(n int) float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(n) / float64(r.Games) * 100
}

func (r *Report) Player1WinPct() float64 { return r.percent(r.Player1Wins) }
func (r *Report) Player2WinPct() float64 { return r.percent(r.Player2Wins) }
func (r *Report) DrawPct() float64       { return r.percent(r.Draws) }

// Summary is the multi-line result block printed after a matchup.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s wins: %.2f%%\n", r.Player1, r.Player1WinPct())
	fmt.Fprintf(&b, "%s wins: %.2f%%\n", r.Player2, r.Player2WinPct())
	fmt.Fprintf(&b, "Draws: %d %.2f%%\n", r.Draws, r.DrawPct())
	fmt.Fprintf(&b, "Avg Moves: %.2f", r.AvgMoves)
	return b.String()
}

func (r *Report) OneLine() string {
	return fmt.Sprintf("games=%d p1=%q wins=%d p2=%q wins=%d draws=%d avg_moves=%.2f",
		r.Games, r.Player1, r.Player1Wins, r.Player2, r.Player2Wins, r.Draws, r.AvgMoves)
}
