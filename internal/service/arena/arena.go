package arena

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/mshenoda/connect4/internal/domain"
	"github.com/mshenoda/connect4/internal/service/bot"
	"golang.org/x/sync/errgroup"
)

// PlayerSettings describes one engine taking part in a matchup.
type PlayerSettings struct {
	Name      string `json:"name"`
	Depth     int    `json:"depth"`
	Heuristic string `json:"heuristic"`
}

// DisplayName renders as "AI1 (d=1,h=threats)".
func (p PlayerSettings) DisplayName() string {
	return fmt.Sprintf("%s (d=%d,h=%s)", p.Name, p.Depth, p.Heuristic)
}

func (p PlayerSettings) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("%s: %w", p.Name, domain.ErrInvalidDepth)
	}
	return nil
}

type Config struct {
	Games   int
	Seed    int64
	Workers int
	Player1 PlayerSettings
	Player2 PlayerSettings
	Verbose bool
}

// GameResult is the outcome of a single engine vs engine game.
type GameResult struct {
	Index      int
	FirstMover domain.PlayerID
	Winner     domain.PlayerID // Empty for a draw
	Moves      int
	Duration   time.Duration
}

// Run plays cfg.Games games between the two engines. Every game draws its
// first mover and engine seeds from its own source derived from cfg.Seed,
// so results do not depend on the number of workers. Each player searches at
// its own Depth: Player2 never borrows Player1's, so matchups with unequal
// depths play as configured.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Games < 1 {
		return nil, fmt.Errorf("games must be at least 1, got %d", cfg.Games)
	}
	if err := cfg.Player1.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Player2.Validate(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	seeds := make([]int64, cfg.Games)
	master := rand.New(rand.NewSource(cfg.Seed))
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	log.Printf("[ARENA] %s vs %s: %d games, seed=%d, workers=%d",
		cfg.Player1.DisplayName(), cfg.Player2.DisplayName(), cfg.Games, cfg.Seed, workers)

	results := make([]GameResult, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range results {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = playSeeded(i, seeds[i], cfg.Player1, cfg.Player2)
			if cfg.Verbose {
				r := results[i]
				log.Printf("[ARENA] game n=%d first=%d winner=%d moves=%d time=%s",
					r.Index, r.FirstMover, r.Winner, r.Moves, r.Duration)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := NewReport(cfg.Player1.DisplayName(), cfg.Player2.DisplayName(), cfg.Seed, results)
	log.Printf("[ARENA] done %s", report.OneLine())
	return report, nil
}

func playSeeded(index int, seed int64, s1, s2 PlayerSettings) GameResult {
	rng := rand.New(rand.NewSource(seed))

	first := domain.Player1
	if rng.Intn(2) == 1 {
		first = domain.Player2
	}

	p1 := bot.NewEngineFromName(domain.Player1, s1.Depth, s1.Heuristic, rand.New(rand.NewSource(rng.Int63())))
	p2 := bot.NewEngineFromName(domain.Player2, s2.Depth, s2.Heuristic, rand.New(rand.NewSource(rng.Int63())))

	r := PlayGame(p1, p2, first)
	r.Index = index
	return r
}

// PlayGame lets the two engines alternate until the game is won or the
// board is full. p1 plays Player1 and p2 plays Player2.
func PlayGame(p1, p2 *bot.Engine, first domain.PlayerID) GameResult {
	start := time.Now()

	second := domain.Player2
	if first == domain.Player2 {
		second = domain.Player1
	}
	game := domain.NewGame(first, second)

	for !game.IsOver() && !game.IsBoardFull() {
		engine := p1
		if game.CurrentPlayer() == domain.Player2 {
			engine = p2
		}
		col := engine.BestMove(game)
		if _, ok := game.MakeMove(col); !ok {
			log.Printf("[ARENA] engine for player %d returned unplayable column %d", game.CurrentPlayer(), col)
			break
		}
	}

	return GameResult{
		FirstMover: first,
		Winner:     game.Winner(),
		Moves:      game.MoveCount(),
		Duration:   time.Since(start),
	}
}

// DefaultSuite pits every heuristic against the others at depth 1.
func DefaultSuite() [][2]PlayerSettings {
	ai1 := func(h string) PlayerSettings { return PlayerSettings{Name: "AI1", Depth: 1, Heuristic: h} }
	ai2 := func(h string) PlayerSettings { return PlayerSettings{Name: "AI2", Depth: 1, Heuristic: h} }
	return [][2]PlayerSettings{
		{ai1("threats"), ai2("defensive")},
		{ai1("threats"), ai2("blocking_opponent")},
		{ai1("defensive"), ai2("blocking_opponent")},
		{ai1("threats"), ai2("random")},
		{ai1("defensive"), ai2("random")},
		{ai1("blocking_opponent"), ai2("random")},
	}
}
