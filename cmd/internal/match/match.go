package match

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/google/subcommands"
	"github.com/mshenoda/connect4/cmd/internal/store"
	"github.com/mshenoda/connect4/internal/service/arena"
)

type Command struct {
	p1Depth     int
	p1Heuristic string
	p2Depth     int
	p2Heuristic string

	games   int
	seed    int64
	workers int

	save    bool
	verbose bool

	// Out defaults to os.Stdout
	Out io.Writer
}

func (*Command) Name() string     { return "match" }
func (*Command) Synopsis() string { return "Play two engines against each other and report results" }
func (*Command) Usage() string {
	return `match [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.p1Depth, "p1-depth", 1, "player 1 search depth")
	flags.StringVar(&c.p1Heuristic, "p1-heuristic", "threats", "player 1 evaluator")
	flags.IntVar(&c.p2Depth, "p2-depth", 1, "player 2 search depth")
	flags.StringVar(&c.p2Heuristic, "p2-heuristic", "defensive", "player 2 evaluator")

	flags.IntVar(&c.games, "games", 1000, "number of games to play")
	flags.Int64Var(&c.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flags.IntVar(&c.workers, "workers", runtime.NumCPU(), "number of parallel games")

	flags.BoolVar(&c.save, "save", false, "store the report in the database")
	flags.BoolVar(&c.verbose, "v", false, "log every game")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() != 0 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}

	report, err := arena.Run(ctx, arena.Config{
		Games:   c.games,
		Seed:    c.seed,
		Workers: c.workers,
		Player1: arena.PlayerSettings{Name: "AI1", Depth: c.p1Depth, Heuristic: c.p1Heuristic},
		Player2: arena.PlayerSettings{Name: "AI2", Depth: c.p2Depth, Heuristic: c.p2Heuristic},
		Verbose: c.verbose,
	})
	if err != nil {
		log.Printf("match: %v", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(out, "%s vs %s, %d games, seed=%d, %s\n",
		report.Player1, report.Player2, report.Games, report.Seed, report.TotalDuration.Round(time.Millisecond))
	fmt.Fprintln(out, report.Summary())

	if c.save {
		repo, closeDB, err := store.Open()
		if err != nil {
			log.Printf("open store: %v", err)
			return subcommands.ExitFailure
		}
		defer closeDB()

		id, err := repo.SaveReport(ctx, report)
		if err != nil {
			log.Printf("save report: %v", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(out, "saved report %d\n", id)
	}
	return subcommands.ExitSuccess
}
