package suite

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/mshenoda/connect4/cmd/internal/store"
	"github.com/mshenoda/connect4/internal/service/arena"
)

type Command struct {
	games   int
	seed    int64
	workers int
	save    bool
}

func (*Command) Name() string     { return "suite" }
func (*Command) Synopsis() string { return "Run every evaluator against the others" }
func (*Command) Usage() string {
	return `suite [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.games, "games", 1000, "number of games per matchup")
	flags.Int64Var(&c.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flags.IntVar(&c.workers, "workers", runtime.NumCPU(), "number of parallel games")
	flags.BoolVar(&c.save, "save", false, "store the reports in the database")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}

	var save func(context.Context, *arena.Report) (int64, error)
	if c.save {
		repo, closeDB, err := store.Open()
		if err != nil {
			log.Printf("open store: %v", err)
			return subcommands.ExitFailure
		}
		defer closeDB()
		save = repo.SaveReport
	}

	w := tabwriter.NewWriter(os.Stdout, 4, 8, 2, ' ', 0)
	fmt.Fprintf(w, "player1\tplayer2\tp1 wins\tp2 wins\tdraws\tavg moves\n")
	for i, matchup := range arena.DefaultSuite() {
		report, err := arena.Run(ctx, arena.Config{
			Games:   c.games,
			Seed:    c.seed + int64(i),
			Workers: c.workers,
			Player1: matchup[0],
			Player2: matchup[1],
		})
		if err != nil {
			log.Printf("suite: %v", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f%%\t%.2f%%\t%.2f%%\t%.2f\n",
			report.Player1, report.Player2,
			report.Player1WinPct(), report.Player2WinPct(), report.DrawPct(), report.AvgMoves)

		if save != nil {
			if _, err := save(ctx, report); err != nil {
				log.Printf("save report: %v", err)
				return subcommands.ExitFailure
			}
		}
	}
	w.Flush()
	return subcommands.ExitSuccess
}
