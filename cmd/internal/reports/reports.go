package reports

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/mshenoda/connect4/cmd/internal/store"
)

type Command struct {
	limit int
}

func (*Command) Name() string     { return "reports" }
func (*Command) Synopsis() string { return "List stored matchup reports" }
func (*Command) Usage() string {
	return `reports [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.limit, "limit", 20, "maximum number of reports to list")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, closeDB, err := store.Open()
	if err != nil {
		log.Printf("open store: %v", err)
		return subcommands.ExitFailure
	}
	defer closeDB()

	list, err := repo.ListReports(ctx, c.limit)
	if err != nil {
		log.Printf("list reports: %v", err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 4, 8, 2, ' ', 0)
	fmt.Fprintf(w, "id\tcreated\tplayer1\tplayer2\tgames\tp1\tp2\tdraws\tavg moves\n")
	for _, r := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%.2f\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Player1, r.Player2,
			r.Games, r.Player1Wins, r.Player2Wins, r.Draws, r.AvgMoves)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
