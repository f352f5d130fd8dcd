package match

import (
	"bytes"
	"context"
	"flag"
	"io"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/mshenoda/connect4/internal/repository/sqlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, out io.Writer, args ...string) subcommands.ExitStatus {
	t.Helper()
	c := &Command{Out: out}
	flags := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	c.SetFlags(flags)
	require.NoError(t, flags.Parse(args))
	return c.Execute(context.Background(), flags)
}

func TestMatchPrintsSummary(t *testing.T) {
	var out bytes.Buffer
	status := run(t, &out,
		"-games", "4", "-seed", "3", "-workers", "2",
		"-p1-heuristic", "blocking_opponent", "-p2-heuristic", "random")
	require.Equal(t, subcommands.ExitSuccess, status)

	text := out.String()
	assert.Contains(t, text, "AI1 (d=1,h=blocking_opponent) vs AI2 (d=1,h=random), 4 games, seed=3")
	assert.Contains(t, text, "AI1 (d=1,h=blocking_opponent) wins: ")
	assert.Contains(t, text, "AI2 (d=1,h=random) wins: ")
	assert.Contains(t, text, "Avg Moves: ")
	assert.NotContains(t, text, "saved report")
}

func TestMatchSavesReport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reports.db")
	t.Setenv("DATABASE_DRIVER", "sqlite3")
	t.Setenv("DATABASE_URL", dbPath)

	var out bytes.Buffer
	status := run(t, &out, "-games", "2", "-seed", "5", "-workers", "1", "-save")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "saved report 1")

	db, err := sqlstore.Open("sqlite3", dbPath, 1, 1, 5)
	require.NoError(t, err)
	defer db.Close()

	reports, err := sqlstore.NewReportRepo(db).ListReports(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 2, reports[0].Games)
	assert.Equal(t, int64(5), reports[0].Seed)
}

func TestMatchRejectsArgsAndBadDepth(t *testing.T) {
	assert.Equal(t, subcommands.ExitUsageError, run(t, io.Discard, "extra"))
	assert.Equal(t, subcommands.ExitFailure, run(t, io.Discard, "-p1-depth", "-1"))
}
