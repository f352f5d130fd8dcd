package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mshenoda/connect4/cmd/internal/match"
	"github.com/mshenoda/connect4/cmd/internal/reports"
	"github.com/mshenoda/connect4/cmd/internal/suite"
)

func main() {
	// DATABASE_* may come from the same .env as the server
	_ = godotenv.Load()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&match.Command{}, "")
	subcommands.Register(&suite.Command{}, "")
	subcommands.Register(&reports.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
