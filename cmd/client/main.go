package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/iudanet/codehours/internal/client/api"
	"github.com/iudanet/codehours/internal/client/cli"
	"github.com/iudanet/codehours/internal/client/iocli"
	"github.com/iudanet/codehours/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	stdio := iocli.NewStdio()

	// Глобальные флаги до имени команды
	fs := pflag.NewFlagSet("codehours", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	showVersion := fs.BoolP("version", "v", false, "Show version information")
	serverURL := fs.String("server", envOr("CODEHOURS_SERVER", "http://localhost:4000"), "Server URL")
	dbPath := fs.String("db", envOr("CODEHOURS_DB", "codehours-client.db"), "Path to local session database")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		printVersion()
		return 0
	}

	rest := fs.Args()
	if len(rest) == 0 {
		cli.New(nil, nil, stdio).PrintUsage()
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close database: %v\n", err)
		}
	}()

	c := cli.New(api.NewClient(*serverURL), store, stdio)
	if err := c.Run(ctx, rest[0], rest[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			c.PrintUsage()
		}
		return 1
	}

	return 0
}

// envOr значение переменной окружения или значение по умолчанию
func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("codehours client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
