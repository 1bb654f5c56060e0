package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nikhil-r0/Green-Terrace/internal/config"
	"github.com/nikhil-r0/Green-Terrace/internal/database"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <command> [args...]")
	fmt.Fprintln(os.Stderr, "Commands are goose commands: up, down, status, reset, version, up-to N, down-to N")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(context.Background(), cfg.GetDBConnString(), os.Args[1], os.Args[2:]...); err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
		os.Exit(1)
	}
}
