package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	c "github.com/Live2Bloom/predictive-risk-engine/core"
)

// Exit codes are the wire contract with the dashboard bridge: 1 for usage or
// I/O problems, 2 for insufficient or degenerate data, 3 for an unknown
// target. Stdout carries exactly one result line on success and nothing else.
const (
	exitUsage    = 1
	exitBadData  = 2
	exitNotFound = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	// diagnostics go to stderr, stdout is reserved for the result line
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// load in environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <returns.csv> <identifier>\n", os.Args[0])
		return exitUsage
	}

	// seed 0 (or unset) draws a fresh sample every run
	seed, _ := strconv.ParseUint(os.Getenv("RISK_ENGINE_SEED"), 10, 64)
	rc := c.NewRunContext(ctx, seed)

	if err := rc.LoadReturnsFile(os.Args[1]); err != nil {
		log.Printf("Failed to load input data: %v", err)
		return exitUsage
	}

	line, err := rc.Analyze(os.Args[2])
	if err != nil {
		log.Printf("Analysis failed: %v", err)
		if errors.Is(err, c.ErrAssetNotFound) {
			return exitNotFound
		}
		return exitBadData
	}

	fmt.Println(line)
	return 0
}
