// Package main is the entry point of the barrier tool.
//
// The tool has two commands:
//   - demo: replays the logged-contact and rational examples through every
//     representation, using nothing but constructors and selectors
//   - check: runs the conformance checker against all representations
//
// Configuration comes from environment variables (see config.Load).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}
