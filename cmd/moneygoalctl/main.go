// Package main is moneygoalctl, the operator CLI for MoneyGoal. It shares the
// server's configuration profiles and database, and runs maintenance tasks
// that would otherwise wait for the scheduler or an HTTP upload.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
