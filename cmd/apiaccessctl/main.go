// Package main is the apiaccessctl operator CLI. It loads configuration,
// wires the dependency graph with samber/do v2, and runs one API access
// command or query per invocation.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen11/api-access-service/internal/domain"
)

// Process exit codes.
const (
	exitError      = 1
	exitConstraint = 2
	exitNotFound   = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(buildRuntime).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrNotFound):
		return exitNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		return exitConstraint
	default:
		return exitError
	}
}
