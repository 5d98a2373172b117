// Package main is the entry point for the kp CLI tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kubepick/kubepick/internal/cli"
	"github.com/kubepick/kubepick/internal/dispatch"
	"github.com/kubepick/kubepick/internal/usage"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A signal cancels the context; the picker then folds into a normal
	// abort, so Ctrl-C still exits zero.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd()
	return exitCode(root.ExecuteContext(ctx), os.Stderr)
}

// exitCode maps an execution error to the process exit status. Listing
// failures were already logged and exit silently; usage errors carry
// their own message and code.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var usageErr *usage.Error
	if errors.As(err, &usageErr) {
		fmt.Fprintln(stderr, usageErr.Error())
		return usageErr.GetExitCode()
	}

	if errors.Is(err, dispatch.ErrNoListing) {
		return 1
	}

	fmt.Fprintf(stderr, "kp: %v\n", err)
	return 1
}
