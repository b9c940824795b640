package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mlstack/gcpdoctor/cmd"
	errUtils "github.com/mlstack/gcpdoctor/errors"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		// Stop running subprocesses before exit.
		cancel()
		// Exit with correct POSIX exit code (128 + signal number).
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		errUtils.OsExit(130)
	}()

	errUtils.OsExit(run(ctx))
}

// run executes the root command and returns an exit code.
func run(ctx context.Context) int {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		os.Stderr.WriteString(errUtils.Format(err) + "\n")
		return errUtils.GetExitCode(err)
	}
	return 0
}
