package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/orgviz/orgviz/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Flag errors surface before the root command re-initializes the
	// logger with the right level.
	logger.Init(false)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("Run failed", "err", err)
		os.Exit(1)
	}
}
