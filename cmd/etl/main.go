package main

import (
	"context"
	"os"

	"fakestoredw/internal/config"
	"fakestoredw/internal/pkg/constants"
	"fakestoredw/internal/pkg/fakestore"
	"fakestoredw/internal/pkg/logger"
	"fakestoredw/internal/pkg/sink"
	"fakestoredw/internal/service/etl"
)

func main() {
	ctx := context.Background()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, err)
	}

	svc := etl.NewService(
		fakestore.NewClient(cfg.BaseURL),
		sink.NewCSVSink(cfg.OutputDir),
	)

	if err := svc.Run(ctx); err != nil {
		logger.Errorf(ctx, "etl run failed: %s", err.Error())
		logger.Sync()
		os.Exit(exitCode(err))
	}
}

// exitCode maps the run error onto the process exit status.
func exitCode(err error) int {
	if code := constants.CodeOf(err); code != 0 {
		return code
	}
	return 1
}
