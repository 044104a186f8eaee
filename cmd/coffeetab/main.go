package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/coffeetab/coffeetab/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New()
	err := app.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't complete aggregation run")
		zap.L().Fatal("Can't complete aggregation run: ", zap.Error(err))
	}

	zap.L().Info("Aggregation run finished without errors")
}
