package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"payments-gateway/application"
	"payments-gateway/presenters"
	"payments-gateway/utils/configs"
	"payments-gateway/utils/gen_ids"
	"payments-gateway/utils/gpooling"
	logger2 "payments-gateway/utils/logger"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}

	lg, _ := logger2.NewLogger(config.ENV)

	pool, err := gpooling.NewPooling(config.MaxPoolSize, lg)
	if err != nil {
		panic(err)
	}

	gen_ids.InitGenIDservice()

	app := application.NewPaymentApplication(config, lg, pool)

	srv := presenters.NewServer(config, lg, app)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	pool.Submit(func() {
		<-sig
		lg.Warn("shutting down bank return listener...")

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			lg.Error("shutdown failed", zap.Error(err))
		}
		pool.Release()
	})

	lg.Info("starting bank return listener...", zap.String("port", config.Port))

	if err := srv.Start(); err != nil {
		lg.Error("listener stopped", zap.Error(err))
	}
}
