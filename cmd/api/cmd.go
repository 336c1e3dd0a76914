package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/travel-backend/internal/bootstrap"
	"github.com/GregMSThompson/travel-backend/internal/config"
	"github.com/GregMSThompson/travel-backend/internal/handlers"
	"github.com/GregMSThompson/travel-backend/internal/response"
	"github.com/GregMSThompson/travel-backend/internal/router"
	"github.com/GregMSThompson/travel-backend/internal/services"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	ctx := context.Background()

	// config
	cfg, err := config.Load(ctx)
	exitOnError("config load failed", err, slog.Default())

	// bootstrap
	bs, err := bootstrap.Run(ctx, cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// services
	tserv := services.NewTravelService(bs.Engine, bs.Tools)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.TravelSvc = tserv
	deps.Metrics = bs.Metrics
	deps.FrontendURL = cfg.FrontendURL

	// router
	r := router.NewRouter(deps)
	addr := fmt.Sprintf(":%s", cfg.Port)
	bs.Log.Info("listening", "addr", addr, "frontend", cfg.FrontendURL)
	err = http.ListenAndServe(addr, r)
	exitOnError("server start failed", err, bs.Log)
}
