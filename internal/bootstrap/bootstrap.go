package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/GregMSThompson/travel-backend/internal/config"
	"github.com/GregMSThompson/travel-backend/internal/dto"
	"github.com/GregMSThompson/travel-backend/internal/metrics"
	"github.com/GregMSThompson/travel-backend/pkg/logger"
)

type Engine interface {
	Invoke(ctx context.Context, req dto.AgentRequest) (string, error)
}

type Bootstrap struct {
	Log     *slog.Logger
	Metrics *metrics.Metrics
	Engine  Engine
	Tools   []dto.Tool

	closers []func() error
}

// Run builds the process-wide dependencies. Log is always set, also when an
// error is returned.
func Run(ctx context.Context, cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.HandlerFor(cfg.LogFormat))
	slog.SetDefault(bs.Log)
	bs.Metrics = metrics.New()
	bs.Tools = NewTools(cfg, bs.Metrics)

	bs.Engine, err = bs.initEngine(ctx, cfg)
	if err != nil {
		return bs, err
	}

	bs.Log.Info("bootstrap complete",
		"engine", cfg.Engine,
		"model", cfg.GeminiModel,
		"tools", len(bs.Tools))
	return bs, nil
}

func (bs *Bootstrap) Close() error {
	var errList []error
	for _, c := range bs.closers {
		if err := c(); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
