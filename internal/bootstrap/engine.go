package bootstrap

import (
	"context"
	"fmt"

	adkclient "github.com/GregMSThompson/travel-backend/internal/client/adk"
	vertexclient "github.com/GregMSThompson/travel-backend/internal/client/vertex"
	"github.com/GregMSThompson/travel-backend/internal/config"
)

func (bs *Bootstrap) initEngine(ctx context.Context, cfg *config.Config) (Engine, error) {
	switch cfg.Engine {
	case config.EngineADK:
		m, err := adkclient.NewGeminiModel(ctx, cfg.GeminiModel, cfg.GeminiAPIKey, cfg.ProjectID, cfg.Region)
		if err != nil {
			return nil, err
		}
		return adkclient.NewEngine(m), nil

	case config.EngineVertex:
		adapter, err := vertexclient.NewAdapter(ctx, bs.Log, cfg.ProjectID, cfg.Region, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("vertex adapter: %w", err)
		}
		bs.closers = append(bs.closers, adapter.Close)
		return vertexclient.NewAgent(adapter, cfg.MaxToolRounds), nil

	default:
		return nil, fmt.Errorf("unknown agent engine %q", cfg.Engine)
	}
}
