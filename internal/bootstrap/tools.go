package bootstrap

import (
	"net/http"

	placedataclient "github.com/GregMSThompson/travel-backend/internal/client/placedata"
	"github.com/GregMSThompson/travel-backend/internal/config"
	"github.com/GregMSThompson/travel-backend/internal/dto"
	"github.com/GregMSThompson/travel-backend/internal/metrics"
)

// NewTools builds the four place data adapters, each with its own
// instrumented HTTP client.
func NewTools(cfg *config.Config, m *metrics.Metrics) []dto.Tool {
	configs := []placedataclient.Config{
		placedataclient.SearchConfig(cfg.Search.BaseURL, cfg.Search.APIKey),
		placedataclient.WeatherConfig(cfg.Weather.BaseURL, cfg.Weather.APIKey),
		placedataclient.NewsConfig(cfg.News.BaseURL, cfg.News.APIKey),
		placedataclient.PlacesConfig(cfg.Places.BaseURL, cfg.Places.APIKey),
	}

	tools := make([]dto.Tool, 0, len(configs))
	for _, c := range configs {
		client := &http.Client{
			Timeout:   cfg.AdapterTimeout,
			Transport: m.InstrumentTransport(c.Name, http.DefaultTransport),
		}
		tools = append(tools, placedataclient.NewAdapter(c, client))
	}
	return tools
}
