package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/travel-backend/internal/metrics"
	"github.com/GregMSThompson/travel-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	TravelSvc       TravelService
	Metrics         *metrics.Metrics
	FrontendURL     string
}
