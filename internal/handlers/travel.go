package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/travel-backend/internal/dto"
	"github.com/GregMSThompson/travel-backend/internal/errs"
	"github.com/GregMSThompson/travel-backend/internal/metrics"
	"github.com/GregMSThompson/travel-backend/internal/response"
	"github.com/GregMSThompson/travel-backend/internal/validation"
)

type TravelService interface {
	Answer(ctx context.Context, query string) (string, error)
}

type travelHandlers struct {
	ResponseHandler response.ResponseHandler
	TravelSvc       TravelService
	Metrics         *metrics.Metrics
}

func NewTravelHandlers(deps *Deps) *travelHandlers {
	return &travelHandlers{
		ResponseHandler: deps.ResponseHandler,
		TravelSvc:       deps.TravelSvc,
		Metrics:         deps.Metrics,
	}
}

func (h *travelHandlers) TravelRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.instrument("/", h.Health))
	r.Post("/ask", h.instrument("/ask", h.Ask))
	return r
}

func (h *travelHandlers) instrument(route string, fn http.HandlerFunc) http.HandlerFunc {
	if h.Metrics == nil {
		return fn
	}
	return h.Metrics.InstrumentHandler(route, fn)
}

func (h *travelHandlers) Health(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.AskResponse{Response: "on"})
}

func (h *travelHandlers) Ask(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("could not read request body"))
		return
	}
	if err := validation.AskRequest.Validate(raw); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	var body dto.AskRequest
	if err := json.Unmarshal(raw, &body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("request body must be valid JSON"))
		return
	}

	answer, err := h.TravelSvc.Answer(r.Context(), body.UserQuery)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.AskResponse{Response: answer})
}
