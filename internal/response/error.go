package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GregMSThompson/travel-backend/internal/errs"
	"github.com/GregMSThompson/travel-backend/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		// Use context logger if encoding fails
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", e.Message)

	case *errs.UnknownToolError:
		log.Error("model requested unknown tool", "tool", e.Tool)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")

	case *errs.ToolRoundsExceededError:
		log.Error("model exceeded tool rounds", "rounds", e.Rounds)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
