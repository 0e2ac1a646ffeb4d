package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"
)

const maxContactBodyBytes = 64 << 10

type ContactHandler struct {
	submitContactRequestUC usecases_port.SubmitContactRequestUseCase
}

func NewContactHandler(submitContactRequestUC usecases_port.SubmitContactRequestUseCase) *ContactHandler {
	return &ContactHandler{submitContactRequestUC: submitContactRequestUC}
}

// SubmitContactRequest обрабатывает POST /api/v1/contact-requests
func (h *ContactHandler) SubmitContactRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req domain.ContactRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode contact request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	accepted, err := h.submitContactRequestUC.Execute(r.Context(), req)
	if err != nil {
		var vErr *domain.ContactValidationError
		switch {
		case errors.As(err, &vErr):
			RespondWithJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Error:  "Validation failed",
				Fields: vErr.Fields,
			})
		case errors.Is(err, domain.ErrContactDisabled):
			WriteJSONError(w, http.StatusServiceUnavailable, "Contact requests are temporarily unavailable")
		default:
			WriteJSONError(w, http.StatusInternalServerError, "Failed to submit contact request")
		}
		return
	}

	RespondWithJSON(w, http.StatusAccepted, ContactRequestAcceptedResponse{
		RequestID:  accepted.ID.String(),
		ReceivedAt: accepted.ReceivedAt.Format(time.RFC3339),
	})
}
