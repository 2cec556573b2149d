package calculate_estimate

import (
	"errors"
	"net/http"

	"github.com/swiftmoving/booking-service/internal/api/handlers"
	calculateEstimate "github.com/swiftmoving/booking-service/internal/usecase/calculate_estimate"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgConfigUnavailable  = "pricing is temporarily unavailable, please try again"
)

type Handler struct {
	useCase CalculateEstimateUseCase
	logger  Logger
}

func NewHandler(useCase CalculateEstimateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/estimate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequestModel
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /estimate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	estimate, err := h.useCase.Execute(r.Context(), req.ToQuoteRequest())
	if err != nil {
		switch {
		case errors.Is(err, calculateEstimate.ErrInvalidInput):
			h.logger.Warn("POST /estimate - Validation failed: service=%s, error=%v", req.ServiceType, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, calculateEstimate.ErrConfigUnavailable):
			h.logger.Error("POST /estimate - Pricing config unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgConfigUnavailable)

		default:
			h.logger.Error("POST /estimate - Failed to calculate estimate: service=%s, error=%v", req.ServiceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /estimate - Estimate calculated: service=%s, total=%.2f", req.ServiceType, estimate.Total)
	handlers.RespondJSON(w, http.StatusOK, EstimateResponse{Success: true, Estimate: estimate})
}
