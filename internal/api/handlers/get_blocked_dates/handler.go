package get_blocked_dates

import (
	"net/http"

	"github.com/sparkleclean/SCS-BookingService/internal/api/handlers"
)

type Handler struct {
	useCase GetBlockedDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetBlockedDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		// Use case деградирует до пустого списка сам; сюда попадаем только
		// при неожиданной ошибке
		h.logger.Error("GET /availability/blocked-dates - Failed to scan blocked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability/blocked-dates - Blocked dates retrieved: count=%d", len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
