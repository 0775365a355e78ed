package get_day_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/sparkleclean/SCS-BookingService/internal/api/handlers"
	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	"github.com/sparkleclean/SCS-BookingService/internal/service/bookings"
	"github.com/sparkleclean/SCS-BookingService/internal/service/bookings/models"
)

const (
	msgMissingDate   = "date is required"
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgInvalidFilter = "invalid filter parameters"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: date (required, YYYY-MM-DD), serviceType (optional),
// includeInactive (optional, "true")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /bookings - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.GetDayBookingsRequest{
		Date:            date,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	}

	// Опциональный фильтр по типу услуги
	if serviceType := r.URL.Query().Get("serviceType"); serviceType != "" {
		req.ServiceType = &serviceType
	}

	result, err := h.service.GetDayBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: date=%s, count=%d",
		dateStr, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
