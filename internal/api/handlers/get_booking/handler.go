package get_booking

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/sparkleclean/SCS-BookingService/internal/api/handlers"
	"github.com/sparkleclean/SCS-BookingService/internal/service/bookings"
	"github.com/sparkleclean/SCS-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgNotFound         = "booking not found"
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

// Handle GET /api/v1/bookings/{bookingId}
// Принимает числовой ID или номер заказа (HC12345)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["bookingId"]

	booking, err := h.lookup(r, idStr)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: id=%s", idStr)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id} - Invalid booking id: id=%s", idStr)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: id=%s, error=%v", idStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: id=%d, reference=%s",
		booking.ID, booking.Reference)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

// lookup выбирает способ поиска: числовой ID или номер заказа
func (h *Handler) lookup(r *http.Request, idStr string) (*models.BookingResponse, error) {
	if bookingID, err := strconv.ParseInt(idStr, 10, 64); err == nil {
		return h.service.GetByID(r.Context(), bookingID)
	}
	return h.service.GetByReference(r.Context(), strings.ToUpper(idStr))
}
