package create_quote

import (
	"errors"
	"net/http"

	"github.com/sparkleclean/SCS-BookingService/internal/api/handlers"
	getQuote "github.com/sparkleclean/SCS-BookingService/internal/usecase/get_quote"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid quote input"
	msgUnknownService     = "unknown service type"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: service_type=%s", req.ServiceType)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getQuote.ErrUnknownService):
			h.logger.Warn("POST /quotes - Unknown service type: service_type=%s", req.ServiceType)
			handlers.RespondBadRequest(w, msgUnknownService)

		default:
			h.logger.Error("POST /quotes - Failed to build quote: service_type=%s, error=%v", req.ServiceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /quotes - Quote built successfully: service_type=%s, total=%.2f",
		req.ServiceType, result.Quote.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, response)
}
