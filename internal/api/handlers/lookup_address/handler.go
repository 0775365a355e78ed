package lookup_address

import (
	"errors"
	"net/http"

	"github.com/sparkleclean/SCS-BookingService/internal/api/handlers"
	"github.com/sparkleclean/SCS-BookingService/internal/integrations/addresslookup"
)

const (
	msgMissingPostcode   = "postcode is required"
	msgInvalidPostcode   = "invalid postcode"
	msgNotFound          = "no addresses found for this postcode"
	msgOutsideCoverage   = "sorry, we don't cover this area yet"
	msgRateLimited       = "address lookup is busy, please try again shortly"
	msgLookupUnavailable = "address lookup is temporarily unavailable"
)

type Handler struct {
	client AddressLookupClient
	logger Logger
}

func NewHandler(client AddressLookupClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/addresses
// Query params: postcode (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем postcode из query параметров
	postcode := r.URL.Query().Get("postcode")
	if postcode == "" {
		h.logger.Warn("GET /addresses - Missing postcode")
		handlers.RespondBadRequest(w, msgMissingPostcode)
		return
	}

	candidates, err := h.client.Lookup(r.Context(), postcode)
	if err != nil {
		switch {
		case errors.Is(err, addresslookup.ErrInvalidPostcode):
			h.logger.Warn("GET /addresses - Invalid postcode: postcode=%s", postcode)
			handlers.RespondBadRequest(w, msgInvalidPostcode)

		case errors.Is(err, addresslookup.ErrNotFound):
			h.logger.Warn("GET /addresses - No addresses found: postcode=%s", postcode)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, addresslookup.ErrOutsideCoverage):
			h.logger.Warn("GET /addresses - Outside coverage: postcode=%s", postcode)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgOutsideCoverage)

		case errors.Is(err, addresslookup.ErrRateLimited):
			h.logger.Warn("GET /addresses - Rate limited: postcode=%s", postcode)
			handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)

		case errors.Is(err, addresslookup.ErrUnauthorized):
			// Ключ API протух; для клиента это просто недоступность сервиса
			h.logger.Error("GET /addresses - Lookup unauthorized, check API key: postcode=%s", postcode)
			handlers.RespondError(w, http.StatusBadGateway, msgLookupUnavailable)

		default:
			h.logger.Error("GET /addresses - Lookup failed: postcode=%s, error=%v", postcode, err)
			handlers.RespondError(w, http.StatusBadGateway, msgLookupUnavailable)
		}
		return
	}

	response := FromCandidates(postcode, candidates)

	h.logger.Info("GET /addresses - Addresses retrieved successfully: postcode=%s, count=%d",
		postcode, len(candidates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
