package create_quote

import (
	"time"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	getQuote "github.com/sparkleclean/SCS-BookingService/internal/usecase/get_quote"
)

// RoomEntryRequest строка описания комнаты
type RoomEntryRequest struct {
	RoomType  string `json:"roomType"`
	SizeClass string `json:"sizeClass"`
}

// QuoteRequest HTTP request model
type QuoteRequest struct {
	ServiceType string             `json:"serviceType"`
	Rooms       []RoomEntryRequest `json:"rooms"`
	AddOns      map[string]int     `json:"addOns,omitempty"`
	Footfall    string             `json:"footfall"`
	Supplies    string             `json:"supplies"`
	Date        string             `json:"date"` // "2026-09-15"
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	ServiceType    string  `json:"serviceType"`
	EstimatedHours float64 `json:"estimatedHours"`
	TeamApplied    bool    `json:"teamApplied"`
	HourlyRate     float64 `json:"hourlyRate"`
	LabourCharge   float64 `json:"labourCharge"`
	AddOnsTotal    float64 `json:"addOnsTotal"`
	SuppliesFee    float64 `json:"suppliesFee"`
	TotalPrice     float64 `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*getQuote.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	rooms := make([]domain.RoomEntry, len(r.Rooms))
	for i, room := range r.Rooms {
		rooms[i] = domain.RoomEntry{
			RoomType:  room.RoomType,
			SizeClass: domain.SizeClass(room.SizeClass),
		}
	}

	return &getQuote.Request{
		ServiceType: domain.ServiceType(r.ServiceType),
		Rooms:       rooms,
		AddOns:      r.AddOns,
		Footfall:    domain.FootfallLevel(r.Footfall),
		Supplies:    domain.SuppliesChoice(r.Supplies),
		Date:        date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		ServiceType:    string(resp.ServiceType),
		EstimatedHours: resp.Quote.EstimatedHours,
		TeamApplied:    resp.Quote.TeamApplied,
		HourlyRate:     resp.Quote.HourlyRate,
		LabourCharge:   resp.Quote.LabourCharge,
		AddOnsTotal:    resp.Quote.AddOnsTotal,
		SuppliesFee:    resp.Quote.SuppliesFee,
		TotalPrice:     resp.Quote.TotalPrice,
	}
}
