package create_booking

import (
	"time"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	createBooking "github.com/sparkleclean/SCS-BookingService/internal/usecase/create_booking"
	"github.com/sparkleclean/SCS-BookingService/pkg/types"
)

// RoomEntryRequest строка описания комнаты
type RoomEntryRequest struct {
	RoomType  string `json:"roomType"`
	SizeClass string `json:"sizeClass"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceType string `json:"serviceType"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Town         string `json:"town"`
	County       string `json:"county,omitempty"`
	Postcode     string `json:"postcode"`

	BookingDate string `json:"bookingDate"` // "2026-09-15"
	StartTime   string `json:"startTime"`   // "10:00"

	Rooms    []RoomEntryRequest `json:"rooms"`
	AddOns   map[string]int     `json:"addOns,omitempty"`
	Footfall string             `json:"footfall"`
	Supplies string             `json:"supplies"`

	AccessMethod  string  `json:"accessMethod"`
	AccessDetails *string `json:"accessDetails,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`

	ServiceType string `json:"serviceType"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`

	EstimatedHours float64 `json:"estimatedHours"`
	TeamApplied    bool    `json:"teamApplied"`
	HourlyRate     float64 `json:"hourlyRate"`
	LabourCharge   float64 `json:"labourCharge"`
	AddOnsTotal    float64 `json:"addOnsTotal"`
	SuppliesFee    float64 `json:"suppliesFee"`
	TotalPrice     float64 `json:"totalPrice"`

	PaymentDueAt string `json:"paymentDueAt"` // ISO 8601
	Status       string `json:"status"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
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

	return &createBooking.Request{
		ServiceType:   domain.ServiceType(r.ServiceType),
		Name:          r.CustomerName,
		Email:         r.CustomerEmail,
		Phone:         r.CustomerPhone,
		AddressLine1:  r.AddressLine1,
		AddressLine2:  r.AddressLine2,
		Town:          r.Town,
		County:        r.County,
		Postcode:      r.Postcode,
		Date:          bookingDate,
		StartTime:     startTime,
		Rooms:         rooms,
		AddOns:        r.AddOns,
		Footfall:      domain.FootfallLevel(r.Footfall),
		Supplies:      domain.SuppliesChoice(r.Supplies),
		AccessMethod:  domain.AccessMethod(r.AccessMethod),
		AccessDetails: r.AccessDetails,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		Reference:      resp.Reference,
		ServiceType:    string(resp.ServiceType),
		BookingDate:    resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		EstimatedHours: resp.EstimatedHours,
		TeamApplied:    resp.TeamApplied,
		HourlyRate:     resp.HourlyRate,
		LabourCharge:   resp.LabourCharge,
		AddOnsTotal:    resp.AddOnsTotal,
		SuppliesFee:    resp.SuppliesFee,
		TotalPrice:     resp.TotalPrice,
		PaymentDueAt:   resp.PaymentDueAt.Format(time.RFC3339),
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
