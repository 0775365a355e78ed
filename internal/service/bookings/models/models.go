package models

import (
	"errors"
	"time"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
)

var (
	// ErrInvalidServiceType возвращается при некорректном типе услуги
	ErrInvalidServiceType = errors.New("invalid service type")
)

// Request модели

// GetDayBookingsRequest запрос на получение бронирований на дату
type GetDayBookingsRequest struct {
	Date            time.Time `json:"date"`
	ServiceType     *string   `json:"serviceType,omitempty"`     // Фильтр по типу услуги (опционально)
	IncludeInactive bool      `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetDayBookingsRequest) ToDomainFilter() (domain.DayBookingsFilter, error) {
	filter := domain.DayBookingsFilter{
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем тип услуги если указан
	if r.ServiceType != nil {
		st := domain.ServiceType(*r.ServiceType)
		if !st.IsValid() {
			return filter, ErrInvalidServiceType
		}
		filter.ServiceType = &st
	}

	return filter, nil
}

// Response модели

// RoomEntryResponse строка описания комнаты
type RoomEntryResponse struct {
	RoomType  string `json:"roomType"`
	SizeClass string `json:"sizeClass"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	ServiceType string `json:"serviceType"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	Town         string  `json:"town"`
	County       *string `json:"county,omitempty"`
	Postcode     string  `json:"postcode"`

	BookingDate string `json:"bookingDate"` // "2026-09-15"
	StartTime   string `json:"startTime"`   // "10:00"
	EndTime     string `json:"endTime"`     // "13:30"

	Rooms    []RoomEntryResponse `json:"rooms"`
	AddOns   map[string]int      `json:"addOns,omitempty"`
	Footfall string              `json:"footfall"`
	Supplies string              `json:"supplies"`

	AccessMethod  string  `json:"accessMethod"`
	AccessDetails *string `json:"accessDetails,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	EstimatedHours float64 `json:"estimatedHours"`
	TeamApplied    bool    `json:"teamApplied"`
	HourlyRate     float64 `json:"hourlyRate"`
	LabourCharge   float64 `json:"labourCharge"`
	AddOnsTotal    float64 `json:"addOnsTotal"`
	SuppliesFee    float64 `json:"suppliesFee"`
	TotalPrice     float64 `json:"totalPrice"`

	PaymentDueAt string `json:"paymentDueAt"` // ISO 8601 format
	Status       string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	rooms := make([]RoomEntryResponse, len(b.Rooms))
	for i, room := range b.Rooms {
		rooms[i] = RoomEntryResponse{
			RoomType:  room.RoomType,
			SizeClass: string(room.SizeClass),
		}
	}

	var line2, county *string
	if b.Address.Line2 != "" {
		line2 = &b.Address.Line2
	}
	if b.Address.County != "" {
		county = &b.Address.County
	}

	return &BookingResponse{
		ID:             b.ID,
		Reference:      b.Reference,
		ServiceType:    string(b.ServiceType),
		CustomerName:   b.Contact.Name,
		CustomerEmail:  b.Contact.Email,
		CustomerPhone:  b.Contact.Phone,
		AddressLine1:   b.Address.Line1,
		AddressLine2:   line2,
		Town:           b.Address.Town,
		County:         county,
		Postcode:       b.Address.Postcode,
		BookingDate:    b.Date.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		EndTime:        b.EndTime.String(),
		Rooms:          rooms,
		AddOns:         b.AddOns,
		Footfall:       string(b.Footfall),
		Supplies:       string(b.Supplies),
		AccessMethod:   string(b.AccessMethod),
		AccessDetails:  b.AccessDetails,
		Notes:          b.Notes,
		EstimatedHours: b.EstimatedHours,
		TeamApplied:    b.TeamApplied,
		HourlyRate:     b.HourlyRate,
		LabourCharge:   b.LabourCharge,
		AddOnsTotal:    b.AddOnsTotal,
		SuppliesFee:    b.SuppliesFee,
		TotalPrice:     b.TotalPrice,
		PaymentDueAt:   b.PaymentDueAt.Format(time.RFC3339),
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(date time.Time, bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Date:     date.Format(domain.DateFormat),
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
