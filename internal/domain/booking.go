package domain

import (
	"time"

	"github.com/sparkleclean/SCS-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusConfirmed бронирование подтверждено, оплата ожидается
	// Единственный статус, который выставляет этот сервис
	StatusConfirmed BookingStatus = "confirmed"

	// Статусы ниже выставляются административным инструментом
	StatusPaid      BookingStatus = "paid"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Address почтовый адрес заказчика
type Address struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Town     string `json:"town"`
	County   string `json:"county,omitempty"`
	Postcode string `json:"postcode"`
}

// Contact контактные данные заказчика
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"` // нормализованный международный формат
}

// Booking represents a confirmed cleaning booking
// Для проверки конфликтов используются только Date/StartTime/EndTime,
// остальные поля - денормализованный снапшот заявки
type Booking struct {
	ID        int64
	Reference string // человекочитаемый номер заказа, например "HC48213"

	ServiceType ServiceType
	Contact     Contact
	Address     Address

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	// Снапшот описания работы на момент подтверждения
	Rooms         []RoomEntry
	AddOns        map[string]int
	Footfall      FootfallLevel
	Supplies      SuppliesChoice
	AccessMethod  AccessMethod
	AccessDetails *string
	Notes         *string

	// Расчет стоимости (для аудита храним разбивку, не только итог)
	EstimatedHours float64
	TeamApplied    bool
	HourlyRate     float64
	LabourCharge   float64
	AddOnsTotal    float64
	SuppliesFee    float64
	TotalPrice     float64

	PaymentDueAt time.Time
	Status       BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// DayBookingsFilter фильтр бронирований на конкретную дату
type DayBookingsFilter struct {
	Date            time.Time
	ServiceType     *ServiceType // опционально
	IncludeInactive bool         // включать ли отмененные
}
