package create_booking

import (
	"time"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	"github.com/sparkleclean/SCS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceType domain.ServiceType

	// Контакт
	Name  string
	Email string
	Phone string // как ввел пользователь; нормализуется при обработке

	// Адрес
	AddressLine1 string
	AddressLine2 string
	Town         string
	County       string
	Postcode     string

	// Выбранный слот
	Date      time.Time
	StartTime types.TimeString

	// Описание работы
	Rooms    []domain.RoomEntry
	AddOns   map[string]int
	Footfall domain.FootfallLevel
	Supplies domain.SuppliesChoice

	// Доступ к помещению
	AccessMethod  domain.AccessMethod
	AccessDetails *string // обязательно при AccessMethod=alternative

	Notes *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	Reference string

	ServiceType domain.ServiceType
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	EstimatedHours float64
	TeamApplied    bool
	HourlyRate     float64
	LabourCharge   float64
	AddOnsTotal    float64
	SuppliesFee    float64
	TotalPrice     float64

	PaymentDueAt time.Time
	Status       string

	CreatedAt time.Time
}
