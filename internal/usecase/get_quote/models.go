package get_quote

import (
	"time"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	"github.com/sparkleclean/SCS-BookingService/internal/pricing"
)

// Request модель запроса на расчет котировки
// Пересчитывается формой при каждом изменении выбора
type Request struct {
	ServiceType domain.ServiceType
	Rooms       []domain.RoomEntry
	AddOns      map[string]int
	Footfall    domain.FootfallLevel
	Supplies    domain.SuppliesChoice
	Date        time.Time // влияет на weekend/weekday тариф
}

// Response модель ответа с котировкой
type Response struct {
	ServiceType domain.ServiceType
	Quote       pricing.Quote
}
