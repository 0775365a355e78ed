package pricing

import "github.com/sparkleclean/SCS-BookingService/internal/domain"

// Config таблицы и константы ценового движка для одного варианта услуги
// Три варианта формы (home/office/promo) используют один движок
// с разными таблицами вместо трех копий логики
type Config struct {
	ServiceType domain.ServiceType

	// OrderPrefix алфавитный префикс номера заказа ("HC", "OC", "FR")
	OrderPrefix string

	// MinHours нижняя граница длительности: 2 часа для стандартных
	// вариантов, 1 час для промо
	MinHours float64

	// SizeWeights вес класса размера комнаты в часах
	SizeWeights map[domain.SizeClass]float64

	// RoomMultipliers множитель типа комнаты
	// Неизвестные типы дают нулевой вклад
	RoomMultipliers map[string]float64

	// CubicleRoomType тип комнаты с отдельной почасовой надбавкой
	// (санузлы/кабинки в офисном варианте). Надбавка аддитивна
	// к собственному вкладу комнаты, а не заменяет его
	CubicleRoomType string
	PerCubicleHours float64

	// AddOnPrices / AddOnDurations цена и длительность за единицу аддона
	AddOnPrices    map[string]float64
	AddOnDurations map[string]float64

	// FootfallMultipliers множитель уровня проходимости/загрязненности
	// Применяется к суммарным часам, не к каждой комнате
	FootfallMultipliers map[domain.FootfallLevel]float64

	// Team-size rule: при base > TeamThresholdHours работа делится
	// на двух клинеров, длительность делится на TeamFactor
	TeamThresholdHours float64
	TeamFactor         float64

	// Клиентские тарифы; в вариантах с единым тарифом значения совпадают
	WeekdayRate float64
	WeekendRate float64

	// SuppliesFee доплата, если средства приносит компания
	SuppliesFee float64

	// Ставки оплаты персонала (для expense-записи, не клиентский тариф)
	StaffWeekdayRate float64
	StaffWeekendRate float64

	// PromoFlat промо-вариант: длительность пришпилена к MinHours,
	// все начисления нулевые, итог - фиксированный депозит FlatDeposit
	PromoFlat   bool
	FlatDeposit float64
}

// HourlyRate возвращает клиентский тариф для даты работы
func (c *Config) HourlyRate(weekend bool) float64 {
	if weekend {
		return c.WeekendRate
	}
	return c.WeekdayRate
}

// StaffRate возвращает ставку оплаты персонала для даты работы
func (c *Config) StaffRate(weekend bool) float64 {
	if weekend {
		return c.StaffWeekendRate
	}
	return c.StaffWeekdayRate
}
