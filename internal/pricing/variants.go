package pricing

import (
	"errors"
	"fmt"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
)

// ErrUnknownServiceType возвращается для неизвестного варианта услуги
var ErrUnknownServiceType = errors.New("pricing: unknown service type")

// Множители проходимости/загрязненности общие для всех вариантов
var footfallMultipliers = map[domain.FootfallLevel]float64{
	domain.FootfallLight:     0.9,
	domain.FootfallAverage:   1.0,
	domain.FootfallHeavy:     1.25,
	domain.FootfallVeryHeavy: 1.6,
}

var sizeWeights = map[domain.SizeClass]float64{
	domain.SizeXS: 0.4,
	domain.SizeS:  0.6,
	domain.SizeM:  0.8,
	domain.SizeL:  1.0,
	domain.SizeXL: 1.3,
}

// HomeConfig таблицы стандартного жилого варианта
func HomeConfig() *Config {
	return &Config{
		ServiceType: domain.ServiceHomeClean,
		OrderPrefix: "HC",
		MinHours:    2,
		SizeWeights: sizeWeights,
		RoomMultipliers: map[string]float64{
			"bedroom":  1.0,
			"living":   1.0,
			"kitchen":  1.5,
			"bathroom": 1.4,
			"hallway":  0.5,
			"storage":  0.5,
			"other":    0.8,
		},
		AddOnPrices: map[string]float64{
			"fridge":     15,
			"freezer":    15,
			"dishwasher": 10,
			"cupboards":  12,
		},
		AddOnDurations: map[string]float64{
			"fridge":     0.5,
			"freezer":    0.5,
			"dishwasher": 0.25,
			"cupboards":  0.5,
		},
		FootfallMultipliers: footfallMultipliers,
		TeamThresholdHours:  4,
		TeamFactor:          1.7,
		WeekdayRate:         24,
		WeekendRate:         24,
		SuppliesFee:         12,
		StaffWeekdayRate:    13.5,
		StaffWeekendRate:    15,
	}
}

// OfficeConfig таблицы офисного варианта (v2)
// Единственный вариант с раздельными weekday/weekend тарифами
// и отдельной надбавкой за санузлы
func OfficeConfig() *Config {
	return &Config{
		ServiceType: domain.ServiceOfficeClean,
		OrderPrefix: "OC",
		MinHours:    2,
		SizeWeights: sizeWeights,
		RoomMultipliers: map[string]float64{
			"office":   1.0,
			"meeting":  1.2,
			"kitchen":  1.5,
			"bathroom": 1.0,
			"hallway":  0.5,
			"storage":  0.5,
			"other":    0.8,
		},
		CubicleRoomType: "bathroom",
		PerCubicleHours: 0.5,
		AddOnPrices: map[string]float64{
			"fridge":     15,
			"freezer":    15,
			"dishwasher": 10,
			"cupboards":  12,
		},
		AddOnDurations: map[string]float64{
			"fridge":     0.5,
			"freezer":    0.5,
			"dishwasher": 0.25,
			"cupboards":  0.5,
		},
		FootfallMultipliers: footfallMultipliers,
		TeamThresholdHours:  4,
		TeamFactor:          1.7,
		WeekdayRate:         22,
		WeekendRate:         26,
		SuppliesFee:         15,
		StaffWeekdayRate:    13,
		StaffWeekendRate:    14.5,
	}
}

// OfficeLegacyConfig таблицы старого офисного варианта
// Отличается только порогом и коэффициентом команды (6h / 1.6 против 4h / 1.7);
// документированного обоснования различию нет, держим как конфигурацию
func OfficeLegacyConfig() *Config {
	cfg := OfficeConfig()
	cfg.TeamThresholdHours = 6
	cfg.TeamFactor = 1.6
	return cfg
}

// PromoConfig таблицы промо-варианта "бесплатная комната"
// Вся формула обходится: час работы и фиксированный депозит
func PromoConfig() *Config {
	return &Config{
		ServiceType:         domain.ServiceFreeRoom,
		OrderPrefix:         "FR",
		MinHours:            1,
		FootfallMultipliers: footfallMultipliers,
		StaffWeekdayRate:    13.5,
		StaffWeekendRate:    13.5,
		PromoFlat:           true,
		FlatDeposit:         10,
	}
}

// ConfigFor возвращает конфигурацию варианта услуги
// useLegacyOffice переключает офисный вариант на старые таблицы
func ConfigFor(service domain.ServiceType, useLegacyOffice bool) (*Config, error) {
	switch service {
	case domain.ServiceHomeClean:
		return HomeConfig(), nil
	case domain.ServiceOfficeClean:
		if useLegacyOffice {
			return OfficeLegacyConfig(), nil
		}
		return OfficeConfig(), nil
	case domain.ServiceFreeRoom:
		return PromoConfig(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownServiceType, service)
	}
}
