package pricing

import "github.com/sparkleclean/SCS-BookingService/internal/domain"

// Quote результат расчета: длительность и стоимость работы
type Quote struct {
	// BaseEstimatedHours длительность до применения team-size rule
	BaseEstimatedHours float64

	// TeamApplied true, если работа рассчитана на двух клинеров
	TeamApplied bool

	// EstimatedHours итоговая (per-cleaner) длительность
	EstimatedHours float64

	HourlyRate   float64
	LabourCharge float64
	AddOnsTotal  float64
	SuppliesFee  float64
	TotalPrice   float64
}

// Estimate рассчитывает котировку по описанию работы
// Чистая детерминированная функция: никаких обращений к хранилищам
func Estimate(job *domain.JobDescription, cfg *Config) Quote {
	// Промо-вариант обходит формулу целиком: час работы, нулевые
	// начисления, итог - фиксированный депозит. Форма Quote сохраняется
	// для единообразия UI и хранения
	if cfg.PromoFlat {
		return Quote{
			BaseEstimatedHours: cfg.MinHours,
			TeamApplied:        false,
			EstimatedHours:     cfg.MinHours,
			HourlyRate:         0,
			LabourCharge:       0,
			AddOnsTotal:        0,
			SuppliesFee:        0,
			TotalPrice:         Round2(cfg.FlatDeposit),
		}
	}

	// Шаг 1: сырые часы по комнатам и аддонам
	rawHours := 0.0
	for _, room := range job.Rooms {
		rawHours += cfg.SizeWeights[room.SizeClass] * cfg.RoomMultipliers[room.RoomType]

		// Отдельная надбавка за санузел/кабинку аддитивна
		// к вкладу комнаты по общей формуле
		if cfg.CubicleRoomType != "" && room.RoomType == cfg.CubicleRoomType {
			rawHours += cfg.PerCubicleHours
		}
	}
	for key, count := range job.AddOns {
		if count > 0 {
			rawHours += float64(count) * cfg.AddOnDurations[key]
		}
	}

	// Шаг 2: множитель проходимости применяется к сумме
	if mult, ok := cfg.FootfallMultipliers[job.Footfall]; ok {
		rawHours *= mult
	}

	// Шаг 3: округление вверх до получаса, нижняя граница MinHours
	base := RoundUpToHalf(rawHours)
	if base < cfg.MinHours {
		base = cfg.MinHours
	}

	// Шаг 4: team-size rule - при превышении порога двое клинеров
	// работают параллельно, per-cleaner длительность делится на TeamFactor
	estimated := base
	teamApplied := false
	if base > cfg.TeamThresholdHours {
		teamApplied = true
		estimated = RoundUpToHalf(base / cfg.TeamFactor)
		if estimated < cfg.MinHours {
			estimated = cfg.MinHours
		}
	}

	// Шаг 5: деньги
	rate := cfg.HourlyRate(job.IsWeekend())
	labour := estimated * rate

	addOnsTotal := 0.0
	for key, count := range job.AddOns {
		if count > 0 {
			addOnsTotal += float64(count) * cfg.AddOnPrices[key]
		}
	}

	suppliesFee := 0.0
	if job.Supplies == domain.SuppliesProvider {
		suppliesFee = cfg.SuppliesFee
	}

	return Quote{
		BaseEstimatedHours: base,
		TeamApplied:        teamApplied,
		EstimatedHours:     estimated,
		HourlyRate:         rate,
		LabourCharge:       Round2(labour),
		AddOnsTotal:        Round2(addOnsTotal),
		SuppliesFee:        suppliesFee,
		TotalPrice:         Round2(labour + addOnsTotal + suppliesFee),
	}
}

// StaffPay рассчитывает оплату персонала для expense-записи:
// per-cleaner часы умножаются на ставку и на размер команды
func StaffPay(q Quote, cfg *Config, weekend bool) float64 {
	team := 1.0
	if q.TeamApplied {
		team = 2.0
	}
	return Round2(q.EstimatedHours * cfg.StaffRate(weekend) * team)
}
