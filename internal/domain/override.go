package domain

import (
	"strconv"
	"strings"
	"time"
)

// UnavailabilityOverride ручная блокировка слотов на конкретную дату
// Поддерживает два формата данных:
//   - BookedSlots: ключ - час слота ("9", "14")
//   - LegacySlots: исторический формат с префиксом ("slot_9")
type UnavailabilityOverride struct {
	ID          int64
	Date        time.Time
	BookedSlots map[string]bool
	LegacySlots map[string]bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RemovedHours возвращает набор часов, заблокированных вручную
// Объединяет оба формата; некорректные ключи игнорируются
func (o *UnavailabilityOverride) RemovedHours() map[int]bool {
	removed := make(map[int]bool)
	if o == nil {
		return removed
	}

	for key, booked := range o.BookedSlots {
		if !booked {
			continue
		}
		if hour, ok := parseSlotHour(key); ok {
			removed[hour] = true
		}
	}

	for key, booked := range o.LegacySlots {
		if !booked {
			continue
		}
		if hour, ok := parseSlotHour(strings.TrimPrefix(key, "slot_")); ok {
			removed[hour] = true
		}
	}

	return removed
}

// parseSlotHour разбирает часовую метку слота ("9", "14")
func parseSlotHour(key string) (int, bool) {
	hour, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
