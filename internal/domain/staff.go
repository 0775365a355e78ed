package domain

import (
	"math"
	"strings"
	"time"

	"github.com/sparkleclean/SCS-BookingService/pkg/types"
)

// DayAvailability represents a staff member's working window on one weekday
type DayAvailability struct {
	Available bool             `json:"available"`
	Start     types.TimeString `json:"startTime,omitempty"`
	End       types.TimeString `json:"endTime,omitempty"`
}

// StaffMember represents a cleaner on the roster
// Роспись (availability) управляется административным инструментом,
// здесь используется как read-only снапшот
type StaffMember struct {
	ID     int64
	Name   string
	Active bool

	// Availability расписание по дням недели
	// Ключ может быть как в нижнем регистре ("monday"), так и
	// с заглавной буквы ("Monday") - исторический формат данных
	Availability map[string]DayAvailability

	// MinNoticeHours минимальное количество часов до начала уборки
	MinNoticeHours float64

	// TravelBufferMins минимальный зазор до/после существующей уборки
	TravelBufferMins int
}

// DayWindow окно доступности сотрудника на конкретный день недели
type DayWindow struct {
	Available bool
	Start     types.TimeString
	End       types.TimeString
}

// DayWindow возвращает окно доступности сотрудника на день недели
// (имя дня в нижнем регистре, например "monday").
// Ключ ищется сначала в нижнем регистре, затем с заглавной буквы.
// Возвращает nil, если записи для дня нет.
// Отсутствующие времена начала/конца подставляются по умолчанию
// (07:00 / 20:00) независимо друг от друга.
func (s *StaffMember) DayWindow(weekday string) *DayWindow {
	if s.Availability == nil {
		return nil
	}

	entry, ok := s.Availability[weekday]
	if !ok {
		entry, ok = s.Availability[capitalize(weekday)]
	}
	if !ok {
		return nil
	}

	window := DayWindow{
		Available: entry.Available,
		Start:     entry.Start,
		End:       entry.End,
	}
	if window.Start.IsZero() {
		window.Start = types.TimeString(DefaultDayStart)
	}
	if window.End.IsZero() {
		window.End = types.TimeString(DefaultDayEnd)
	}

	return &window
}

// EffectiveMinNoticeHours возвращает минимальный notice сотрудника
// с подстановкой значения по умолчанию при некорректных данных
func (s *StaffMember) EffectiveMinNoticeHours() float64 {
	if math.IsNaN(s.MinNoticeHours) || math.IsInf(s.MinNoticeHours, 0) || s.MinNoticeHours < 0 {
		return DefaultMinNoticeHours
	}
	return s.MinNoticeHours
}

// EffectiveTravelBufferMins возвращает travel buffer сотрудника
// с подстановкой значения по умолчанию при некорректных данных
func (s *StaffMember) EffectiveTravelBufferMins() int {
	if s.TravelBufferMins < 0 {
		return DefaultTravelBufferMins
	}
	return s.TravelBufferMins
}

// RosterMinNoticeHours возвращает минимальный notice по всему ростеру
// Если ростер пуст или значения некорректны, возвращает DefaultMinNoticeHours
func RosterMinNoticeHours(staff []*StaffMember) float64 {
	min := math.Inf(1)
	for _, s := range staff {
		if notice := s.EffectiveMinNoticeHours(); notice < min {
			min = notice
		}
	}
	if math.IsInf(min, 0) || math.IsNaN(min) {
		return DefaultMinNoticeHours
	}
	return min
}

// WeekdayName возвращает имя дня недели в нижнем регистре ("monday")
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// capitalize возвращает строку с первой заглавной буквой ("monday" -> "Monday")
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
