package get_blocked_dates

import (
	"time"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
)

// scanBlockedDates проходит окно [today-30d, today+60d) и собирает
// даты, недоступные для бронирования целиком
//
// Дата заблокирована, если выполняется любое из условий:
//   - дата строго раньше сегодняшней (сравнение только по дате);
//   - ни один активный сотрудник не доступен в этот день недели;
//   - глобальный минимальный notice, отложенный от текущего момента,
//     выходит за конец операционного окна (20:00) этой даты -
//     то есть даже последний слот внутри notice-окна
func scanBlockedDates(staff []*domain.StaffMember, now time.Time) []string {
	today := dateOnly(now)
	start := today.AddDate(0, 0, -domain.BlockedScanDaysPast)
	totalDays := domain.BlockedScanDaysPast + domain.BlockedScanDaysAhead

	minNotice := domain.RosterMinNoticeHours(staff)
	earliestStart := now.Add(time.Duration(minNotice * float64(time.Hour)))

	blocked := make([]string, 0)

	for i := 0; i < totalDays; i++ {
		date := start.AddDate(0, 0, i)

		if isDateBlocked(date, today, earliestStart, staff) {
			blocked = append(blocked, date.Format(domain.DateFormat))
		}
	}

	return blocked
}

func isDateBlocked(date, today, earliestStart time.Time, staff []*domain.StaffMember) bool {
	if date.Before(today) {
		return true
	}

	if !anyStaffWorks(staff, domain.WeekdayName(date.Weekday())) {
		return true
	}

	// Конец операционного окна этой даты
	windowEnd := time.Date(date.Year(), date.Month(), date.Day(),
		domain.OperatingDayEndHour, 0, 0, 0, date.Location())

	return earliestStart.After(windowEnd)
}

// anyStaffWorks возвращает true, если хотя бы один сотрудник
// доступен в указанный день недели
func anyStaffWorks(staff []*domain.StaffMember, weekday string) bool {
	for _, s := range staff {
		if window := s.DayWindow(weekday); window != nil && window.Available {
			return true
		}
	}
	return false
}

// dateOnly обнуляет время, оставляя только календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
