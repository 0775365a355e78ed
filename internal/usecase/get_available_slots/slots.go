package get_available_slots

import (
	"strconv"
	"time"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
)

// computeBookableHours вычисляет часовые слоты, доступные на дату
//
// Час доступен, если он не снят ручной блокировкой, не попадает
// в notice-окно и хотя бы один работающий в этот день сотрудник
// свободен с учетом travel buffer
func computeBookableHours(
	staff []*domain.StaffMember,
	bookings []*domain.Booking,
	ovr *domain.UnavailabilityOverride,
	date time.Time,
	now time.Time,
) []string {
	weekday := domain.WeekdayName(date.Weekday())

	// Сотрудники, работающие в этот день недели, с их окнами
	type dayStaff struct {
		member *domain.StaffMember
		window *domain.DayWindow
	}
	working := make([]dayStaff, 0, len(staff))
	for _, s := range staff {
		if window := s.DayWindow(weekday); window != nil && window.Available {
			working = append(working, dayStaff{member: s, window: window})
		}
	}
	if len(working) == 0 {
		return []string{}
	}

	removed := ovr.RemovedHours()

	// Минимальный notice среди работающих в этот день
	members := make([]*domain.StaffMember, len(working))
	for i, ds := range working {
		members[i] = ds.member
	}
	minNotice := domain.RosterMinNoticeHours(members)
	earliestStart := now.Add(time.Duration(minNotice * float64(time.Hour)))

	slots := make([]string, 0)

	for hour := domain.OperatingDayStartHour; hour <= domain.OperatingDayEndHour; hour++ {
		if removed[hour] {
			continue
		}

		slotStart := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
		if slotStart.Before(earliestStart) {
			continue
		}

		for _, ds := range working {
			if staffFreeAt(ds.member, ds.window, hour, bookings) {
				slots = append(slots, strconv.Itoa(hour))
				break
			}
		}
	}

	return slots
}

// staffFreeAt проверяет, свободен ли сотрудник в указанный час
//
// Существующие бронирования считаются занимающими время всего ростера
// в пределах travel buffer, без привязки к конкретному исполнителю -
// консервативно, зато не предлагает слоты, которые некому закрыть
func staffFreeAt(member *domain.StaffMember, window *domain.DayWindow, hour int, bookings []*domain.Booking) bool {
	startMins, err := window.Start.Minutes()
	if err != nil {
		return false
	}
	endMins, err := window.End.Minutes()
	if err != nil {
		return false
	}

	slotMins := hour * 60

	// Час должен попадать в рабочее окно [start, end)
	if slotMins < startMins || slotMins >= endMins {
		return false
	}

	buffer := member.EffectiveTravelBufferMins()

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		bStart, err := b.StartTime.Minutes()
		if err != nil {
			continue
		}
		bEnd, err := b.EndTime.Minutes()
		if err != nil {
			continue
		}

		// Слот конфликтует, если попадает в [start-buffer, end+buffer)
		if slotMins >= bStart-buffer && slotMins < bEnd+buffer {
			return false
		}
	}

	return true
}
