package get_available_slots

import (
	"context"
	"time"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
)

// StaffRepository интерфейс репозитория персонала
type StaffRepository interface {
	// GetActive возвращает всех активных сотрудников с расписанием
	GetActive(ctx context.Context) ([]*domain.StaffMember, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate возвращает бронирования на конкретную дату
	GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// OverrideRepository интерфейс репозитория ручных блокировок
type OverrideRepository interface {
	// GetByDate возвращает ручную блокировку слотов на дату
	GetByDate(ctx context.Context, date time.Time) (*domain.UnavailabilityOverride, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
