package get_blocked_dates

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
