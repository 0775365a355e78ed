package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	overrideRepo "github.com/sparkleclean/SCS-BookingService/internal/infra/storage/override"
)

// UseCase use case получения доступных часовых слотов на дату
type UseCase struct {
	staffRepo    StaffRepository
	bookingRepo  BookingRepository
	overrideRepo OverrideRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffRepo StaffRepository,
	bookingRepo BookingRepository,
	overrideRepo OverrideRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffRepo:    staffRepo,
		bookingRepo:  bookingRepo,
		overrideRepo: overrideRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute вычисляет доступные часовые слоты на выбранную дату
//
// Политика отказа - fail closed: при любой ошибке чтения данных
// возвращается пустой список, а не ошибка. Предложить слот, который
// нельзя проверить, хуже, чем не предложить ничего
// (асимметрия со сканером заблокированных дат намеренная)
//
// Ростер и бронирования читаются в рамках одного вызова - компоненты
// ниже работают со согласованным снапшотом, а не с живым хранилищем
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	now := uc.timeProvider.Now()
	empty := &Response{Date: req.Date, Slots: []string{}}

	staff, err := uc.staffRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load staff roster, failing closed to no slots: %v", err)
		return empty, nil
	}

	bookings, err := uc.bookingRepo.GetByDate(ctx, domain.DayBookingsFilter{Date: req.Date})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load bookings for %s, failing closed to no slots: %v",
			req.Date.Format(domain.DateFormat), err)
		return empty, nil
	}

	ovr, err := uc.overrideRepo.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to load override for %s, failing closed to no slots: %v",
			req.Date.Format(domain.DateFormat), err)
		return empty, nil
	}

	slots := computeBookableHours(staff, bookings, ovr, req.Date, now)

	uc.logger.Info("GetAvailableSlots: %d of %d grid hours bookable on %s, day bookings=%d",
		len(slots), domain.OperatingDayEndHour-domain.OperatingDayStartHour+1,
		req.Date.Format(domain.DateFormat), len(bookings))

	return &Response{Date: req.Date, Slots: slots}, nil
}
