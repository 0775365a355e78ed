package get_blocked_dates

import "context"

// UseCase use case сканирования заблокированных дат календаря
type UseCase struct {
	staffRepo    StaffRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(staffRepo StaffRepository, logger Logger) *UseCase {
	return &UseCase{
		staffRepo:    staffRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute сканирует окно дат и возвращает полностью заблокированные
//
// Политика отказа - fail open: если ростер недоступен, возвращается
// пустой набор, а не ошибка. Заблокировать весь календарь хуже, чем
// временно показать лишние даты - их отфильтрует проверка конфликтов
// при выборе конкретной даты
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	staff, err := uc.staffRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("GetBlockedDates: failed to load staff roster, failing open to no blocked dates: %v", err)
		return &Response{Dates: []string{}}, nil
	}

	dates := scanBlockedDates(staff, now)

	uc.logger.Info("GetBlockedDates: %d dates blocked in scan window, active staff=%d", len(dates), len(staff))

	return &Response{Dates: dates}, nil
}
