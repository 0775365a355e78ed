package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/sparkleclean/SCS-BookingService/internal/infra/storage/booking"
	"github.com/sparkleclean/SCS-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований (админ-панель)
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetByReference получает бронирование по номеру заказа
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking reference=%s", reference)

	if reference == "" {
		return nil, fmt.Errorf("%w: empty reference", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByReference: successfully fetched booking id=%d", booking.ID)
	return models.FromDomainBooking(booking), nil
}

// GetDayBookings получает бронирования на дату с фильтрацией
// Поддерживает фильтрацию по типу услуги и включение отменённых бронирований
//
// Примеры использования:
// - Все активные бронирования на дату: GetDayBookings(ctx, &GetDayBookingsRequest{Date: date})
// - Только офисные уборки: указать ServiceType = "office_clean"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetDayBookings(ctx context.Context, req *models.GetDayBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetDayBookings: fetching bookings for date=%s", req.Date.Format("2006-01-02"))
	if req.ServiceType != nil {
		logMsg += fmt.Sprintf(", serviceType=%s", *req.ServiceType)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if req.Date.IsZero() {
		s.logger.Warn("GetDayBookings: missing date")
		return nil, fmt.Errorf("%w: missing date", ErrInvalidInput)
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetDayBookings: invalid filter for date=%s: %v", req.Date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	dayBookings, err := s.bookingRepo.GetByDate(ctx, filter)
	if err != nil {
		s.logger.Error("GetDayBookings: repository error for date=%s: %v", req.Date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("%w: GetDayBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayBookings: successfully fetched %d bookings for date=%s", len(dayBookings), req.Date.Format("2006-01-02"))
	return models.FromDomainBookingList(req.Date, dayBookings), nil
}
