package create_booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	"github.com/sparkleclean/SCS-BookingService/internal/pricing"
	"github.com/sparkleclean/SCS-BookingService/pkg/phone"
)

// UseCase use case создания бронирования
//
// Оркестрирует submit формы: валидация, финальный расчет цены,
// персистентная запись и независимые downstream-уведомления
type UseCase struct {
	bookingRepo      BookingRepository
	ledgerRepo       LedgerRepository
	automationClient AutomationClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	useLegacyOffice  bool
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	ledgerRepo LedgerRepository,
	automationClient AutomationClient,
	txManager TransactionManager,
	useLegacyOffice bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		ledgerRepo:       ledgerRepo,
		automationClient: automationClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		useLegacyOffice:  useLegacyOffice,
		logger:           logger,
	}
}

// Execute выполняет submit бронирования
//
// Бронирование считается успешным, как только первичная запись
// сохранена. Вебхук и финансовые записи выполняются после и независимо:
// их ошибки логируются, но не откатывают запись и не видны заказчику
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s",
		req.ServiceType, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация всех обязательных полей до любых побочных эффектов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Конфигурация варианта и финальный расчет цены
	cfg, err := pricing.ConfigFor(req.ServiceType, uc.useLegacyOffice)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownServiceType) {
			uc.logger.Warn("CreateBooking: unknown service type %q", req.ServiceType)
			return nil, fmt.Errorf("%w: %q", ErrUnknownService, req.ServiceType)
		}
		return nil, fmt.Errorf("%w: failed to resolve pricing config: %v", ErrInternal, err)
	}

	job := &domain.JobDescription{
		ServiceType: req.ServiceType,
		Rooms:       req.Rooms,
		AddOns:      req.AddOns,
		Footfall:    req.Footfall,
		Supplies:    req.Supplies,
		Date:        req.Date,
	}
	quote := pricing.Estimate(job, cfg)

	// 3. Производные времена: конец работы и срок оплаты
	startAt, err := req.StartTime.At(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	durationMins := int(math.Round(quote.EstimatedHours * 60))
	endTime, err := req.StartTime.AddMinutes(durationMins)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot %s + %.1fh runs past midnight", req.StartTime, quote.EstimatedHours)
		return nil, fmt.Errorf("%w: booking would run past end of day", ErrInvalidTimeSlot)
	}

	paymentDueAt := startAt.Add(-domain.PaymentDueOffsetHours * time.Hour)

	// 4. Сборка персистентной записи
	booking := &domain.Booking{
		Reference:   generateOrderReference(cfg.OrderPrefix),
		ServiceType: req.ServiceType,
		Contact: domain.Contact{
			Name:  req.Name,
			Email: req.Email,
			Phone: phone.Normalize(req.Phone),
		},
		Address: domain.Address{
			Line1:    req.AddressLine1,
			Line2:    req.AddressLine2,
			Town:     req.Town,
			County:   req.County,
			Postcode: req.Postcode,
		},
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   endTime,

		Rooms:         req.Rooms,
		AddOns:        req.AddOns,
		Footfall:      req.Footfall,
		Supplies:      req.Supplies,
		AccessMethod:  req.AccessMethod,
		AccessDetails: req.AccessDetails,
		Notes:         req.Notes,

		EstimatedHours: quote.EstimatedHours,
		TeamApplied:    quote.TeamApplied,
		HourlyRate:     quote.HourlyRate,
		LabourCharge:   quote.LabourCharge,
		AddOnsTotal:    quote.AddOnsTotal,
		SuppliesFee:    quote.SuppliesFee,
		TotalPrice:     quote.TotalPrice,

		PaymentDueAt: paymentDueAt,
		Status:       domain.StatusConfirmed,
	}

	// 5. Первичная запись - единственный фатальный side effect
	var created *domain.Booking
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = uc.bookingRepo.Create(txCtx, booking)
		return createErr
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to persist booking %s: %v", booking.Reference, err)
		return nil, fmt.Errorf("%w: failed to persist booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: booking %s persisted, id=%d, total=%.2f",
		created.Reference, created.ID, created.TotalPrice)

	// 6. Downstream-уведомления: каждое независимо и нефатально
	uc.notifyAutomation(ctx, created)
	uc.recordLedgerEntries(ctx, created, quote, cfg, now)

	return &Response{
		ID:             created.ID,
		Reference:      created.Reference,
		ServiceType:    created.ServiceType,
		Date:           created.Date,
		StartTime:      created.StartTime,
		EndTime:        created.EndTime,
		EstimatedHours: created.EstimatedHours,
		TeamApplied:    created.TeamApplied,
		HourlyRate:     created.HourlyRate,
		LabourCharge:   created.LabourCharge,
		AddOnsTotal:    created.AddOnsTotal,
		SuppliesFee:    created.SuppliesFee,
		TotalPrice:     created.TotalPrice,
		PaymentDueAt:   created.PaymentDueAt,
		Status:         string(created.Status),
		CreatedAt:      created.CreatedAt,
	}, nil
}

// notifyAutomation отправляет вебхук automation-платформе
// Ошибка логируется и не влияет на исход бронирования
func (uc *UseCase) notifyAutomation(ctx context.Context, booking *domain.Booking) {
	if err := uc.automationClient.Notify(ctx, buildNotification(booking)); err != nil {
		uc.logger.Error("CreateBooking: automation webhook failed for %s (booking persisted, not rolled back): %v",
			booking.Reference, err)
	}
}

// recordLedgerEntries создает income-запись на сумму заказа и
// expense-запись на расчетную оплату персонала
// Ошибки логируются по отдельности и не влияют на исход бронирования
func (uc *UseCase) recordLedgerEntries(ctx context.Context, booking *domain.Booking, quote pricing.Quote, cfg *pricing.Config, now time.Time) {
	income := &domain.LedgerEntry{
		Direction:   domain.LedgerIncome,
		Category:    "booking",
		Amount:      booking.TotalPrice,
		Reference:   booking.Reference,
		Description: fmt.Sprintf("%s booking on %s", booking.ServiceType, booking.Date.Format(domain.DateFormat)),
		EntryDate:   now,
	}
	if _, err := uc.ledgerRepo.Create(ctx, income); err != nil {
		uc.logger.Error("CreateBooking: income ledger entry failed for %s: %v", booking.Reference, err)
	}

	weekend := booking.Date.Weekday() == time.Saturday || booking.Date.Weekday() == time.Sunday
	expense := &domain.LedgerEntry{
		Direction:   domain.LedgerExpense,
		Category:    "staff_pay",
		Amount:      pricing.StaffPay(quote, cfg, weekend),
		Reference:   booking.Reference,
		Description: fmt.Sprintf("staff pay for %s on %s", booking.Reference, booking.Date.Format(domain.DateFormat)),
		EntryDate:   now,
	}
	if _, err := uc.ledgerRepo.Create(ctx, expense); err != nil {
		uc.logger.Error("CreateBooking: expense ledger entry failed for %s: %v", booking.Reference, err)
	}
}
