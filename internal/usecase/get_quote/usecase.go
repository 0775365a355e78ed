package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	"github.com/sparkleclean/SCS-BookingService/internal/pricing"
)

// UseCase use case расчета котировки
// Расчет чистый: никаких обращений к хранилищам
type UseCase struct {
	useLegacyOffice bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(useLegacyOffice bool, logger Logger) *UseCase {
	return &UseCase{
		useLegacyOffice: useLegacyOffice,
		logger:          logger,
	}
}

// Execute рассчитывает котировку по описанию работы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	cfg, err := pricing.ConfigFor(req.ServiceType, uc.useLegacyOffice)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownServiceType) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownService, req.ServiceType)
		}
		return nil, err
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

	uc.logger.Info("GetQuote: service=%s rooms=%d estimated=%.1fh team=%t total=%.2f",
		req.ServiceType, len(req.Rooms), quote.EstimatedHours, quote.TeamApplied, quote.TotalPrice)

	return &Response{
		ServiceType: req.ServiceType,
		Quote:       quote,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
