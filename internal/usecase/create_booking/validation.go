package create_booking

import (
	"fmt"
	"strings"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
)

// validateRequest проверяет все обязательные поля формы
// Выполняется до любых побочных эффектов: невалидная заявка
// не оставляет следов ни в БД, ни в уведомлениях
func validateRequest(req *Request) error {
	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: serviceType is required", ErrValidation)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time slot is required", ErrValidation)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time slot: %v", ErrValidation, err)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}

	if strings.TrimSpace(req.AddressLine1) == "" {
		return fmt.Errorf("%w: address line 1 is required", ErrValidation)
	}
	if strings.TrimSpace(req.Town) == "" {
		return fmt.Errorf("%w: town is required", ErrValidation)
	}
	if strings.TrimSpace(req.Postcode) == "" {
		return fmt.Errorf("%w: postcode is required", ErrValidation)
	}

	// Промо-вариант не спрашивает про средства для уборки
	if req.ServiceType != domain.ServiceFreeRoom {
		if req.Supplies != domain.SuppliesCustomer && req.Supplies != domain.SuppliesProvider {
			return fmt.Errorf("%w: supplies choice is required", ErrValidation)
		}
	}

	switch req.AccessMethod {
	case domain.AccessSomeoneHome:
		// Инструкция не нужна
	case domain.AccessAlternative:
		if req.AccessDetails == nil || strings.TrimSpace(*req.AccessDetails) == "" {
			return fmt.Errorf("%w: access details are required for alternative access", ErrValidation)
		}
		if len(*req.AccessDetails) > domain.MaxAccessDetailsLength {
			return fmt.Errorf("%w: access details are too long", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: access method is required", ErrValidation)
	}

	return nil
}
