package create_booking

import "errors"

var (
	// ErrValidation возвращается при отсутствии обязательных полей формы
	// Никаких побочных эффектов к этому моменту не выполнено
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrUnknownService возвращается для неизвестного варианта услуги
	ErrUnknownService = errors.New("create_booking: unknown service type")

	// ErrInvalidTimeSlot возвращается при некорректном времени слота
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
