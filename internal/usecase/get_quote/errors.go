package get_quote

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_quote: invalid input data")

	// ErrUnknownService возвращается для неизвестного варианта услуги
	ErrUnknownService = errors.New("get_quote: unknown service type")
)
