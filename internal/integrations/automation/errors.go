package automation

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("automation client: internal error")

	// ErrRejected возвращается, когда вебхук ответил не-2xx статусом
	// Ошибка логируется вызывающей стороной и не влияет на исход бронирования
	ErrRejected = errors.New("automation client: webhook rejected notification")
)
