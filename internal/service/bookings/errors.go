package bookings

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("bookings service: booking not found")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("bookings service: invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
