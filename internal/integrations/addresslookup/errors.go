package addresslookup

import "errors"

var (
	// ErrNotFound возвращается, когда по индексу не найдено адресов
	ErrNotFound = errors.New("addresslookup client: no addresses found for postcode")

	// ErrRateLimited возвращается при превышении лимита запросов к провайдеру
	ErrRateLimited = errors.New("addresslookup client: rate limited")

	// ErrUnauthorized возвращается при невалидном API ключе
	ErrUnauthorized = errors.New("addresslookup client: unauthorized")

	// ErrOutsideCoverage возвращается для индексов вне зоны обслуживания
	// Подбор адреса для таких индексов не выполняется
	ErrOutsideCoverage = errors.New("addresslookup client: postcode outside coverage area")

	// ErrInvalidPostcode возвращается при некорректном формате индекса
	ErrInvalidPostcode = errors.New("addresslookup client: invalid postcode")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("addresslookup client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("addresslookup client: invalid response")
)
