package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // дата, выбранная в календаре (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date time.Time // дата, на которую запрашивались слоты

	// Slots часовые метки доступных слотов в возрастающем порядке
	// ("9", "14"); только часы, доступные для бронирования
	Slots []string
}
