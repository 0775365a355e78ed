package get_blocked_dates

// Response модель ответа со списком заблокированных дат
type Response struct {
	// Dates канонические даты YYYY-MM-DD, недоступные для бронирования
	// Используются фронтендом для затенения календаря
	Dates []string
}
