package domain

// Операционное окно: часовые слоты с 07:00 до 20:00
const (
	OperatingDayStartHour = 7
	OperatingDayEndHour   = 20
)

// Default availability values
const (
	DefaultDayStart         = "07:00"
	DefaultDayEnd           = "20:00"
	DefaultMinNoticeHours   = 12.0
	DefaultTravelBufferMins = 30
)

// Окно сканирования заблокированных дат: 30 дней назад, 60 дней вперед
const (
	BlockedScanDaysPast  = 30
	BlockedScanDaysAhead = 60
)

// PaymentDueOffsetHours за сколько часов до начала уборки должна быть внесена оплата
const PaymentDueOffsetHours = 24

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MaxAccessDetailsLength ограничение длины инструкции по доступу
const MaxAccessDetailsLength = 500
