package automation

// NotificationPayload исходящее уведомление automation-платформе
// Плоская форма с человекочитаемыми датами рядом с машинными:
// платформа подставляет поля напрямую в письма и таблицы
type NotificationPayload struct {
	EventID   string `json:"eventId"`
	EventType string `json:"eventType"` // всегда "booking.confirmed"

	OrderReference string `json:"orderReference"`
	ServiceType    string `json:"serviceType"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Town         string `json:"town"`
	County       string `json:"county,omitempty"`
	Postcode     string `json:"postcode"`

	Date          string `json:"date"`          // YYYY-MM-DD
	DateDisplay   string `json:"dateDisplay"`   // "Monday, 2 September 2026"
	StartTime     string `json:"startTime"`     // HH:MM
	EndTime       string `json:"endTime"`       // HH:MM
	PaymentDueAt  string `json:"paymentDueAt"`  // RFC3339
	PaymentDueFmt string `json:"paymentDueFmt"` // "15:04, 2 January 2006"

	RoomSummary    string  `json:"roomSummary"`
	ExtrasSummary  string  `json:"extrasSummary,omitempty"`
	Footfall       string  `json:"footfall"`
	Supplies       string  `json:"supplies"`
	AccessMethod   string  `json:"accessMethod"`
	AccessDetails  string  `json:"accessDetails,omitempty"`
	EstimatedHours float64 `json:"estimatedHours"`
	TeamApplied    bool    `json:"teamApplied"`
	TotalPrice     float64 `json:"totalPrice"`
}
