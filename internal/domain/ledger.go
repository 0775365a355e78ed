package domain

import "time"

// LedgerDirection направление финансовой записи
type LedgerDirection string

const (
	LedgerIncome  LedgerDirection = "income"
	LedgerExpense LedgerDirection = "expense"
)

// LedgerEntry финансовая запись, создаваемая при подтверждении бронирования:
// income на сумму заказа и expense на расчетную оплату персонала
type LedgerEntry struct {
	ID          int64
	Direction   LedgerDirection
	Category    string // "booking" / "staff_pay"
	Amount      float64
	Reference   string // номер заказа
	Description string
	EntryDate   time.Time
	CreatedAt   time.Time
}
