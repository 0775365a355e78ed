package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	"github.com/sparkleclean/SCS-BookingService/pkg/dbmetrics"
	"github.com/sparkleclean/SCS-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий финансовых записей
// Записи создаются при подтверждении бронирования и никогда не изменяются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория финансовых записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает финансовую запись
func (r *Repository) Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("ledger_entries").
		Columns(
			"direction",
			"category",
			"amount",
			"reference",
			"description",
			"entry_date",
		).
		Values(
			entry.Direction,
			entry.Category,
			entry.Amount,
			entry.Reference,
			entry.Description,
			entry.EntryDate,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time

	return entry, nil
}
