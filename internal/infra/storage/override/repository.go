package override

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	"github.com/sparkleclean/SCS-BookingService/pkg/dbmetrics"
	"github.com/sparkleclean/SCS-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий ручных блокировок слотов
// Записи создаются административным инструментом, здесь читаются
// при расчете доступных слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate возвращает ручную блокировку на дату
// Возвращает ErrOverrideNotFound, если блокировки нет
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.UnavailabilityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"override_date",
		"booked_slots",
		"legacy_slots",
		"created_at",
		"updated_at",
	).
		From("unavailability_overrides").
		Where(squirrel.Eq{"override_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var (
		o                    domain.UnavailabilityOverride
		bookedJSON           []byte
		legacyJSON           []byte
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&o.Date,
		&bookedJSON,
		&legacyJSON,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan override: %v", ErrScanRow, err)
	}

	if len(bookedJSON) > 0 {
		if err := json.Unmarshal(bookedJSON, &o.BookedSlots); err != nil {
			return nil, fmt.Errorf("%w: GetByDate - unmarshal booked slots: %v", ErrScanRow, err)
		}
	}
	if len(legacyJSON) > 0 {
		if err := json.Unmarshal(legacyJSON, &o.LegacySlots); err != nil {
			return nil, fmt.Errorf("%w: GetByDate - unmarshal legacy slots: %v", ErrScanRow, err)
		}
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}
