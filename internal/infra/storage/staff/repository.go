package staff

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	"github.com/sparkleclean/SCS-BookingService/pkg/dbmetrics"
	"github.com/sparkleclean/SCS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий ростера персонала
// Роспись управляется административным инструментом, этот сервис
// читает её как снапшот для расчета доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория персонала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive возвращает всех активных сотрудников с расписанием
func (r *Repository) GetActive(ctx context.Context) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"active",
		"availability",
		"min_notice_hours",
		"travel_buffer_mins",
	).
		From("staff_members").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanStaff(rows)
}

// GetByID возвращает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"active",
		"availability",
		"min_notice_hours",
		"travel_buffer_mins",
	).
		From("staff_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		member           domain.StaffMember
		availabilityJSON []byte
		minNotice        sql.NullFloat64
		travelBuffer     sql.NullInt64
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&member.ID,
		&member.Name,
		&member.Active,
		&availabilityJSON,
		&minNotice,
		&travelBuffer,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff member: %v", ErrScanRow, err)
	}

	if err := fillStaffFields(&member, availabilityJSON, minNotice, travelBuffer); err != nil {
		return nil, err
	}

	return &member, nil
}

// scanStaff сканирует результаты запроса в слайс сотрудников
func (r *Repository) scanStaff(rows *sql.Rows) ([]*domain.StaffMember, error) {
	staff := make([]*domain.StaffMember, 0)

	for rows.Next() {
		var (
			member           domain.StaffMember
			availabilityJSON []byte
			minNotice        sql.NullFloat64
			travelBuffer     sql.NullInt64
		)

		err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Active,
			&availabilityJSON,
			&minNotice,
			&travelBuffer,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanStaff - scan row: %v", ErrScanRow, err)
		}

		if err := fillStaffFields(&member, availabilityJSON, minNotice, travelBuffer); err != nil {
			return nil, err
		}

		staff = append(staff, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanStaff - rows error: %v", ErrScanRow, err)
	}

	return staff, nil
}

// fillStaffFields заполняет JSONB-расписание и дефолты политик
// NULL в колонках политик означает "использовать значение по умолчанию"
func fillStaffFields(member *domain.StaffMember, availabilityJSON []byte, minNotice sql.NullFloat64, travelBuffer sql.NullInt64) error {
	if len(availabilityJSON) > 0 {
		if err := json.Unmarshal(availabilityJSON, &member.Availability); err != nil {
			return fmt.Errorf("%w: fillStaffFields - unmarshal availability: %v", ErrScanRow, err)
		}
	}

	member.MinNoticeHours = domain.DefaultMinNoticeHours
	if minNotice.Valid {
		member.MinNoticeHours = minNotice.Float64
	}

	member.TravelBufferMins = domain.DefaultTravelBufferMins
	if travelBuffer.Valid {
		member.TravelBufferMins = int(travelBuffer.Int64)
	}

	return nil
}
