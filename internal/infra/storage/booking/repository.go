package booking

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

// bookingColumns полный набор колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"reference",
	"service_type",
	"customer_name",
	"customer_email",
	"customer_phone",
	"address_line1",
	"address_line2",
	"town",
	"county",
	"postcode",
	"booking_date",
	"start_time",
	"end_time",
	"rooms",
	"add_ons",
	"footfall",
	"supplies",
	"access_method",
	"access_details",
	"notes",
	"estimated_hours",
	"team_applied",
	"hourly_rate",
	"labour_charge",
	"add_ons_total",
	"supplies_fee",
	"total_price",
	"payment_due_at",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	roomsJSON, err := json.Marshal(b.Rooms)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal rooms: %v", ErrMarshalSnapshot, err)
	}
	addOnsJSON, err := json.Marshal(b.AddOns)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal add-ons: %v", ErrMarshalSnapshot, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"service_type",
			"customer_name",
			"customer_email",
			"customer_phone",
			"address_line1",
			"address_line2",
			"town",
			"county",
			"postcode",
			"booking_date",
			"start_time",
			"end_time",
			"rooms",
			"add_ons",
			"footfall",
			"supplies",
			"access_method",
			"access_details",
			"notes",
			"estimated_hours",
			"team_applied",
			"hourly_rate",
			"labour_charge",
			"add_ons_total",
			"supplies_fee",
			"total_price",
			"payment_due_at",
			"status",
		).
		Values(
			b.Reference,
			b.ServiceType,
			b.Contact.Name,
			b.Contact.Email,
			b.Contact.Phone,
			b.Address.Line1,
			b.Address.Line2,
			b.Address.Town,
			b.Address.County,
			b.Address.Postcode,
			b.Date,
			b.StartTime,
			b.EndTime,
			roomsJSON,
			addOnsJSON,
			b.Footfall,
			b.Supplies,
			b.AccessMethod,
			b.AccessDetails,
			b.Notes,
			b.EstimatedHours,
			b.TeamApplied,
			b.HourlyRate,
			b.LabourCharge,
			b.AddOnsTotal,
			b.SuppliesFee,
			b.TotalPrice,
			b.PaymentDueAt,
			b.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByReference получает бронирование по номеру заказа
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"reference": reference})
}

// GetByDate возвращает бронирования на конкретную дату
// Используется проверкой конфликтов и дневной сводкой для операторов
func (r *Repository) GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": filter.Date}).
		OrderBy("start_time ASC")

	if filter.ServiceType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_type": *filter.ServiceType})
	}

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var (
			b                    domain.Booking
			roomsJSON            []byte
			addOnsJSON           []byte
			line2, county        sql.NullString
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&b.ID,
			&b.Reference,
			&b.ServiceType,
			&b.Contact.Name,
			&b.Contact.Email,
			&b.Contact.Phone,
			&b.Address.Line1,
			&line2,
			&b.Address.Town,
			&county,
			&b.Address.Postcode,
			&b.Date,
			&b.StartTime,
			&b.EndTime,
			&roomsJSON,
			&addOnsJSON,
			&b.Footfall,
			&b.Supplies,
			&b.AccessMethod,
			&b.AccessDetails,
			&b.Notes,
			&b.EstimatedHours,
			&b.TeamApplied,
			&b.HourlyRate,
			&b.LabourCharge,
			&b.AddOnsTotal,
			&b.SuppliesFee,
			&b.TotalPrice,
			&b.PaymentDueAt,
			&b.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.Address.Line2 = line2.String
		b.Address.County = county.String

		if len(roomsJSON) > 0 {
			if err := json.Unmarshal(roomsJSON, &b.Rooms); err != nil {
				return nil, fmt.Errorf("%w: scanBookings - unmarshal rooms: %v", ErrScanRow, err)
			}
		}
		if len(addOnsJSON) > 0 {
			if err := json.Unmarshal(addOnsJSON, &b.AddOns); err != nil {
				return nil, fmt.Errorf("%w: scanBookings - unmarshal add-ons: %v", ErrScanRow, err)
			}
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
