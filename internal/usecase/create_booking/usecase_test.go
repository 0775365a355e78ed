package create_booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	"github.com/sparkleclean/SCS-BookingService/internal/integrations/automation"
	"github.com/sparkleclean/SCS-BookingService/pkg/ptr"
	"github.com/sparkleclean/SCS-BookingService/pkg/types"
)

type mockBookingRepository struct {
	created *domain.Booking
	err     error
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	stored := *booking
	stored.ID = 42
	stored.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	m.created = &stored
	return &stored, nil
}

type mockLedgerRepository struct {
	entries []*domain.LedgerEntry
	err     error
}

func (m *mockLedgerRepository) Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.entries = append(m.entries, entry)
	return entry, nil
}

type mockAutomationClient struct {
	payload *automation.NotificationPayload
	err     error
}

func (m *mockAutomationClient) Notify(ctx context.Context, payload *automation.NotificationPayload) error {
	m.payload = payload
	return m.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type testEnv struct {
	uc         *UseCase
	bookings   *mockBookingRepository
	ledger     *mockLedgerRepository
	automation *mockAutomationClient
}

func newTestEnv() *testEnv {
	bookings := &mockBookingRepository{}
	ledger := &mockLedgerRepository{}
	client := &mockAutomationClient{}

	uc := NewUseCase(bookings, ledger, client, passthroughTxManager{}, false, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}

	return &testEnv{uc: uc, bookings: bookings, ledger: ledger, automation: client}
}

// validRequest is a home clean with a single medium bedroom: 2h at the
// floor, £24/h weekday, £48 total.
func validRequest() *Request {
	return &Request{
		ServiceType:  domain.ServiceHomeClean,
		Name:         "Jamie Carter",
		Email:        "jamie@example.com",
		Phone:        "07911 123456",
		AddressLine1: "12 Harbour View",
		Town:         "Bristol",
		Postcode:     "BS1 4ST",
		Date:         time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), // Thursday
		StartTime:    types.TimeString("10:00"),
		Rooms:        []domain.RoomEntry{{RoomType: "bedroom", SizeClass: domain.SizeM}},
		Footfall:     domain.FootfallAverage,
		Supplies:     domain.SuppliesCustomer,
		AccessMethod: domain.AccessSomeoneHome,
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Regexp(t, regexp.MustCompile(`^HC\d{5}$`), resp.Reference)
	assert.Equal(t, "confirmed", resp.Status)

	// 2h estimate: ends at noon, payment due 24h before the start.
	assert.Equal(t, 2.0, resp.EstimatedHours)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
	assert.Equal(t, time.Date(2026, 9, 9, 10, 0, 0, 0, time.UTC), resp.PaymentDueAt)
	assert.Equal(t, 48.0, resp.TotalPrice)

	// Phone is normalized before persisting.
	require.NotNil(t, env.bookings.created)
	assert.Equal(t, "+447911123456", env.bookings.created.Contact.Phone)
	assert.Equal(t, domain.StatusConfirmed, env.bookings.created.Status)
}

func TestExecute_SendsWebhookAndLedgerEntries(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Webhook carries the persisted reference and display fields.
	require.NotNil(t, env.automation.payload)
	assert.Equal(t, "booking.confirmed", env.automation.payload.EventType)
	assert.Equal(t, resp.Reference, env.automation.payload.OrderReference)
	assert.NotEmpty(t, env.automation.payload.EventID)
	assert.Equal(t, "1x bedroom (m)", env.automation.payload.RoomSummary)

	// Income for the order total, expense for the projected staff pay.
	require.Len(t, env.ledger.entries, 2)

	income := env.ledger.entries[0]
	assert.Equal(t, domain.LedgerIncome, income.Direction)
	assert.Equal(t, "booking", income.Category)
	assert.Equal(t, 48.0, income.Amount)
	assert.Equal(t, resp.Reference, income.Reference)

	expense := env.ledger.entries[1]
	assert.Equal(t, domain.LedgerExpense, expense.Direction)
	assert.Equal(t, "staff_pay", expense.Category)
	// 2h * £13.50 weekday staff rate, single cleaner.
	assert.Equal(t, 27.0, expense.Amount)
}

func TestExecute_ValidationLeavesNoTrace(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"missing name", func(req *Request) { req.Name = "  " }},
		{"missing email", func(req *Request) { req.Email = "" }},
		{"missing phone", func(req *Request) { req.Phone = "" }},
		{"missing address line 1", func(req *Request) { req.AddressLine1 = "" }},
		{"missing town", func(req *Request) { req.Town = "" }},
		{"missing postcode", func(req *Request) { req.Postcode = "" }},
		{"missing date", func(req *Request) { req.Date = time.Time{} }},
		{"missing time slot", func(req *Request) { req.StartTime = "" }},
		{"invalid service type", func(req *Request) { req.ServiceType = "window_clean" }},
		{"missing supplies", func(req *Request) { req.Supplies = "" }},
		{"missing access method", func(req *Request) { req.AccessMethod = "" }},
		{"alternative access without details", func(req *Request) { req.AccessMethod = domain.AccessAlternative }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)

			// A rejected form must not touch any downstream system.
			assert.Nil(t, env.bookings.created)
			assert.Nil(t, env.automation.payload)
			assert.Empty(t, env.ledger.entries)
		})
	}
}

func TestExecute_AlternativeAccessWithDetails(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.AccessMethod = domain.AccessAlternative
	req.AccessDetails = ptr.Ptr("key safe by the front door, code 1234")

	_, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, env.bookings.created)
	assert.Equal(t, "key safe by the front door, code 1234", env.automation.payload.AccessDetails)
}

func TestExecute_SlotPastMidnightRejected(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.StartTime = types.TimeString("23:00")

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	assert.Nil(t, env.bookings.created)
}

func TestExecute_PersistFailureSurfaces(t *testing.T) {
	env := newTestEnv()
	env.bookings.err = errors.New("connection refused")

	_, err := env.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	// Nothing downstream runs when the primary write fails.
	assert.Nil(t, env.automation.payload)
	assert.Empty(t, env.ledger.entries)
}

func TestExecute_WebhookFailureIsNonFatal(t *testing.T) {
	env := newTestEnv()
	env.automation.err = errors.New("502 bad gateway")

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	// Ledger entries are still written independently.
	assert.Len(t, env.ledger.entries, 2)
}

func TestExecute_LedgerFailureIsNonFatal(t *testing.T) {
	env := newTestEnv()
	env.ledger.err = errors.New("connection refused")

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	// The webhook is still sent independently.
	assert.NotNil(t, env.automation.payload)
}

func TestExecute_WeekendOfficeRates(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.ServiceType = domain.ServiceOfficeClean
	req.Date = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC) // Saturday
	req.Rooms = []domain.RoomEntry{{RoomType: "office", SizeClass: domain.SizeM}}

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^OC\d{5}$`), resp.Reference)
	assert.Equal(t, 26.0, resp.HourlyRate)

	// 2h * £14.50 weekend staff rate.
	require.Len(t, env.ledger.entries, 2)
	assert.Equal(t, 29.0, env.ledger.entries[1].Amount)
}

func TestExecute_PromoFlatDeposit(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.ServiceType = domain.ServiceFreeRoom
	req.Supplies = "" // promo form does not ask

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^FR\d{5}$`), resp.Reference)
	assert.Equal(t, 1.0, resp.EstimatedHours)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, 0.0, resp.LabourCharge)
	assert.Equal(t, 10.0, resp.TotalPrice)
}

func TestGenerateOrderReference(t *testing.T) {
	pattern := regexp.MustCompile(`^HC\d{5}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, generateOrderReference("HC"))
	}
}
