package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	overrideRepo "github.com/sparkleclean/SCS-BookingService/internal/infra/storage/override"
)

type mockStaffRepository struct {
	staff []*domain.StaffMember
	err   error
}

func (m *mockStaffRepository) GetActive(ctx context.Context) ([]*domain.StaffMember, error) {
	return m.staff, m.err
}

type mockBookingRepository struct {
	bookings []*domain.Booking
	err      error
}

func (m *mockBookingRepository) GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return m.bookings, m.err
}

type mockOverrideRepository struct {
	override *domain.UnavailabilityOverride
	err      error
}

func (m *mockOverrideRepository) GetByDate(ctx context.Context, date time.Time) (*domain.UnavailabilityOverride, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.override == nil {
		return nil, overrideRepo.ErrOverrideNotFound
	}
	return m.override, nil
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

// 2026-09-10 is a Thursday; "now" is nine days earlier so the notice
// window never interferes unless a test wants it to.
var (
	testDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
)

func testStaff() []*domain.StaffMember {
	return []*domain.StaffMember{
		{
			ID:     1,
			Active: true,
			Availability: map[string]domain.DayAvailability{
				"thursday": {Available: true, Start: "09:00", End: "17:00"},
			},
			MinNoticeHours:   12,
			TravelBufferMins: 30,
		},
	}
}

func newTestUseCase(staff *mockStaffRepository, bookings *mockBookingRepository, overrides *mockOverrideRepository, now time.Time) *UseCase {
	uc := NewUseCase(staff, bookings, overrides, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_WorkingWindowBoundsSlots(t *testing.T) {
	uc := newTestUseCase(
		&mockStaffRepository{staff: testStaff()},
		&mockBookingRepository{},
		&mockOverrideRepository{},
		testNow,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	// 09:00-17:00 window yields hours 9 through 16: a slot starting at
	// 17:00 falls outside the half-open window.
	assert.Equal(t, []string{"9", "10", "11", "12", "13", "14", "15", "16"}, resp.Slots)
}

func TestExecute_TravelBufferBlocksAdjacentSlots(t *testing.T) {
	bookings := []*domain.Booking{
		{
			Date:      testDate,
			StartTime: "12:00",
			EndTime:   "13:00",
			Status:    domain.StatusConfirmed,
		},
	}
	uc := newTestUseCase(
		&mockStaffRepository{staff: testStaff()},
		&mockBookingRepository{bookings: bookings},
		&mockOverrideRepository{},
		testNow,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	// The 30-minute buffer keeps 11:00 free (ends 11:30 before the job)
	// but blocks 12:00 and 13:00; 14:00 starts after the 13:30 buffer.
	assert.Equal(t, []string{"9", "10", "11", "14", "15", "16"}, resp.Slots)
}

func TestExecute_CancelledBookingsIgnored(t *testing.T) {
	bookings := []*domain.Booking{
		{
			Date:      testDate,
			StartTime: "12:00",
			EndTime:   "13:00",
			Status:    domain.StatusCancelled,
		},
	}
	uc := newTestUseCase(
		&mockStaffRepository{staff: testStaff()},
		&mockBookingRepository{bookings: bookings},
		&mockOverrideRepository{},
		testNow,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Contains(t, resp.Slots, "12")
	assert.Contains(t, resp.Slots, "13")
}

func TestExecute_OverrideRemovesHours(t *testing.T) {
	override := &domain.UnavailabilityOverride{
		Date:        testDate,
		BookedSlots: map[string]bool{"9": true},
		LegacySlots: map[string]bool{"slot_10": true},
	}
	uc := newTestUseCase(
		&mockStaffRepository{staff: testStaff()},
		&mockBookingRepository{},
		&mockOverrideRepository{override: override},
		testNow,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, []string{"11", "12", "13", "14", "15", "16"}, resp.Slots)
}

func TestExecute_MinNoticeHidesEarlySlots(t *testing.T) {
	// Same-day request at 05:00 with a 6h notice: nothing before 11:00.
	sameDayNow := time.Date(2026, 9, 10, 5, 0, 0, 0, time.UTC)
	staff := testStaff()
	staff[0].MinNoticeHours = 6

	uc := newTestUseCase(
		&mockStaffRepository{staff: staff},
		&mockBookingRepository{},
		&mockOverrideRepository{},
		sameDayNow,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, []string{"11", "12", "13", "14", "15", "16"}, resp.Slots)
}

func TestExecute_NoStaffOnWeekday(t *testing.T) {
	// Roster only works Thursdays; ask for the Friday.
	friday := testDate.AddDate(0, 0, 1)
	uc := newTestUseCase(
		&mockStaffRepository{staff: testStaff()},
		&mockBookingRepository{},
		&mockOverrideRepository{},
		testNow,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_FailsClosedOnRepositoryErrors(t *testing.T) {
	boom := errors.New("connection refused")

	tests := []struct {
		name      string
		staff     *mockStaffRepository
		bookings  *mockBookingRepository
		overrides *mockOverrideRepository
	}{
		{
			name:      "staff load fails",
			staff:     &mockStaffRepository{err: boom},
			bookings:  &mockBookingRepository{},
			overrides: &mockOverrideRepository{},
		},
		{
			name:      "bookings load fails",
			staff:     &mockStaffRepository{staff: testStaff()},
			bookings:  &mockBookingRepository{err: boom},
			overrides: &mockOverrideRepository{},
		},
		{
			name:      "override load fails",
			staff:     &mockStaffRepository{staff: testStaff()},
			bookings:  &mockBookingRepository{},
			overrides: &mockOverrideRepository{err: boom},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.staff, tt.bookings, tt.overrides, testNow)

			resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

			// Unverifiable availability is offered as no availability,
			// not as an error.
			require.NoError(t, err)
			assert.Empty(t, resp.Slots)
		})
	}
}

func TestExecute_MissingDateRejected(t *testing.T) {
	uc := newTestUseCase(
		&mockStaffRepository{staff: testStaff()},
		&mockBookingRepository{},
		&mockOverrideRepository{},
		testNow,
	)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
