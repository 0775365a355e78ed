package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/SCS-BookingService/pkg/types"
)

func TestStaffMember_DayWindow(t *testing.T) {
	member := &StaffMember{
		Availability: map[string]DayAvailability{
			"monday": {Available: true, Start: "09:00", End: "17:00"},
			// Legacy rows store capitalized weekday keys.
			"Tuesday": {Available: true, Start: "10:00"},
			"friday":  {Available: false},
		},
	}

	t.Run("lowercase key", func(t *testing.T) {
		window := member.DayWindow("monday")
		require.NotNil(t, window)
		assert.True(t, window.Available)
		assert.Equal(t, types.TimeString("09:00"), window.Start)
		assert.Equal(t, types.TimeString("17:00"), window.End)
	})

	t.Run("capitalized key fallback", func(t *testing.T) {
		window := member.DayWindow("tuesday")
		require.NotNil(t, window)
		assert.True(t, window.Available)
		assert.Equal(t, types.TimeString("10:00"), window.Start)
		// Missing end defaults independently of the present start.
		assert.Equal(t, types.TimeString(DefaultDayEnd), window.End)
	})

	t.Run("missing day", func(t *testing.T) {
		assert.Nil(t, member.DayWindow("sunday"))
	})

	t.Run("unavailable day keeps defaults", func(t *testing.T) {
		window := member.DayWindow("friday")
		require.NotNil(t, window)
		assert.False(t, window.Available)
		assert.Equal(t, types.TimeString(DefaultDayStart), window.Start)
		assert.Equal(t, types.TimeString(DefaultDayEnd), window.End)
	})

	t.Run("nil availability", func(t *testing.T) {
		empty := &StaffMember{}
		assert.Nil(t, empty.DayWindow("monday"))
	})
}

func TestStaffMember_EffectiveMinNoticeHours(t *testing.T) {
	tests := []struct {
		name   string
		notice float64
		want   float64
	}{
		{"positive", 24, 24},
		{"zero is valid", 0, 0},
		{"negative falls back", -5, DefaultMinNoticeHours},
		{"NaN falls back", math.NaN(), DefaultMinNoticeHours},
		{"Inf falls back", math.Inf(1), DefaultMinNoticeHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := &StaffMember{MinNoticeHours: tt.notice}
			assert.Equal(t, tt.want, member.EffectiveMinNoticeHours())
		})
	}
}

func TestRosterMinNoticeHours(t *testing.T) {
	t.Run("takes the minimum across the roster", func(t *testing.T) {
		staff := []*StaffMember{
			{MinNoticeHours: 24},
			{MinNoticeHours: 6},
			{MinNoticeHours: 48},
		}
		assert.Equal(t, 6.0, RosterMinNoticeHours(staff))
	})

	t.Run("empty roster falls back to default", func(t *testing.T) {
		assert.Equal(t, DefaultMinNoticeHours, RosterMinNoticeHours(nil))
	})

	t.Run("invalid values replaced before comparison", func(t *testing.T) {
		staff := []*StaffMember{
			{MinNoticeHours: math.NaN()},
			{MinNoticeHours: 36},
		}
		// NaN becomes the 12h default, which is below 36.
		assert.Equal(t, DefaultMinNoticeHours, RosterMinNoticeHours(staff))
	})
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "monday", WeekdayName(time.Monday))
	assert.Equal(t, "sunday", WeekdayName(time.Sunday))
}
