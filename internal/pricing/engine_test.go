package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
)

// 2026-09-07 is a Monday, 2026-09-05 is a Saturday.
var (
	weekday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	weekend = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
)

func homeJob(rooms []domain.RoomEntry) *domain.JobDescription {
	return &domain.JobDescription{
		ServiceType: domain.ServiceHomeClean,
		Rooms:       rooms,
		Footfall:    domain.FootfallAverage,
		Supplies:    domain.SuppliesCustomer,
		Date:        weekday,
	}
}

func TestRoundUpToHalf(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  float64
	}{
		{"zero", 0, 0},
		{"negative", -1.5, 0},
		{"exact half", 1.5, 1.5},
		{"exact hour", 3.0, 3.0},
		{"rounds up", 1.2, 1.5},
		{"just over", 2.01, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundUpToHalf(tt.hours)
			assert.Equal(t, tt.want, got)

			// Repeated application must not change the result.
			assert.Equal(t, got, RoundUpToHalf(got))
		})
	}
}

func TestEstimate_MinHoursFloor(t *testing.T) {
	// A single medium bedroom is 0.8 raw hours, well under the floor.
	job := homeJob([]domain.RoomEntry{{RoomType: "bedroom", SizeClass: domain.SizeM}})

	q := Estimate(job, HomeConfig())

	assert.Equal(t, 2.0, q.BaseEstimatedHours)
	assert.Equal(t, 2.0, q.EstimatedHours)
	assert.False(t, q.TeamApplied)
	assert.Equal(t, 24.0, q.HourlyRate)
	assert.Equal(t, 48.0, q.LabourCharge)
	assert.Equal(t, 48.0, q.TotalPrice)
}

func TestEstimate_EmptyJobStillChargesMinimum(t *testing.T) {
	job := homeJob(nil)
	job.Supplies = domain.SuppliesProvider

	q := Estimate(job, HomeConfig())

	assert.Equal(t, 2.0, q.EstimatedHours)
	assert.Equal(t, 48.0, q.LabourCharge)
	assert.Equal(t, 12.0, q.SuppliesFee)
	assert.Equal(t, 60.0, q.TotalPrice)
}

func TestEstimate_UnknownRoomAndSizeContributeZero(t *testing.T) {
	job := homeJob([]domain.RoomEntry{
		{RoomType: "garage", SizeClass: domain.SizeL},
		{RoomType: "bedroom", SizeClass: "huge"},
	})

	q := Estimate(job, HomeConfig())

	// Both rows contribute nothing, so the floor applies.
	assert.Equal(t, 2.0, q.BaseEstimatedHours)
}

func TestEstimate_AddOns(t *testing.T) {
	job := homeJob([]domain.RoomEntry{{RoomType: "bedroom", SizeClass: domain.SizeM}})
	job.AddOns = map[string]int{"fridge": 1, "dishwasher": 2, "ignored": 3}

	q := Estimate(job, HomeConfig())

	// 0.8 + 0.5 + 2*0.25 = 1.8 -> rounds to 2.0, at the floor anyway.
	assert.Equal(t, 2.0, q.EstimatedHours)
	// 15 + 2*10; the unknown add-on key is priced at zero.
	assert.Equal(t, 35.0, q.AddOnsTotal)
	assert.Equal(t, 83.0, q.TotalPrice)
}

func TestEstimate_FootfallMultiplier(t *testing.T) {
	rooms := []domain.RoomEntry{
		{RoomType: "bedroom", SizeClass: domain.SizeL},
		{RoomType: "bedroom", SizeClass: domain.SizeL},
		{RoomType: "bedroom", SizeClass: domain.SizeL},
	}

	tests := []struct {
		footfall domain.FootfallLevel
		wantBase float64
	}{
		{domain.FootfallLight, 3.0},     // 3.0 * 0.9 = 2.7 -> 3.0
		{domain.FootfallAverage, 3.0},   // 3.0
		{domain.FootfallHeavy, 4.0},     // 3.75 -> 4.0
		{domain.FootfallVeryHeavy, 5.0}, // 4.8 -> 5.0
	}

	for _, tt := range tests {
		t.Run(string(tt.footfall), func(t *testing.T) {
			job := homeJob(rooms)
			job.Footfall = tt.footfall

			q := Estimate(job, HomeConfig())
			assert.Equal(t, tt.wantBase, q.BaseEstimatedHours)
		})
	}
}

func TestEstimate_TeamRule(t *testing.T) {
	// Five large bedrooms: 5.0 base hours, over the 4h threshold.
	rooms := make([]domain.RoomEntry, 5)
	for i := range rooms {
		rooms[i] = domain.RoomEntry{RoomType: "bedroom", SizeClass: domain.SizeL}
	}
	job := homeJob(rooms)

	q := Estimate(job, HomeConfig())

	assert.True(t, q.TeamApplied)
	assert.Equal(t, 5.0, q.BaseEstimatedHours)
	// 5.0 / 1.7 = 2.94 -> 3.0 per cleaner.
	assert.Equal(t, 3.0, q.EstimatedHours)
	assert.Less(t, q.EstimatedHours, q.BaseEstimatedHours)
	assert.Equal(t, 72.0, q.LabourCharge)
}

func TestEstimate_OfficeCubicleSurcharge(t *testing.T) {
	job := &domain.JobDescription{
		ServiceType: domain.ServiceOfficeClean,
		Rooms: []domain.RoomEntry{
			{RoomType: "office", SizeClass: domain.SizeM},
			{RoomType: "office", SizeClass: domain.SizeM},
			{RoomType: "bathroom", SizeClass: domain.SizeM},
		},
		Footfall: domain.FootfallAverage,
		Supplies: domain.SuppliesProvider,
		Date:     weekend,
	}

	q := Estimate(job, OfficeConfig())

	// 2*0.8 + (0.8 + 0.5 cubicle surcharge) = 2.9 -> 3.0.
	assert.Equal(t, 3.0, q.EstimatedHours)
	// Office is the only variant with a distinct weekend rate.
	assert.Equal(t, 26.0, q.HourlyRate)
	assert.Equal(t, 78.0, q.LabourCharge)
	assert.Equal(t, 15.0, q.SuppliesFee)
	assert.Equal(t, 93.0, q.TotalPrice)
}

func TestEstimate_OfficeLegacyThreshold(t *testing.T) {
	// Five large offices: 5.0 base hours.
	rooms := make([]domain.RoomEntry, 5)
	for i := range rooms {
		rooms[i] = domain.RoomEntry{RoomType: "office", SizeClass: domain.SizeL}
	}
	job := &domain.JobDescription{
		ServiceType: domain.ServiceOfficeClean,
		Rooms:       rooms,
		Footfall:    domain.FootfallAverage,
		Supplies:    domain.SuppliesCustomer,
		Date:        weekday,
	}

	v2 := Estimate(job, OfficeConfig())
	legacy := Estimate(job, OfficeLegacyConfig())

	// v2 splits at 4h, legacy only at 6h.
	assert.True(t, v2.TeamApplied)
	assert.Equal(t, 3.0, v2.EstimatedHours)
	assert.False(t, legacy.TeamApplied)
	assert.Equal(t, 5.0, legacy.EstimatedHours)
}

func TestEstimate_PromoBypassesFormula(t *testing.T) {
	job := &domain.JobDescription{
		ServiceType: domain.ServiceFreeRoom,
		Rooms: []domain.RoomEntry{
			{RoomType: "bedroom", SizeClass: domain.SizeXL},
			{RoomType: "kitchen", SizeClass: domain.SizeXL},
		},
		AddOns:   map[string]int{"fridge": 3},
		Footfall: domain.FootfallVeryHeavy,
		Supplies: domain.SuppliesProvider,
		Date:     weekend,
	}

	q := Estimate(job, PromoConfig())

	assert.Equal(t, 1.0, q.EstimatedHours)
	assert.False(t, q.TeamApplied)
	assert.Equal(t, 0.0, q.HourlyRate)
	assert.Equal(t, 0.0, q.LabourCharge)
	assert.Equal(t, 0.0, q.AddOnsTotal)
	assert.Equal(t, 0.0, q.SuppliesFee)
	assert.Equal(t, 10.0, q.TotalPrice)
}

func TestStaffPay(t *testing.T) {
	cfg := HomeConfig()

	solo := Quote{EstimatedHours: 2.0, TeamApplied: false}
	assert.Equal(t, 27.0, StaffPay(solo, cfg, false))
	assert.Equal(t, 30.0, StaffPay(solo, cfg, true))

	team := Quote{EstimatedHours: 3.0, TeamApplied: true}
	assert.Equal(t, 81.0, StaffPay(team, cfg, false))
}

func TestConfigFor(t *testing.T) {
	cfg, err := ConfigFor(domain.ServiceHomeClean, false)
	require.NoError(t, err)
	assert.Equal(t, "HC", cfg.OrderPrefix)

	cfg, err = ConfigFor(domain.ServiceOfficeClean, false)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.TeamThresholdHours)

	cfg, err = ConfigFor(domain.ServiceOfficeClean, true)
	require.NoError(t, err)
	assert.Equal(t, 6.0, cfg.TeamThresholdHours)

	cfg, err = ConfigFor(domain.ServiceFreeRoom, false)
	require.NoError(t, err)
	assert.True(t, cfg.PromoFlat)

	_, err = ConfigFor("window_clean", false)
	assert.ErrorIs(t, err, ErrUnknownServiceType)
}
