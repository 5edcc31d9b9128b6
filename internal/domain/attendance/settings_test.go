package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSanitizedClampsNegatives(t *testing.T) {
	s := Settings{
		PaidAbsentDays:    -3,
		AbsentDeduction:   decimal.NewFromInt(-500),
		OfficialDaysOff:   []int{0},
		LateReliefMinutes: -1,
		LateDeduction:     decimal.NewFromInt(-100),
		EarlyOutDeduction: decimal.NewFromInt(-50),
		ClockInTime:       "09:00",
		ClockOutTime:      "17:00",
	}.Sanitized()

	assert.Equal(t, 0, s.PaidAbsentDays)
	assert.Equal(t, 0, s.LateReliefMinutes)
	assert.True(t, s.AbsentDeduction.IsZero())
	assert.True(t, s.LateDeduction.IsZero())
	assert.True(t, s.EarlyOutDeduction.IsZero())
}

func TestSanitizedOfficialDaysOff(t *testing.T) {
	s := Settings{
		OfficialDaysOff: []int{6, 0, 6, -1, 7, 3, 0},
		ClockInTime:     "09:00",
		ClockOutTime:    "17:00",
	}.Sanitized()

	assert.Equal(t, []int{0, 3, 6}, s.OfficialDaysOff)
}

func TestSanitizedClockTimeFallback(t *testing.T) {
	def := DefaultSettings()

	tests := []struct {
		name    string
		in, out string
	}{
		{"valid kept", "08:30", "08:30"},
		{"empty falls back", "", def.ClockInTime},
		{"garbage falls back", "9am", def.ClockInTime},
		{"out of range falls back", "24:00", def.ClockInTime},
		{"missing zero pad falls back", "9:00", def.ClockInTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{ClockInTime: tt.in, ClockOutTime: "17:00"}.Sanitized()
			assert.Equal(t, tt.out, s.ClockInTime)
		})
	}
}

func TestSanitizedIdempotent(t *testing.T) {
	s := Settings{
		PaidAbsentDays:    -2,
		OfficialDaysOff:   []int{5, 5, 9},
		ClockInTime:       "bogus",
		ClockOutTime:      "17:30",
		AbsentDeduction:   decimal.NewFromInt(250),
		LateDeduction:     decimal.NewFromInt(100),
		EarlyOutDeduction: decimal.Zero,
	}

	once := s.Sanitized()
	twice := once.Sanitized()

	assert.Equal(t, once.PaidAbsentDays, twice.PaidAbsentDays)
	assert.Equal(t, once.OfficialDaysOff, twice.OfficialDaysOff)
	assert.Equal(t, once.ClockInTime, twice.ClockInTime)
	assert.Equal(t, once.ClockOutTime, twice.ClockOutTime)
	assert.True(t, once.AbsentDeduction.Equal(twice.AbsentDeduction))
	assert.True(t, once.LateDeduction.Equal(twice.LateDeduction))
}

func TestIsOfficialOff(t *testing.T) {
	s := Settings{OfficialDaysOff: []int{0, 6}}

	assert.True(t, s.IsOfficialOff(0))
	assert.True(t, s.IsOfficialOff(6))
	assert.False(t, s.IsOfficialOff(3))
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
		ok   bool
	}{
		{"present", StatusPresent, true},
		{"ABSENT", StatusAbsent, true},
		{" Leave ", StatusLeave, true},
		{"official_off", StatusOfficialOff, true},
		{"late", StatusLate, true},
		{"vacation", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseStatus(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
	}
}
