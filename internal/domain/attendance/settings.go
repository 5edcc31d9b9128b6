package attendance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/caresuite/labops-backend-go/internal/pkg/validator"
)

// Settings is the single process-wide attendance configuration record.
// Every computation takes it as an explicit parameter; there is no hidden
// global.
type Settings struct {
	PaidAbsentDays    int
	AbsentDeduction   decimal.Decimal
	OfficialDaysOff   []int // weekday indices, Sunday=0..Saturday=6
	LateReliefMinutes int
	LateDeduction     decimal.Decimal
	EarlyOutDeduction decimal.Decimal
	ClockInTime       string // HH:MM
	ClockOutTime      string // HH:MM
}

// DefaultSettings is returned when nothing has been stored yet.
func DefaultSettings() Settings {
	return Settings{
		PaidAbsentDays:    2,
		AbsentDeduction:   decimal.Zero,
		OfficialDaysOff:   []int{0},
		LateReliefMinutes: 15,
		LateDeduction:     decimal.Zero,
		EarlyOutDeduction: decimal.Zero,
		ClockInTime:       "09:00",
		ClockOutTime:      "17:00",
	}
}

// Sanitized clamps every numeric field to >= 0, de-duplicates and filters
// OfficialDaysOff to [0,6], and falls back to the default clock times when a
// stored value is not a strict HH:MM. Sanitization never fails; garbage is
// clamped, not rejected.
func (s Settings) Sanitized() Settings {
	def := DefaultSettings()
	out := Settings{
		PaidAbsentDays:    maxInt(0, s.PaidAbsentDays),
		AbsentDeduction:   clampDecimal(s.AbsentDeduction),
		LateReliefMinutes: maxInt(0, s.LateReliefMinutes),
		LateDeduction:     clampDecimal(s.LateDeduction),
		EarlyOutDeduction: clampDecimal(s.EarlyOutDeduction),
		ClockInTime:       s.ClockInTime,
		ClockOutTime:      s.ClockOutTime,
	}

	seen := make(map[int]bool)
	out.OfficialDaysOff = make([]int, 0, len(s.OfficialDaysOff))
	for _, d := range s.OfficialDaysOff {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out.OfficialDaysOff = append(out.OfficialDaysOff, d)
	}
	sort.Ints(out.OfficialDaysOff)

	if !validator.IsValidClockTime(out.ClockInTime) {
		out.ClockInTime = def.ClockInTime
	}
	if !validator.IsValidClockTime(out.ClockOutTime) {
		out.ClockOutTime = def.ClockOutTime
	}

	return out
}

// IsOfficialOff reports whether the given weekday (Sunday=0) is configured as
// a non-working day.
func (s Settings) IsOfficialOff(weekday int) bool {
	for _, d := range s.OfficialDaysOff {
		if d == weekday {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampDecimal(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
