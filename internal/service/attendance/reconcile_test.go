package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresuite/labops-backend-go/internal/domain/attendance"
	"github.com/caresuite/labops-backend-go/internal/domain/leave"
)

// 2026-03-01 and 2026-03-08 are Sundays.
var reconcileSettings = attendance.Settings{
	PaidAbsentDays:  2,
	OfficialDaysOff: []int{0},
	ClockInTime:     "09:00",
	ClockOutTime:    "17:00",
}

func pastToday() time.Time {
	return time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
}

func TestReconcileFullMonthCompleteness(t *testing.T) {
	days, err := Reconcile(nil, nil, reconcileSettings, "2026-03", pastToday())
	require.NoError(t, err)
	require.Len(t, days, 31)

	counts := map[attendance.Status]int{}
	for _, d := range days {
		counts[d.Status]++
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 31, total)
	// March 2026 has five Sundays.
	assert.Equal(t, 5, counts[attendance.StatusOfficialOff])
	assert.Equal(t, 26, counts[attendance.StatusAbsent])
}

func TestReconcileStoredRowsWin(t *testing.T) {
	attRows := []attendance.Record{
		{StaffID: "s1", Date: "2026-03-02", Status: attendance.StatusPresent, CheckIn: "08:55", CheckOut: "17:02"},
		{StaffID: "s1", Date: "2026-03-03", Status: attendance.StatusLate, CheckIn: "09:40"},
	}

	days, err := Reconcile(attRows, nil, reconcileSettings, "2026-03", pastToday())
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, days[1].Status)
	assert.Equal(t, "08:55", days[1].CheckIn)
	assert.Equal(t, "17:02", days[1].CheckOut)
	assert.Equal(t, attendance.StatusLate, days[2].Status)
	assert.Equal(t, "09:40", days[2].CheckIn)
}

func TestReconcileLeaveWinsOverAbsent(t *testing.T) {
	leaveRows := []leave.Record{
		{StaffID: "s1", Date: "2026-03-05", Days: 1, Type: "annual"},
	}

	days, err := Reconcile(nil, leaveRows, reconcileSettings, "2026-03", pastToday())
	require.NoError(t, err)

	assert.Equal(t, "2026-03-05", days[4].Date)
	assert.Equal(t, attendance.StatusLeave, days[4].Status)
	// Neighboring weekdays with no rows stay absent.
	assert.Equal(t, attendance.StatusAbsent, days[3].Status)
	assert.Equal(t, attendance.StatusAbsent, days[5].Status)
}

func TestReconcileLeaveOutsideMonthIgnored(t *testing.T) {
	leaveRows := []leave.Record{
		{StaffID: "s1", Date: "2026-02-05", Days: 1, Type: "annual"},
	}

	days, err := Reconcile(nil, leaveRows, reconcileSettings, "2026-03", pastToday())
	require.NoError(t, err)

	for _, d := range days {
		assert.NotEqual(t, attendance.StatusLeave, d.Status)
	}
}

func TestReconcileNormalizesAbsentOnOfficialOff(t *testing.T) {
	// Stale row: absent recorded on a Sunday.
	attRows := []attendance.Record{
		{StaffID: "s1", Date: "2026-03-08", Status: attendance.StatusAbsent},
	}

	days, err := Reconcile(attRows, nil, reconcileSettings, "2026-03", pastToday())
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusOfficialOff, days[7].Status)
}

func TestReconcileCapsAtTodayForCurrentMonth(t *testing.T) {
	today := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

	days, err := Reconcile(nil, nil, reconcileSettings, "2026-03", today)
	require.NoError(t, err)

	require.Len(t, days, 10)
	assert.Equal(t, "2026-03-01", days[0].Date)
	assert.Equal(t, "2026-03-10", days[9].Date)
}

func TestReconcileOrderedAscending(t *testing.T) {
	attRows := []attendance.Record{
		{StaffID: "s1", Date: "2026-03-20", Status: attendance.StatusPresent},
		{StaffID: "s1", Date: "2026-03-02", Status: attendance.StatusPresent},
	}

	days, err := Reconcile(attRows, nil, reconcileSettings, "2026-03", pastToday())
	require.NoError(t, err)

	for i := 1; i < len(days); i++ {
		assert.Less(t, days[i-1].Date, days[i].Date)
	}
}

func TestReconcileRejectsBadMonth(t *testing.T) {
	_, err := Reconcile(nil, nil, reconcileSettings, "2026-13", pastToday())
	assert.Error(t, err)

	_, err = Reconcile(nil, nil, reconcileSettings, "March 2026", pastToday())
	assert.Error(t, err)
}
