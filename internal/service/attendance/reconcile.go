package attendance

import (
	"time"

	"github.com/caresuite/labops-backend-go/internal/domain/attendance"
	"github.com/caresuite/labops-backend-go/internal/domain/leave"
	"github.com/caresuite/labops-backend-go/internal/pkg/calendar"
)

// Reconcile turns sparse attendance and leave rows into a complete day-by-day
// calendar for one month. It is a pure function shared by the monthly report
// and the payroll calculator.
//
// Stored rows win over everything, with one defensive correction: an absent
// row on an official off weekday is reported as official_off without touching
// storage. For days with no row, leave beats official_off beats absent. Days
// after today are not reconciled when month is the current month.
func Reconcile(attRows []attendance.Record, leaveRows []leave.Record, cfg attendance.Settings, month string, today time.Time) ([]attendance.DayEntry, error) {
	year, mon, err := calendar.ParseMonthKey(month)
	if err != nil {
		return nil, err
	}

	lastDay := calendar.DaysInMonth(year, mon)
	if month == calendar.MonthKey(today) && today.Day() < lastDay {
		lastDay = today.Day()
	}

	byDate := make(map[string]attendance.Record, len(attRows))
	for _, row := range attRows {
		byDate[row.Date] = row
	}

	leaveDays := make(map[string]bool, len(leaveRows))
	for _, row := range leaveRows {
		if calendar.MonthOf(row.Date) == month {
			leaveDays[row.Date] = true
		}
	}

	days := make([]attendance.DayEntry, 0, lastDay)
	for d := 1; d <= lastDay; d++ {
		dateKey := calendar.DayKey(year, mon, d)
		isOfficialOff := cfg.IsOfficialOff(calendar.Weekday(year, mon, d))

		if row, ok := byDate[dateKey]; ok {
			status := row.Status
			if status == attendance.StatusAbsent && isOfficialOff {
				status = attendance.StatusOfficialOff
			}
			days = append(days, attendance.DayEntry{
				Date:     dateKey,
				Status:   status,
				CheckIn:  row.CheckIn,
				CheckOut: row.CheckOut,
			})
			continue
		}

		status := attendance.StatusAbsent
		switch {
		case leaveDays[dateKey]:
			status = attendance.StatusLeave
		case isOfficialOff:
			status = attendance.StatusOfficialOff
		}
		days = append(days, attendance.DayEntry{
			Date:   dateKey,
			Status: status,
		})
	}

	return days, nil
}
