package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse errors. Wrapped with the offending value; match with errors.Is.
var (
	ErrInvalidDate  = errors.New("invalid date: want YYYY-MM-DD")
	ErrInvalidMonth = errors.New("invalid month: want YYYY-MM")
	ErrInvalidClock = errors.New("invalid clock time: want HH:MM")
)

// DateKey formats t's local calendar fields as YYYY-MM-DD. The key is built
// from Year/Month/Day directly so it can never shift a day across a UTC
// conversion.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// MonthKey formats t's local calendar fields as YYYY-MM.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// ClockKey formats t's local wall-clock time as HH:MM.
func ClockKey(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ParseDateKey splits a strict YYYY-MM-DD key into its calendar fields.
func ParseDateKey(key string) (year, month, day int, err error) {
	if len(key) != 10 || key[4] != '-' || key[7] != '-' {
		return 0, 0, 0, fmt.Errorf("%q: %w", key, ErrInvalidDate)
	}
	year, err = strconv.Atoi(key[0:4])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%q: %w", key, ErrInvalidDate)
	}
	month, err = strconv.Atoi(key[5:7])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("%q: %w", key, ErrInvalidDate)
	}
	day, err = strconv.Atoi(key[8:10])
	if err != nil || day < 1 || day > DaysInMonth(year, month) {
		return 0, 0, 0, fmt.Errorf("%q: %w", key, ErrInvalidDate)
	}
	return year, month, day, nil
}

// ParseMonthKey splits a strict YYYY-MM key into year and month.
func ParseMonthKey(key string) (year, month int, err error) {
	if len(key) != 7 || key[4] != '-' {
		return 0, 0, fmt.Errorf("%q: %w", key, ErrInvalidMonth)
	}
	year, err = strconv.Atoi(key[0:4])
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", key, ErrInvalidMonth)
	}
	month, err = strconv.Atoi(key[5:7])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%q: %w", key, ErrInvalidMonth)
	}
	return year, month, nil
}

// MonthOf returns the YYYY-MM prefix of a date key.
func MonthOf(dateKey string) string {
	if len(dateKey) < 7 {
		return dateKey
	}
	return dateKey[:7]
}

// DayKey builds a YYYY-MM-DD key from calendar fields.
func DayKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

var sakamoto = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// Weekday computes the weekday of a civil date, Sunday=0 through Saturday=6.
// Pure integer arithmetic (Sakamoto's method); no time.Time or timezone is
// involved.
func Weekday(year, month, day int) int {
	y := year
	if month < 3 {
		y--
	}
	return (y + y/4 - y/100 + y/400 + sakamoto[month-1] + day) % 7
}

// WeekdayOfKey computes the weekday of a YYYY-MM-DD key.
func WeekdayOfKey(dateKey string) (int, error) {
	y, m, d, err := ParseDateKey(dateKey)
	if err != nil {
		return 0, err
	}
	return Weekday(y, m, d), nil
}

// MinutesOfClock converts a strict HH:MM string to minutes since midnight.
func MinutesOfClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%q: %w", clock, ErrInvalidClock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%q: %w", clock, ErrInvalidClock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%q: %w", clock, ErrInvalidClock)
	}
	return h*60 + m, nil
}
