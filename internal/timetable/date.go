package timetable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date string cannot be parsed as DD/MM/YYYY.
var ErrInvalidDate = errors.New("timetable: invalid date")

// Date is a calendar date. The timetable provider speaks MM/DD/YYYY while
// users type DD/MM/YYYY; both renderings hang off this one value.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate parses "DD/MM/YYYY" into a Date. Calendar-impossible dates such
// as 31/02/2025 are rejected.
func ParseDate(text string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q is not DD/MM/YYYY", ErrInvalidDate, text)
	}

	day, dayErr := strconv.Atoi(parts[0])
	month, monthErr := strconv.Atoi(parts[1])
	year, yearErr := strconv.Atoi(parts[2])
	if dayErr != nil || monthErr != nil || yearErr != nil {
		return Date{}, fmt.Errorf("%w: %q has non-numeric fields", ErrInvalidDate, text)
	}
	if len(parts[2]) != 4 {
		return Date{}, fmt.Errorf("%w: year in %q must have four digits", ErrInvalidDate, text)
	}

	// time.Date normalizes out-of-range components (31/02 becomes 02/03 or
	// 03/03), so a round-trip comparison catches impossible dates.
	candidate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if candidate.Year() != year || candidate.Month() != time.Month(month) || candidate.Day() != day {
		return Date{}, fmt.Errorf("%w: %q does not exist on the calendar", ErrInvalidDate, text)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// DateOf truncates a wall-clock instant to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// String formats the date as "DD/MM/YYYY".
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// ADEFormat formats the date as "MM/DD/YYYY", the shape the ADE API expects.
func (d Date) ADEFormat() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Month, d.Day, d.Year)
}
