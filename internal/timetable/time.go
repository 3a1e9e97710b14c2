package timetable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is returned when a time string cannot be parsed as HH:MM.
var ErrInvalidTime = errors.New("timetable: invalid time")

// TimeOfDay is a clock time within a single day at minute granularity.
// The zero value is midnight.
type TimeOfDay struct {
	Hours   int
	Minutes int
}

// ParseTimeOfDay parses "HH:MM" (a single-digit hour is accepted) into a
// TimeOfDay. Hours must be within 0..23 and minutes within 0..59.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidTime, text)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q has a non-numeric hour", ErrInvalidTime, text)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q has non-numeric minutes", ErrInvalidTime, text)
	}

	if hours < 0 || hours > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidTime, hours)
	}
	if minutes < 0 || minutes > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d out of range", ErrInvalidTime, minutes)
	}

	return TimeOfDay{Hours: hours, Minutes: minutes}, nil
}

// TimeOfDayOf truncates a wall-clock instant to its hour and minute fields.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hours: t.Hour(), Minutes: t.Minute()}
}

// String formats the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}

// MinuteOfDay returns the number of minutes elapsed since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hours*60 + t.Minutes
}

// Compare orders two times by minute of day, returning -1, 0 or 1.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	a, b := t.MinuteOfDay(), other.MinuteOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Compare(other) < 0
}

// AddMinutes returns the time n minutes later. Minute overflow rolls into the
// hour field and the hour field wraps modulo 24. Every computation in this
// module stays within a single day, so a wrap past midnight carries no
// meaning beyond keeping the value normalized.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	const minutesPerDay = 24 * 60
	total := (t.MinuteOfDay() + n) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return TimeOfDay{Hours: total / 60, Minutes: total % 60}
}

// Duration is an hour/minute pair reported by the leading-run scans.
type Duration struct {
	Hours   int
	Minutes int
}

func durationFromMinutes(minutes int) Duration {
	if minutes < 0 {
		minutes = 0
	}
	return Duration{Hours: minutes / 60, Minutes: minutes % 60}
}

// IsZero reports whether the duration spans no time at all.
func (d Duration) IsZero() bool {
	return d.Hours == 0 && d.Minutes == 0
}

// String formats the duration as "1h05", the shape shown to users.
func (d Duration) String() string {
	return fmt.Sprintf("%dh%02d", d.Hours, d.Minutes)
}
