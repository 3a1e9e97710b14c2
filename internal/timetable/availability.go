package timetable

// Event is a booked slot on a room's day schedule. Events come from the
// timetable provider and are only ever read.
type Event struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Window is a half-open [Start, End) query interval within one day. Callers
// validate Start < End before handing a window to the engine.
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Overlaps reports whether two half-open windows share at least one minute.
// Touching windows (one ends exactly when the other starts) do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// IsAvailable reports whether no event occupies any part of the window.
// It stops at the first overlapping event; event order does not matter.
func IsAvailable(events []Event, window Window) bool {
	for _, event := range events {
		if window.Overlaps(Window{Start: event.Start, End: event.End}) {
			return false
		}
	}
	return true
}

// FreeDuration measures the leading run of free minutes from window.Start:
// how long until something happens, not how much free time the window holds.
// The scan stops at the first occupied minute or at window.End.
func FreeDuration(events []Event, window Window) Duration {
	return leadingRun(events, window, true)
}

// OccupiedDuration measures the leading run of occupied minutes from
// window.Start, answering "occupied now, free again in how long".
func OccupiedDuration(events []Event, window Window) Duration {
	return leadingRun(events, window, false)
}

func leadingRun(events []Event, window Window, wantFree bool) Duration {
	minutes := 0
	cursor := window.Start

	for cursor.Before(window.End) {
		next := cursor.AddMinutes(1)
		if window.End.Before(next) {
			break
		}
		if IsAvailable(events, Window{Start: cursor, End: next}) != wantFree {
			break
		}
		minutes++
		cursor = next
	}

	return durationFromMinutes(minutes)
}
