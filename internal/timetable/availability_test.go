package timetable

import "testing"

func at(hours, minutes int) TimeOfDay {
	return TimeOfDay{Hours: hours, Minutes: minutes}
}

func window(startHours, startMinutes, endHours, endMinutes int) Window {
	return Window{Start: at(startHours, startMinutes), End: at(endHours, endMinutes)}
}

func TestWindowOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Window
		want bool
	}{
		{"disjoint", window(9, 0, 10, 0), window(11, 0, 12, 0), false},
		{"touching windows never overlap", window(9, 0, 10, 0), window(10, 0, 11, 0), false},
		{"partial overlap", window(9, 0, 10, 0), window(9, 30, 10, 30), true},
		{"containment", window(9, 0, 12, 0), window(10, 0, 11, 0), true},
		{"identical", window(9, 0, 10, 0), window(9, 0, 10, 0), true},
		{"single shared minute", window(9, 0, 9, 1), window(9, 0, 10, 0), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Fatalf("Overlaps is not symmetric: reversed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	events := []Event{
		{Start: at(8, 0), End: at(9, 0)},
		{Start: at(9, 30), End: at(9, 45)},
	}

	cases := []struct {
		name   string
		window Window
		want   bool
	}{
		{"free gap between events", window(9, 0, 9, 30), true},
		{"overlapping an event", window(9, 15, 9, 40), false},
		{"covering an event", window(9, 0, 10, 0), false},
		{"after the last event", window(9, 45, 11, 0), true},
		{"no events at all", window(7, 0, 8, 0), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			roomEvents := events
			if tc.name == "no events at all" {
				roomEvents = nil
			}
			if got := IsAvailable(roomEvents, tc.window); got != tc.want {
				t.Fatalf("IsAvailable = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFreeDuration(t *testing.T) {
	cases := []struct {
		name   string
		events []Event
		window Window
		want   Duration
	}{
		{
			name:   "entire window free",
			events: nil,
			window: window(9, 0, 10, 0),
			want:   Duration{Hours: 1, Minutes: 0},
		},
		{
			name:   "stops at the first occupied minute",
			events: []Event{{Start: at(9, 30), End: at(9, 45)}},
			window: window(9, 0, 10, 0),
			want:   Duration{Hours: 0, Minutes: 30},
		},
		{
			name:   "occupied from the start",
			events: []Event{{Start: at(9, 0), End: at(9, 30)}},
			window: window(9, 0, 10, 0),
			want:   Duration{},
		},
		{
			name:   "only the leading run counts",
			events: []Event{{Start: at(9, 10), End: at(9, 20)}},
			window: window(9, 0, 11, 0),
			want:   Duration{Hours: 0, Minutes: 10},
		},
		{
			name:   "ten minutes before the daily cutoff",
			events: nil,
			window: window(21, 50, 22, 0),
			want:   Duration{Hours: 0, Minutes: 10},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FreeDuration(tc.events, tc.window); got != tc.want {
				t.Fatalf("FreeDuration = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOccupiedDuration(t *testing.T) {
	cases := []struct {
		name   string
		events []Event
		window Window
		want   Duration
	}{
		{
			name:   "free window reports zero",
			events: nil,
			window: window(9, 0, 10, 0),
			want:   Duration{},
		},
		{
			name:   "counts until the event ends",
			events: []Event{{Start: at(9, 0), End: at(9, 45)}},
			window: window(9, 0, 12, 0),
			want:   Duration{Hours: 0, Minutes: 45},
		},
		{
			name:   "back to back events form one run",
			events: []Event{
				{Start: at(9, 0), End: at(10, 0)},
				{Start: at(10, 0), End: at(10, 30)},
			},
			window: window(9, 0, 12, 0),
			want:   Duration{Hours: 1, Minutes: 30},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OccupiedDuration(tc.events, tc.window); got != tc.want {
				t.Fatalf("OccupiedDuration = %v, want %v", got, tc.want)
			}
		})
	}
}

// The window start is either free or occupied, never both, so at most one of
// the two leading runs is nonzero for the same start and event set.
func TestLeadingRunsAreMutuallyExclusive(t *testing.T) {
	eventSets := [][]Event{
		nil,
		{{Start: at(9, 0), End: at(9, 30)}},
		{{Start: at(9, 30), End: at(9, 45)}},
		{{Start: at(8, 0), End: at(12, 0)}},
		{{Start: at(9, 0), End: at(9, 1)}, {Start: at(9, 1), End: at(9, 2)}},
	}
	probe := window(9, 0, 10, 0)

	for _, events := range eventSets {
		free := FreeDuration(events, probe)
		occupied := OccupiedDuration(events, probe)

		if !free.IsZero() && !occupied.IsZero() {
			t.Fatalf("both runs nonzero for events %v: free %v, occupied %v", events, free, occupied)
		}
		if free.IsZero() && occupied.IsZero() {
			t.Fatalf("neither run nonzero for events %v", events)
		}
	}
}
