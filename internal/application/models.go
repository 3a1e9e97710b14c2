package application

import "github.com/ilo80/esiee-plus-bot/internal/timetable"

// SearchParams carries the raw options of a free-room search. Empty strings
// take their defaults from the injected clock: today's date, the current time
// and a one hour window. Epis -1 means no wing filter.
type SearchParams struct {
	Date  string
	Start string
	End   string
	Epis  int
}

// EpisGroup lists the free rooms of one wing, identified by the leading digit
// of the room codes.
type EpisGroup struct {
	Epis  int
	Rooms []string
}

// SearchResult is the validated, grouped outcome of a free-room search. An
// empty Groups slice is a valid "nothing available" answer, not an error.
type SearchResult struct {
	Date   timetable.Date
	Window timetable.Window
	Groups []EpisGroup
}

// StatusParams carries the raw room code of a status query.
type StatusParams struct {
	Room string
}

// RoomStatusResult describes one room's current situation up to the daily
// cutoff. Exactly one of FreeFor and OccupiedFor is nonzero while the cutoff
// has not passed.
type RoomStatusResult struct {
	Name        string
	Available   bool
	Locked      bool
	Board       string
	Equipment   []string
	Capacity    int
	Tier        timetable.CapacityTier
	FreeFor     timetable.Duration
	OccupiedFor timetable.Duration
}
