package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"
)

var (
	classroomCounter uint64
	eventCounter     uint64
)

// referenceTime falls on a teaching day well inside the accepted year band.
var referenceTime = time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline instant used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ClassroomFixture is a deterministic catalog resource that can be loaded
// into the fake timetable provider.
type ClassroomFixture struct {
	ID       int
	Name     string
	Path     string
	Category string
	Size     int
	Info     string
}

// ClassroomOption configures the generated classroom fixture.
type ClassroomOption func(*ClassroomFixture)

// NewClassroomFixture returns a deterministic classroom with optional overrides.
// Generated names walk through the first wing: 0101, 0102, ...
func NewClassroomFixture(opts ...ClassroomOption) ClassroomFixture {
	idx := atomic.AddUint64(&classroomCounter, 1)
	fixture := ClassroomFixture{
		ID:       int(1000 + idx),
		Name:     fmt.Sprintf("01%02d", idx),
		Path:     "ESIEE.Salles.Epis0",
		Category: "classroom",
		Size:     24,
		Info:     "tableau blanc, vidéoprojecteur",
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithName overrides the generated room code.
func WithName(name string) ClassroomOption {
	return func(fixture *ClassroomFixture) {
		fixture.Name = name
	}
}

// WithPath overrides the category hierarchy path.
func WithPath(path string) ClassroomOption {
	return func(fixture *ClassroomFixture) {
		fixture.Path = path
	}
}

// WithCapacity overrides the seat count.
func WithCapacity(size int) ClassroomOption {
	return func(fixture *ClassroomFixture) {
		fixture.Size = size
	}
}

// WithInfo overrides the free-text equipment notes.
func WithInfo(info string) ClassroomOption {
	return func(fixture *ClassroomFixture) {
		fixture.Info = info
	}
}

// EventFixture is a deterministic booked slot tied to a classroom fixture.
type EventFixture struct {
	ID        int
	Date      string
	StartHour string
	EndHour   string
	RoomIDs   []int
}

// NewEventFixture returns an event occupying the given rooms over start..end
// on the reference date.
func NewEventFixture(startHour, endHour string, roomIDs ...int) EventFixture {
	idx := atomic.AddUint64(&eventCounter, 1)
	return EventFixture{
		ID:        int(idx),
		Date:      referenceTime.Format("01/02/2006"),
		StartHour: startHour,
		EndHour:   endHour,
		RoomIDs:   roomIDs,
	}
}
