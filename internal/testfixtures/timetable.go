package testfixtures

import (
	"context"
	"sync"

	"github.com/ilo80/esiee-plus-bot/internal/ade"
	"github.com/ilo80/esiee-plus-bot/internal/application"
)

// FakeTimetable is an in-memory stand-in for the ADE provider. It satisfies
// the application's opener and session interfaces, serves fixture data and
// records every call so tests can assert on the conversation.
type FakeTimetable struct {
	mu sync.Mutex

	classrooms []ClassroomFixture
	events     []EventFixture

	OpenErr      error
	ResourcesErr error
	EventsErr    error

	OpenCount     int
	CloseCount    int
	ResourceCalls []ade.ResourceOptions
	EventCalls    []ade.EventOptions
}

// NewFakeTimetable builds a fake provider preloaded with fixtures.
func NewFakeTimetable(classrooms []ClassroomFixture, events []EventFixture) *FakeTimetable {
	return &FakeTimetable{classrooms: classrooms, events: events}
}

// Open counts the session handshake and hands the fake back as its own session.
func (f *FakeTimetable) Open(ctx context.Context) (application.TimetableSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.OpenCount++
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	return f, nil
}

// Resources serves the fixture catalog, honouring the ID narrowing used for
// detail-11 lookups.
func (f *FakeTimetable) Resources(ctx context.Context, opts ade.ResourceOptions) ([]ade.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ResourceCalls = append(f.ResourceCalls, opts)
	if f.ResourcesErr != nil {
		return nil, f.ResourcesErr
	}

	resources := make([]ade.Resource, 0, len(f.classrooms))
	for _, fixture := range f.classrooms {
		if opts.ID != nil && fixture.ID != *opts.ID {
			continue
		}
		resources = append(resources, ade.Resource{
			ID:       fixture.ID,
			Name:     fixture.Name,
			Path:     fixture.Path,
			Category: fixture.Category,
			Size:     fixture.Size,
			Info:     fixture.Info,
		})
	}
	return resources, nil
}

// Events serves the fixture events, honouring the single-resource narrowing.
func (f *FakeTimetable) Events(ctx context.Context, opts ade.EventOptions) ([]ade.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.EventCalls = append(f.EventCalls, opts)
	if f.EventsErr != nil {
		return nil, f.EventsErr
	}

	events := make([]ade.Event, 0, len(f.events))
	for _, fixture := range f.events {
		if opts.Resources != nil && !containsInt(fixture.RoomIDs, *opts.Resources) {
			continue
		}
		resources := make([]ade.EventResource, 0, len(fixture.RoomIDs))
		for _, roomID := range fixture.RoomIDs {
			resources = append(resources, ade.EventResource{ID: roomID})
		}
		events = append(events, ade.Event{
			ID:        fixture.ID,
			Date:      fixture.Date,
			StartHour: fixture.StartHour,
			EndHour:   fixture.EndHour,
			Resources: resources,
		})
	}
	return events, nil
}

// Close counts session teardowns.
func (f *FakeTimetable) Close(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CloseCount++
	return nil
}

func containsInt(values []int, target int) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
