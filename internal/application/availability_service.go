package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ilo80/esiee-plus-bot/internal/ade"
	"github.com/ilo80/esiee-plus-bot/internal/timetable"
)

// TimetableSession is one authenticated conversation with the timetable
// provider. Sessions serve a single query and are closed before the answer
// goes out.
type TimetableSession interface {
	Resources(ctx context.Context, opts ade.ResourceOptions) ([]ade.Resource, error)
	Events(ctx context.Context, opts ade.EventOptions) ([]ade.Event, error)
	Close(ctx context.Context) error
}

// TimetableOpener establishes sessions against the timetable provider.
type TimetableOpener interface {
	Open(ctx context.Context) (TimetableSession, error)
}

// Policy groups the business constants that are configuration, not engine
// logic: the end of the bookable day and the accepted year band.
type Policy struct {
	DayCutoff timetable.TimeOfDay
	MinYear   int
	MaxYear   int
}

// DefaultPolicy matches the deployed ESIEE instance: days end at 22:00 and
// queries are accepted for 2024 through 2026.
func DefaultPolicy() Policy {
	return Policy{
		DayCutoff: timetable.TimeOfDay{Hours: 22},
		MinYear:   2024,
		MaxYear:   2026,
	}
}

// AvailabilityService answers the two supported room queries. All
// collaborators are injected: the provider behind TimetableOpener, the
// current moment behind now, and query correlation IDs behind queryID, so the
// service stays deterministic under test.
type AvailabilityService struct {
	timetables TimetableOpener
	queryID    func() string
	now        func() time.Time
	policy     Policy
	logger     *slog.Logger
}

// NewAvailabilityService wires dependencies for availability queries.
func NewAvailabilityService(timetables TimetableOpener, now func() time.Time, policy Policy) *AvailabilityService {
	return NewAvailabilityServiceWithLogger(timetables, nil, now, policy, nil)
}

// NewAvailabilityServiceWithLogger constructs the service with a specified logger.
func NewAvailabilityServiceWithLogger(timetables TimetableOpener, queryID func() string, now func() time.Time, policy Policy, logger *slog.Logger) *AvailabilityService {
	if queryID == nil {
		queryID = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	if policy == (Policy{}) {
		policy = DefaultPolicy()
	}
	return &AvailabilityService{
		timetables: timetables,
		queryID:    queryID,
		now:        now,
		policy:     policy,
		logger:     defaultLogger(logger),
	}
}

func (s *AvailabilityService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "AvailabilityService", operation, attrs...)
}

// SearchFreeRooms answers "which rooms are free in [date, start, end)". All
// validation runs before the first network call; the provider session is
// opened once, drained with a single bulk events fetch, and closed.
func (s *AvailabilityService) SearchFreeRooms(ctx context.Context, params SearchParams) (result SearchResult, err error) {
	if s == nil {
		err = fmt.Errorf("AvailabilityService is nil")
		return
	}

	logger := s.loggerWith(ctx, "SearchFreeRooms", "query_id", s.queryID())
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "free room search failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "free room search completed", "groups", len(result.Groups))
	}()

	date, window, epis, vErr := s.validateSearch(params)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	session, openErr := s.timetables.Open(ctx)
	if openErr != nil {
		err = &UpstreamError{Op: "open", Err: openErr}
		return
	}
	defer s.closeSession(ctx, logger, session)

	classrooms, catalogErr := s.bookableClassrooms(ctx, session)
	if catalogErr != nil {
		err = catalogErr
		return
	}

	// One bulk fetch for the whole day; per-room requests would need the
	// provider's rate-limit delay.
	dayEvents, eventsErr := session.Events(ctx, ade.EventOptions{Date: date.ADEFormat(), Detail: 8})
	if eventsErr != nil {
		err = &UpstreamError{Op: "getEvents", Err: eventsErr}
		return
	}

	free := make([]string, 0, len(classrooms))
	for _, classroom := range classrooms {
		roomEvents, parseErr := eventsForRoom(dayEvents, classroom.ID)
		if parseErr != nil {
			err = &UpstreamError{Op: "getEvents", Err: parseErr}
			return
		}
		if timetable.IsAvailable(roomEvents, window) {
			free = append(free, classroom.Name)
		}
	}

	sort.Strings(free)
	result = SearchResult{Date: date, Window: window, Groups: groupByEpis(filterByEpis(free, epis))}
	return
}

// RoomStatus reports one room's current availability, how long that holds
// until the daily cutoff, and its equipment profile.
func (s *AvailabilityService) RoomStatus(ctx context.Context, params StatusParams) (status RoomStatusResult, err error) {
	if s == nil {
		err = fmt.Errorf("AvailabilityService is nil")
		return
	}

	logger := s.loggerWith(ctx, "RoomStatus", "query_id", s.queryID(), "room", params.Room)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "room status query failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("name", status.Name).InfoContext(ctx, "room status query completed", "available", status.Available)
	}()

	vErr := &ValidationError{}
	if params.Room == "" {
		vErr.add("salle", "a room code is required")
		err = vErr
		return
	}

	session, openErr := s.timetables.Open(ctx)
	if openErr != nil {
		err = &UpstreamError{Op: "open", Err: openErr}
		return
	}
	defer s.closeSession(ctx, logger, session)

	resources, resErr := session.Resources(ctx, ade.ResourceOptions{Detail: 3})
	if resErr != nil {
		err = &UpstreamError{Op: "getResources", Err: resErr}
		return
	}
	classrooms := timetable.FilterClassrooms(toClassrooms(resources))

	name, found := timetable.CorrectName(classrooms, params.Room)
	if !found {
		err = ErrRoomNotFound
		return
	}

	var roomID int
	for _, classroom := range classrooms {
		if classroom.Name == name {
			roomID = classroom.ID
			break
		}
	}

	now := s.now()
	window := timetable.Window{Start: timetable.TimeOfDayOf(now), End: s.policy.DayCutoff}

	dayEvents, eventsErr := session.Events(ctx, ade.EventOptions{
		Date:      timetable.DateOf(now).ADEFormat(),
		Resources: &roomID,
		Detail:    3,
	})
	if eventsErr != nil {
		err = &UpstreamError{Op: "getEvents", Err: eventsErr}
		return
	}
	roomEvents, parseErr := toEvents(dayEvents)
	if parseErr != nil {
		err = &UpstreamError{Op: "getEvents", Err: parseErr}
		return
	}

	detailed, detailErr := session.Resources(ctx, ade.ResourceOptions{Detail: 11, ID: &roomID})
	if detailErr != nil {
		err = &UpstreamError{Op: "getResources", Err: detailErr}
		return
	}
	if len(detailed) != 1 {
		err = &UpstreamError{Op: "getResources", Err: fmt.Errorf("expected one resource for id %d, got %d", roomID, len(detailed))}
		return
	}

	room := toClassroom(detailed[0])
	profile := timetable.Classify(room)
	freeFor := timetable.FreeDuration(roomEvents, window)
	occupiedFor := timetable.OccupiedDuration(roomEvents, window)

	status = RoomStatusResult{
		Name:        name,
		Available:   !freeFor.IsZero(),
		Locked:      profile.Locked,
		Board:       profile.Board,
		Equipment:   profile.Equipment,
		Capacity:    room.Capacity,
		Tier:        profile.Tier,
		FreeFor:     freeFor,
		OccupiedFor: occupiedFor,
	}
	return
}

// validateSearch applies defaults and checks every user-supplied field,
// accumulating issues so one reply can name them all.
func (s *AvailabilityService) validateSearch(params SearchParams) (timetable.Date, timetable.Window, int, *ValidationError) {
	vErr := &ValidationError{}
	now := s.now()

	dateText := params.Date
	if dateText == "" {
		dateText = timetable.DateOf(now).String()
	}
	date, dateErr := timetable.ParseDate(dateText)
	switch {
	case dateErr != nil:
		vErr.add("date", "expected a DD/MM/YYYY date")
	case date.Year < s.policy.MinYear || date.Year > s.policy.MaxYear:
		vErr.add("date", fmt.Sprintf("year must be between %d and %d", s.policy.MinYear, s.policy.MaxYear))
	}

	startText := params.Start
	if startText == "" {
		startText = timetable.TimeOfDayOf(now).String()
	}
	start, startErr := timetable.ParseTimeOfDay(startText)
	if startErr != nil {
		vErr.add("debut", "expected an HH:MM time")
	}

	var end timetable.TimeOfDay
	if params.End == "" {
		end = start.AddMinutes(60)
	} else {
		var endErr error
		end, endErr = timetable.ParseTimeOfDay(params.End)
		if endErr != nil {
			vErr.add("fin", "expected an HH:MM time")
		}
	}

	if params.Epis < -1 || params.Epis > 6 {
		vErr.add("epis", "wing number must be between 0 and 6")
	}

	if startErr == nil && !vErr.HasErrors() && start.Compare(end) >= 0 {
		vErr.add("periode", "start time must be before end time")
	}

	return date, timetable.Window{Start: start, End: end}, params.Epis, vErr
}

func (s *AvailabilityService) bookableClassrooms(ctx context.Context, session TimetableSession) ([]timetable.Classroom, error) {
	resources, err := session.Resources(ctx, ade.ResourceOptions{Detail: 3})
	if err != nil {
		return nil, &UpstreamError{Op: "getResources", Err: err}
	}
	return timetable.ExcludeSpecialRooms(timetable.FilterClassrooms(toClassrooms(resources))), nil
}

func (s *AvailabilityService) closeSession(ctx context.Context, logger *slog.Logger, session TimetableSession) {
	if err := session.Close(ctx); err != nil {
		logger.WarnContext(ctx, "failed to close provider session", "error", err)
	}
}

func toClassroom(resource ade.Resource) timetable.Classroom {
	return timetable.Classroom{
		ID:       resource.ID,
		Name:     resource.Name,
		Path:     resource.Path,
		Category: resource.Category,
		Capacity: resource.Size,
		Info:     resource.Info,
	}
}

func toClassrooms(resources []ade.Resource) []timetable.Classroom {
	classrooms := make([]timetable.Classroom, 0, len(resources))
	for _, resource := range resources {
		classrooms = append(classrooms, toClassroom(resource))
	}
	return classrooms
}

func toEvents(events []ade.Event) ([]timetable.Event, error) {
	parsed := make([]timetable.Event, 0, len(events))
	for _, event := range events {
		start, err := timetable.ParseTimeOfDay(event.StartHour)
		if err != nil {
			return nil, fmt.Errorf("event %d has start hour %q: %w", event.ID, event.StartHour, err)
		}
		end, err := timetable.ParseTimeOfDay(event.EndHour)
		if err != nil {
			return nil, fmt.Errorf("event %d has end hour %q: %w", event.ID, event.EndHour, err)
		}
		parsed = append(parsed, timetable.Event{Start: start, End: end})
	}
	return parsed, nil
}

func eventsForRoom(events []ade.Event, roomID int) ([]timetable.Event, error) {
	matching := make([]ade.Event, 0, len(events))
	for _, event := range events {
		for _, resource := range event.Resources {
			if resource.ID == roomID {
				matching = append(matching, event)
				break
			}
		}
	}
	return toEvents(matching)
}

func filterByEpis(names []string, epis int) []string {
	if epis == -1 {
		return names
	}
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if episOf(name) == epis {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

func episOf(name string) int {
	if name == "" {
		return -1
	}
	wing, err := strconv.Atoi(name[:1])
	if err != nil {
		return -1
	}
	return wing
}

// groupByEpis buckets sorted room names by their leading digit, preserving
// the lexicographic order inside each group.
func groupByEpis(names []string) []EpisGroup {
	groups := make([]EpisGroup, 0, 7)
	index := make(map[int]int)

	for _, name := range names {
		wing := episOf(name)
		position, seen := index[wing]
		if !seen {
			index[wing] = len(groups)
			groups = append(groups, EpisGroup{Epis: wing})
			position = index[wing]
		}
		groups[position].Rooms = append(groups[position].Rooms, name)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Epis < groups[j].Epis })
	return groups
}
