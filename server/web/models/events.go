package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/Muralis01/event-fest/internal/xtime"
	"github.com/Muralis01/event-fest/server/eazyfest"
)

// EventMatchesQuery reports whether the event matches the search query with a
// case-insensitive substring match on its name or description. The empty
// query matches everything.
func EventMatchesQuery(event eazyfest.Event, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(event.Name), q) ||
		strings.Contains(strings.ToLower(event.Description), q)
}

// EventUpcoming classifies the event against today at day granularity. An
// event on today's date is upcoming.
func EventUpcoming(event eazyfest.Event, today time.Time) bool {
	return !xtime.Day(event.Date.Time).Before(xtime.Day(today))
}

// FilterEvents projects the raw catalog through the search query and the
// temporal filter. The raw slice is never mutated.
func FilterEvents(events []eazyfest.Event, state ViewState, today time.Time) []eazyfest.Event {
	filter := ParseEventFilter(state.Filter)

	filtered := make([]eazyfest.Event, 0, len(events))
	for _, event := range events {
		if !EventMatchesQuery(event, state.Query) {
			continue
		}
		switch filter {
		case EventFilterUpcoming:
			if !EventUpcoming(event, today) {
				continue
			}
		case EventFilterPast:
			if EventUpcoming(event, today) {
				continue
			}
		}
		filtered = append(filtered, event)
	}
	return filtered
}

type Availability string

const (
	AvailabilityFull      Availability = "full"
	AvailabilityLimited   Availability = "limited"
	AvailabilityAvailable Availability = "available"
)

func EventAvailability(event eazyfest.Event) Availability {
	available := event.Capacity - event.CurrentCapacity
	if available <= 0 {
		return AvailabilityFull
	}
	if available <= 5 {
		return AvailabilityLimited
	}
	return AvailabilityAvailable
}

func AvailabilityLabel(event eazyfest.Event) string {
	available := event.Capacity - event.CurrentCapacity
	if available <= 0 {
		return "Full"
	}
	if available <= 5 {
		return fmt.Sprintf("%d spots left", available)
	}
	return fmt.Sprintf("%d spots available", available)
}

// IncrementCapacity returns a copy of the catalog with the given event's
// current capacity bumped by one. Used for the optimistic update after a
// successful registration; the event is deliberately not re-fetched.
func IncrementCapacity(events []eazyfest.Event, eventID int) []eazyfest.Event {
	updated := make([]eazyfest.Event, len(events))
	for i, event := range events {
		if event.ID == eventID {
			event.CurrentCapacity++
		}
		updated[i] = event
	}
	return updated
}

// EventStats are the dashboard summary cards, computed over the raw catalog
// rather than the filtered view.
type EventStats struct {
	TotalEvents        int
	UpcomingEvents     int
	TotalRegistrations int
	Categories         int
}

func CalcEventStats(events []eazyfest.Event, today time.Time) EventStats {
	stats := EventStats{
		TotalEvents: len(events),
	}

	categories := map[string]struct{}{}
	for _, event := range events {
		if EventUpcoming(event, today) {
			stats.UpcomingEvents++
		}
		stats.TotalRegistrations += event.CurrentCapacity
		categories[event.Category] = struct{}{}
	}
	stats.Categories = len(categories)

	return stats
}

func NewEventCard(event eazyfest.Event, today time.Time, pending bool) EventCard {
	return EventCard{
		Event:             event,
		Availability:      EventAvailability(event),
		AvailabilityLabel: AvailabilityLabel(event),
		Full:              event.CurrentCapacity >= event.Capacity,
		Upcoming:          EventUpcoming(event, today),
		Pending:           pending,
		DateDisplay:       event.Date.Format("January 2, 2006"),
		URL:               fmt.Sprintf("/events/%d", event.ID),
		RegisterURL:       fmt.Sprintf("/events/%d/register", event.ID),
	}
}

type EventCard struct {
	eazyfest.Event

	Availability      Availability
	AvailabilityLabel string
	Full              bool
	Upcoming          bool
	Pending           bool
	DateDisplay       string
	URL               string
	RegisterURL       string
}
