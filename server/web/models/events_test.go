package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muralis01/event-fest/server/eazyfest"
)

var testToday = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func testEvent(id int, name string, date time.Time) eazyfest.Event {
	return eazyfest.Event{
		ID:       id,
		Name:     name,
		Date:     eazyfest.Date{Time: date},
		Capacity: 100,
	}
}

func TestEventUpcoming_TodayIsUpcoming(t *testing.T) {
	// A timestamp later today still counts as today.
	event := testEvent(1, "Tech Talk", time.Date(2026, time.March, 15, 18, 30, 0, 0, time.UTC))
	assert.True(t, EventUpcoming(event, testToday))

	event = testEvent(2, "Old Meetup", time.Date(2026, time.March, 14, 23, 59, 0, 0, time.UTC))
	assert.False(t, EventUpcoming(event, testToday))

	event = testEvent(3, "Future Fest", time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC))
	assert.True(t, EventUpcoming(event, testToday))
}

func TestEventMatchesQuery(t *testing.T) {
	event := eazyfest.Event{Name: "Annual Hackathon", Description: "48 hours of coding"}

	assert.True(t, EventMatchesQuery(event, ""))
	assert.True(t, EventMatchesQuery(event, "HACK"))
	assert.True(t, EventMatchesQuery(event, "coding"))
	assert.False(t, EventMatchesQuery(event, "robotics"))
}

func TestFilterEvents(t *testing.T) {
	events := []eazyfest.Event{
		testEvent(1, "Future Fest", testToday.AddDate(0, 1, 0)),
		testEvent(2, "Past Meetup", testToday.AddDate(0, -1, 0)),
		testEvent(3, "Today Talk", testToday),
	}

	upcoming := FilterEvents(events, ViewState{Filter: "upcoming"}, testToday)
	require.Len(t, upcoming, 2)
	assert.Equal(t, 1, upcoming[0].ID)
	assert.Equal(t, 3, upcoming[1].ID)

	past := FilterEvents(events, ViewState{Filter: "past"}, testToday)
	require.Len(t, past, 1)
	assert.Equal(t, 2, past[0].ID)

	all := FilterEvents(events, ViewState{Filter: "all"}, testToday)
	assert.Len(t, all, 3)

	// An unknown filter falls back to upcoming.
	fallback := FilterEvents(events, ViewState{Filter: "bogus"}, testToday)
	assert.Len(t, fallback, 2)

	searched := FilterEvents(events, ViewState{Filter: "all", Query: "meetup"}, testToday)
	require.Len(t, searched, 1)
	assert.Equal(t, 2, searched[0].ID)
}

func TestEventAvailability(t *testing.T) {
	full := eazyfest.Event{Capacity: 10, CurrentCapacity: 10}
	assert.Equal(t, AvailabilityFull, EventAvailability(full))
	assert.Equal(t, "Full", AvailabilityLabel(full))

	limited := eazyfest.Event{Capacity: 10, CurrentCapacity: 6}
	assert.Equal(t, AvailabilityLimited, EventAvailability(limited))
	assert.Equal(t, "4 spots left", AvailabilityLabel(limited))

	available := eazyfest.Event{Capacity: 10, CurrentCapacity: 3}
	assert.Equal(t, AvailabilityAvailable, EventAvailability(available))
	assert.Equal(t, "7 spots available", AvailabilityLabel(available))

	// Exactly five remaining is still limited.
	boundary := eazyfest.Event{Capacity: 10, CurrentCapacity: 5}
	assert.Equal(t, AvailabilityLimited, EventAvailability(boundary))

	overbooked := eazyfest.Event{Capacity: 10, CurrentCapacity: 12}
	assert.Equal(t, AvailabilityFull, EventAvailability(overbooked))
}

func TestIncrementCapacity(t *testing.T) {
	events := []eazyfest.Event{
		{ID: 1, CurrentCapacity: 3},
		{ID: 2, CurrentCapacity: 8},
	}

	updated := IncrementCapacity(events, 2)
	assert.Equal(t, 3, updated[0].CurrentCapacity)
	assert.Equal(t, 9, updated[1].CurrentCapacity)

	// The input is untouched.
	assert.Equal(t, 8, events[1].CurrentCapacity)

	unknown := IncrementCapacity(events, 99)
	assert.Equal(t, events, unknown)
}

func TestCalcEventStats(t *testing.T) {
	events := []eazyfest.Event{
		{ID: 1, Category: "Tech", Date: eazyfest.Date{Time: testToday.AddDate(0, 1, 0)}, CurrentCapacity: 10},
		{ID: 2, Category: "Tech", Date: eazyfest.Date{Time: testToday.AddDate(0, -1, 0)}, CurrentCapacity: 25},
		{ID: 3, Category: "Sports", Date: eazyfest.Date{Time: testToday}, CurrentCapacity: 5},
	}

	stats := CalcEventStats(events, testToday)
	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, 2, stats.UpcomingEvents)
	assert.Equal(t, 40, stats.TotalRegistrations)
	assert.Equal(t, 2, stats.Categories)
}

func TestNewEventCard(t *testing.T) {
	event := eazyfest.Event{
		ID:              5,
		Name:            "Tech Talk",
		Date:            eazyfest.Date{Time: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)},
		Capacity:        10,
		CurrentCapacity: 10,
	}

	card := NewEventCard(event, testToday, true)
	assert.True(t, card.Full)
	assert.True(t, card.Upcoming)
	assert.True(t, card.Pending)
	assert.Equal(t, "April 1, 2026", card.DateDisplay)
	assert.Equal(t, "/events/5", card.URL)
	assert.Equal(t, "/events/5/register", card.RegisterURL)
}
