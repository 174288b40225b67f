package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muralis01/event-fest/internal/omit"
	"github.com/Muralis01/event-fest/server/eazyfest"
)

func testRegistration(id int, date time.Time, attended omit.Omit[bool]) eazyfest.Registration {
	event := testEvent(id*10, "Event", date)
	return eazyfest.Registration{
		ID:       id,
		EventID:  event.ID,
		Attended: attended,
		Event:    &event,
	}
}

func attendedYes() omit.Omit[bool]   { return omit.Omit[bool]{Value: true, OK: true} }
func attendedNo() omit.Omit[bool]    { return omit.Omit[bool]{Value: false, OK: true} }
func attendedUnset() omit.Omit[bool] { return omit.Omit[bool]{} }

func TestRegistrationMatchesQuery(t *testing.T) {
	event := eazyfest.Event{Name: "Annual Hackathon", Category: "Tech", Venue: "Main Hall"}
	registration := eazyfest.Registration{Event: &event}

	assert.True(t, RegistrationMatchesQuery(registration, ""))
	assert.True(t, RegistrationMatchesQuery(registration, "hackathon"))
	assert.True(t, RegistrationMatchesQuery(registration, "tech"))
	assert.True(t, RegistrationMatchesQuery(registration, "main"))
	assert.False(t, RegistrationMatchesQuery(registration, "sports"))

	// Without an event only the empty query matches.
	invalid := eazyfest.Registration{}
	assert.True(t, RegistrationMatchesQuery(invalid, ""))
	assert.False(t, RegistrationMatchesQuery(invalid, "hackathon"))
}

func TestRegistrationTemporal_MissingEvent(t *testing.T) {
	invalid := eazyfest.Registration{}
	assert.False(t, RegistrationUpcoming(invalid, testToday))
	assert.False(t, RegistrationPast(invalid, testToday))
}

func TestFilterRegistrations_AttendedRequiresFlag(t *testing.T) {
	past := testToday.AddDate(0, -1, 0)
	future := testToday.AddDate(0, 1, 0)

	registrations := []eazyfest.Registration{
		testRegistration(1, past, attendedYes()),
		testRegistration(2, past, attendedNo()),
		testRegistration(3, past, attendedUnset()),
		testRegistration(4, future, attendedUnset()),
	}

	attended := FilterRegistrations(registrations, ViewState{Filter: "attended"}, testToday)
	require.Len(t, attended, 1)
	assert.Equal(t, 1, attended[0].ID)

	missed := FilterRegistrations(registrations, ViewState{Filter: "missed"}, testToday)
	require.Len(t, missed, 1)
	assert.Equal(t, 2, missed[0].ID)

	// A past registration with the flag never set matches neither filter,
	// even though the badge shows it as missed.
	upcoming := FilterRegistrations(registrations, ViewState{Filter: "upcoming"}, testToday)
	require.Len(t, upcoming, 1)
	assert.Equal(t, 4, upcoming[0].ID)

	all := FilterRegistrations(registrations, ViewState{Filter: "all"}, testToday)
	assert.Len(t, all, 4)
}

func TestFilterRegistrations_SearchNestedEvent(t *testing.T) {
	event := testEvent(1, "Robotics Workshop", testToday)
	registrations := []eazyfest.Registration{
		{ID: 1, Event: &event},
		{ID: 2, Event: nil},
	}

	found := FilterRegistrations(registrations, ViewState{Filter: "all", Query: "robotics"}, testToday)
	require.Len(t, found, 1)
	assert.Equal(t, 1, found[0].ID)
}

func TestRegistrationBadge(t *testing.T) {
	future := testToday.AddDate(0, 1, 0)
	past := testToday.AddDate(0, -1, 0)

	// Upcoming wins regardless of the attended flag.
	assert.Equal(t, BadgeUpcoming, RegistrationBadge(testRegistration(1, future, attendedYes()), testToday))
	assert.Equal(t, BadgeUpcoming, RegistrationBadge(testRegistration(2, future, attendedUnset()), testToday))

	assert.Equal(t, BadgeAttended, RegistrationBadge(testRegistration(3, past, attendedYes()), testToday))
	assert.Equal(t, BadgeMissed, RegistrationBadge(testRegistration(4, past, attendedNo()), testToday))
	assert.Equal(t, BadgeMissed, RegistrationBadge(testRegistration(5, past, attendedUnset()), testToday))
}

func TestCalcRegistrationStats(t *testing.T) {
	past := testToday.AddDate(0, -1, 0)
	future := testToday.AddDate(0, 1, 0)

	registrations := []eazyfest.Registration{
		testRegistration(1, past, attendedYes()),
		testRegistration(2, past, attendedNo()),
		testRegistration(3, future, attendedUnset()),
		testRegistration(4, future, attendedUnset()),
	}

	stats := CalcRegistrationStats(registrations, testToday)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Upcoming)
	assert.Equal(t, 1, stats.Attended)
	assert.Equal(t, 2, stats.Completed)
	// 1 attended out of 4 total.
	assert.Equal(t, 25, stats.CompletionRate)
}

func TestCalcRegistrationStats_Empty(t *testing.T) {
	stats := CalcRegistrationStats(nil, testToday)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.CompletionRate)
}

func TestRemoveRegistration(t *testing.T) {
	registrations := []eazyfest.Registration{
		{ID: 1}, {ID: 2}, {ID: 3},
	}

	remaining := RemoveRegistration(registrations, 2)
	require.Len(t, remaining, 2)
	assert.Equal(t, 1, remaining[0].ID)
	assert.Equal(t, 3, remaining[1].ID)

	// The input is untouched.
	assert.Len(t, registrations, 3)

	assert.Len(t, RemoveRegistration(registrations, 99), 3)
}

func TestNewRegistrationCard(t *testing.T) {
	past := testToday.AddDate(0, -1, 0)
	registration := testRegistration(7, past, attendedYes())
	registration.RegistrationDate = time.Date(2026, time.January, 5, 14, 30, 0, 0, time.UTC)

	card := NewRegistrationCard(registration, testToday, false)
	assert.False(t, card.Invalid)
	assert.Equal(t, BadgeAttended, card.Badge)
	assert.True(t, card.Expired)
	assert.Equal(t, "/events/70", card.EventURL)
	assert.Equal(t, "/registrations/7/cancel", card.CancelURL)
	assert.Equal(t, "January 5, 2026 2:30 PM", card.RegisteredAtDisplay)
}

func TestNewRegistrationCard_MissingEvent(t *testing.T) {
	card := NewRegistrationCard(eazyfest.Registration{ID: 9}, testToday, false)
	assert.True(t, card.Invalid)
	assert.False(t, card.Expired)
	assert.Empty(t, card.EventURL)
	assert.Equal(t, "/registrations/9/cancel", card.CancelURL)
}
