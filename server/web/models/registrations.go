package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Muralis01/event-fest/internal/xtime"
	"github.com/Muralis01/event-fest/server/eazyfest"
)

// RegistrationMatchesQuery matches the nested event's name, category, or
// venue, case-insensitively. A registration whose event is missing only
// matches the empty query.
func RegistrationMatchesQuery(registration eazyfest.Registration, query string) bool {
	if query == "" {
		return true
	}
	if registration.Event == nil {
		return false
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(registration.Event.Name), q) ||
		strings.Contains(strings.ToLower(registration.Event.Category), q) ||
		strings.Contains(strings.ToLower(registration.Event.Venue), q)
}

// RegistrationUpcoming reports whether the nested event's date is today or
// later, at day granularity. A registration without an event is neither
// upcoming nor past.
func RegistrationUpcoming(registration eazyfest.Registration, today time.Time) bool {
	if registration.Event == nil {
		return false
	}
	return !xtime.Day(registration.Event.Date.Time).Before(xtime.Day(today))
}

// RegistrationPast is the other half of the temporal partition; for
// registrations with an event the two are exact complements.
func RegistrationPast(registration eazyfest.Registration, today time.Time) bool {
	if registration.Event == nil {
		return false
	}
	return xtime.Day(registration.Event.Date.Time).Before(xtime.Day(today))
}

// FilterRegistrations projects the raw registrations through the search query
// and the selected filter. The attended and missed filters require the
// attended flag to be explicitly set; a past registration with the flag unset
// matches neither. This is intentionally stricter than the status badge,
// which treats unset as missed.
func FilterRegistrations(registrations []eazyfest.Registration, state ViewState, today time.Time) []eazyfest.Registration {
	filter := ParseRegistrationFilter(state.Filter)

	filtered := make([]eazyfest.Registration, 0, len(registrations))
	for _, registration := range registrations {
		if !RegistrationMatchesQuery(registration, state.Query) {
			continue
		}
		switch filter {
		case RegistrationFilterUpcoming:
			if !RegistrationUpcoming(registration, today) {
				continue
			}
		case RegistrationFilterAttended:
			if !RegistrationPast(registration, today) || !registration.Attended.OK || !registration.Attended.Value {
				continue
			}
		case RegistrationFilterMissed:
			if !RegistrationPast(registration, today) || !registration.Attended.OK || registration.Attended.Value {
				continue
			}
		}
		filtered = append(filtered, registration)
	}
	return filtered
}

type Badge string

const (
	BadgeUpcoming Badge = "Upcoming"
	BadgeAttended Badge = "Attended"
	BadgeMissed   Badge = "Missed"
)

// RegistrationBadge classifies a registration for display: upcoming events
// are "Upcoming", past events are "Attended" when the flag is truthy and
// "Missed" otherwise, unset included.
func RegistrationBadge(registration eazyfest.Registration, today time.Time) Badge {
	if RegistrationUpcoming(registration, today) {
		return BadgeUpcoming
	}
	if registration.Attended.OK && registration.Attended.Value {
		return BadgeAttended
	}
	return BadgeMissed
}

// RemoveRegistration returns a copy of the collection without the given
// registration. Used after a successful cancel; the list is not re-fetched.
func RemoveRegistration(registrations []eazyfest.Registration, registrationID int) []eazyfest.Registration {
	remaining := make([]eazyfest.Registration, 0, len(registrations))
	for _, registration := range registrations {
		if registration.ID == registrationID {
			continue
		}
		remaining = append(remaining, registration)
	}
	return remaining
}

type RegistrationStats struct {
	Total          int
	Upcoming       int
	Attended       int
	Completed      int
	CompletionRate int
}

// CalcRegistrationStats computes the summary cards over the raw collection.
// The completion rate divides attended by the total registration count, not
// by the completed count, matching the served product behavior.
func CalcRegistrationStats(registrations []eazyfest.Registration, today time.Time) RegistrationStats {
	stats := RegistrationStats{
		Total: len(registrations),
	}

	for _, registration := range registrations {
		if RegistrationUpcoming(registration, today) {
			stats.Upcoming++
		}
		if registration.Attended.OK && registration.Attended.Value {
			stats.Attended++
		}
		if RegistrationPast(registration, today) {
			stats.Completed++
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Attended) / float64(stats.Total) * 100))
	}

	return stats
}

// NewRegistrationCard builds the display model for one registration. A
// registration whose nested event is missing renders as an invalid card that
// only offers removal.
func NewRegistrationCard(registration eazyfest.Registration, today time.Time, pending bool) RegistrationCard {
	card := RegistrationCard{
		Registration:        registration,
		Pending:             pending,
		CancelURL:           fmt.Sprintf("/registrations/%d/cancel", registration.ID),
		RegisteredAtDisplay: registration.RegistrationDate.Format("January 2, 2006 3:04 PM"),
	}

	if registration.Event == nil {
		card.Invalid = true
		return card
	}

	card.Badge = RegistrationBadge(registration, today)
	card.Expired = RegistrationPast(registration, today)
	card.EventURL = fmt.Sprintf("/events/%d", registration.Event.ID)
	card.DateDisplay = registration.Event.Date.Format("January 2, 2006")

	return card
}

type RegistrationCard struct {
	Registration eazyfest.Registration

	Invalid             bool
	Badge               Badge
	Expired             bool
	Pending             bool
	EventURL            string
	CancelURL           string
	DateDisplay         string
	RegisteredAtDisplay string
}
