package eazyfest

import (
	"fmt"
	"time"

	"github.com/Muralis01/event-fest/internal/omit"
)

// Date is a calendar date without a time component, as the API serves event
// dates. Some deployments return a full timestamp instead, which is accepted
// and truncated on comparison by the callers.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date: %s", s)
	}
	s = s[1 : len(s)-1]

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", s, err)
		}
	}
	*d = Date{Time: t}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

type Event struct {
	ID              int    `json:"eventId"`
	Name            string `json:"eventName"`
	Category        string `json:"category"`
	Date            Date   `json:"date"`
	Time            string `json:"time"`
	Venue           string `json:"venue"`
	Capacity        int    `json:"capacity"`
	CurrentCapacity int    `json:"currentCapacity"`
	Description     string `json:"description"`
}

type Registration struct {
	ID               int             `json:"registrationId"`
	StudentID        int64           `json:"studentId"`
	EventID          int             `json:"eventId"`
	RegistrationDate time.Time       `json:"registrationDate"`
	Attended         omit.Omit[bool] `json:"attended"`
	Event            *Event          `json:"event"`
}

// Credentials is the identity returned by a successful login. It is what the
// portal persists for the session.
type Credentials struct {
	Token     string `json:"token"`
	StudentID int64  `json:"userId"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

type StudentSignup struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Password   string `json:"password"`
}
