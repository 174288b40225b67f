package database

import (
	"time"
)

// Session is the locally persisted identity of a logged-in student: the API
// bearer token plus the display fields returned by the login endpoint.
type Session struct {
	ID          string    `db:"session_id"`
	CreatedAt   time.Time `db:"session_created_at"`
	ExpiresAt   time.Time `db:"session_expires_at"`
	Token       string    `db:"session_token"`
	StudentID   int64     `db:"session_student_id"`
	StudentName string    `db:"session_student_name"`
	StudentRole string    `db:"session_student_role"`
}

// LoggedIn reports whether this is a real session as opposed to the zero
// session the middleware installs for anonymous requests.
func (s Session) LoggedIn() bool {
	return s.Token != "" && s.StudentID != 0
}
