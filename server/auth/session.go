package auth

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/Muralis01/event-fest/server/database"
)

// SessionDuration is how long a portal session stays valid. The API token it
// wraps may expire earlier; a 401 from the API clears the session regardless.
const SessionDuration = 7 * 24 * time.Hour

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890")

type sessionKey struct{}

var sessionContextKey = &sessionKey{}

func SetSession(ctx context.Context, session database.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// GetSession returns the session installed by the middleware. Anonymous
// requests carry a zero session; check Session.LoggedIn.
func GetSession(r *http.Request) database.Session {
	return r.Context().Value(sessionContextKey).(database.Session)
}

func RandomStr(length int) string {
	b := make([]rune, length)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
