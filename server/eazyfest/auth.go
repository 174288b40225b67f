package eazyfest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

func (c *Client) Login(ctx context.Context, username string, password string) (*Credentials, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{
		Username: username,
		Password: password,
	}

	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/auth/student/login", "", body, &creds); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	if creds.Token == "" || creds.StudentID == 0 {
		return nil, errors.New("invalid login response: missing token or user id")
	}

	return &creds, nil
}

// SignupStudent creates a new student account. A duplicate email surfaces as
// ErrConflict.
func (c *Client) SignupStudent(ctx context.Context, signup StudentSignup) error {
	if err := c.do(ctx, http.MethodPost, "/auth/students", "", signup, nil); err != nil {
		return fmt.Errorf("failed to sign up student: %w", err)
	}

	return nil
}
