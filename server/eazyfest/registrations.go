package eazyfest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// Register creates a registration for the student on the event. A 400 from
// this endpoint means the event is at capacity and is surfaced as
// ErrCapacityExceeded.
func (c *Client) Register(ctx context.Context, token string, studentID int64, eventID int) (*Registration, error) {
	body := struct {
		StudentID int64 `json:"studentId"`
		EventID   int   `json:"eventId"`
	}{
		StudentID: studentID,
		EventID:   eventID,
	}

	var registration Registration
	if err := c.do(ctx, http.MethodPost, "/api/registrations", token, body, &registration); err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
			return nil, fmt.Errorf("failed to register for event %d: %w", eventID, ErrCapacityExceeded)
		}
		return nil, fmt.Errorf("failed to register for event %d: %w", eventID, err)
	}

	return &registration, nil
}

func (c *Client) ListRegistrations(ctx context.Context, token string, studentID int64) ([]Registration, error) {
	var registrations []Registration
	if err := c.do(ctx, http.MethodGet, "/api/registrations/students/"+strconv.FormatInt(studentID, 10), token, nil, &registrations); err != nil {
		return nil, fmt.Errorf("failed to fetch registrations for student %d: %w", studentID, err)
	}

	return registrations, nil
}

func (c *Client) CancelRegistration(ctx context.Context, token string, registrationID int) error {
	if err := c.do(ctx, http.MethodDelete, "/api/registrations/"+strconv.Itoa(registrationID), token, nil, nil); err != nil {
		return fmt.Errorf("failed to cancel registration %d: %w", registrationID, err)
	}

	return nil
}
