package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
	"golang.org/x/sync/errgroup"

	"github.com/Muralis01/event-fest/internal/tsync"
	"github.com/Muralis01/event-fest/internal/xio"
	"github.com/Muralis01/event-fest/internal/xtime"
	"github.com/Muralis01/event-fest/server/auth"
	"github.com/Muralis01/event-fest/server/database"
	"github.com/Muralis01/event-fest/server/eazyfest"
	"github.com/Muralis01/event-fest/server/web/models"
)

type EventVars struct {
	Session    database.Session
	Card       models.EventCard
	Registered bool
	QRURL      string
	Message    string
	Errors     []string
}

func (h *handler) Event(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	eventID, err := strconv.Atoi(r.PathValue("event_id"))
	if err != nil || eventID <= 0 {
		h.NotFound(w, r)
		return
	}

	var event *eazyfest.Event
	var registered bool
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		event, err = h.Client.GetEvent(egCtx, eventID)
		return err
	})
	if session.LoggedIn() {
		eg.Go(func() error {
			registrations, err := h.Client.ListRegistrations(egCtx, session.Token, session.StudentID)
			if err != nil {
				// The event still renders; the button just won't
				// reflect an existing registration.
				slog.ErrorContext(egCtx, "Failed to fetch registrations", slog.Any("err", err))
				return nil
			}
			for _, registration := range registrations {
				if registration.EventID == eventID {
					registered = true
					break
				}
			}
			return nil
		})
	}

	if err = eg.Wait(); err != nil {
		if errors.Is(err, eazyfest.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		slog.ErrorContext(ctx, "Failed to fetch event", slog.Any("err", err), slog.Int("event_id", eventID))
		h.renderDashboard(w, r, nil, "", fetchErrorMessage(err, "event"))
		return
	}

	h.renderEvent(w, r, *event, registered, "")
}

func (h *handler) renderEvent(w http.ResponseWriter, r *http.Request, event eazyfest.Event, registered bool, message string, errorMessages ...string) {
	ctx := r.Context()
	session := auth.GetSession(r)

	pending := h.registering.State(actionKey{SessionID: session.ID, ID: event.ID}) == tsync.ActionPending

	if err := h.Templates().ExecuteTemplate(w, "event.gohtml", EventVars{
		Session:    session,
		Card:       models.NewEventCard(event, xtime.Today(), pending),
		Registered: registered,
		QRURL:      fmt.Sprintf("/events/%d/qr", event.ID),
		Message:    message,
		Errors:     errorMessages,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render event template", slog.Any("err", err))
	}
}

// RegisterEvent registers the logged-in student for an event. On success the
// shown registration count is bumped locally instead of re-fetching; the next
// full load reflects the server state.
func (h *handler) RegisterEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	if !session.LoggedIn() {
		h.forceLogin(w, r)
		return
	}

	eventID, err := strconv.Atoi(r.PathValue("event_id"))
	if err != nil || eventID <= 0 {
		h.NotFound(w, r)
		return
	}

	fromDashboard := r.FormValue("from") == "dashboard"

	var events []eazyfest.Event
	var event *eazyfest.Event
	if fromDashboard {
		if events, err = h.Client.ListEvents(ctx); err != nil {
			slog.ErrorContext(ctx, "Failed to fetch events", slog.Any("err", err))
			h.renderDashboard(w, r, nil, "", fetchErrorMessage(err, "events"))
			return
		}
	} else {
		if event, err = h.Client.GetEvent(ctx, eventID); err != nil {
			if errors.Is(err, eazyfest.ErrNotFound) {
				h.NotFound(w, r)
				return
			}
			slog.ErrorContext(ctx, "Failed to fetch event", slog.Any("err", err), slog.Int("event_id", eventID))
			h.renderDashboard(w, r, nil, "", fetchErrorMessage(err, "event"))
			return
		}
	}

	key := actionKey{SessionID: session.ID, ID: eventID}
	if !h.registering.Begin(key) {
		h.renderRegisterOutcome(w, r, fromDashboard, events, event, false, "", "Registration already in progress")
		return
	}

	_, err = h.Client.Register(ctx, session.Token, session.StudentID, eventID)
	h.registering.Finish(key, err)
	if err != nil {
		if errors.Is(err, eazyfest.ErrUnauthenticated) {
			h.clearSession(w, r)
			h.forceLogin(w, r)
			return
		}
		slog.ErrorContext(ctx, "Failed to register for event", slog.Any("err", err), slog.Int("event_id", eventID))
		h.renderRegisterOutcome(w, r, fromDashboard, events, event, false, "", registerErrorMessage(err))
		return
	}

	if fromDashboard {
		events = models.IncrementCapacity(events, eventID)
	} else {
		event.CurrentCapacity++
	}
	h.renderRegisterOutcome(w, r, fromDashboard, events, event, true, "Successfully registered!")
}

func (h *handler) renderRegisterOutcome(w http.ResponseWriter, r *http.Request, fromDashboard bool, events []eazyfest.Event, event *eazyfest.Event, registered bool, message string, errorMessages ...string) {
	if fromDashboard {
		h.renderDashboard(w, r, events, message, errorMessages...)
		return
	}
	h.renderEvent(w, r, *event, registered, message, errorMessages...)
}

// EventQR serves a QR code pointing at the event's detail page, for sharing
// an event from a phone screen.
func (h *handler) EventQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := strconv.Atoi(r.PathValue("event_id"))
	if err != nil || eventID <= 0 {
		http.NotFound(w, r)
		return
	}

	qr, err := qrcode.New(h.Cfg.Server.PublicURL + "/events/" + strconv.Itoa(eventID))
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create qrcode", slog.Any("err", err))
		http.Error(w, "Failed to create qrcode", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")

	qrW := standard.NewWithWriter(xio.NewResponseWriteCloser(w),
		standard.WithBgTransparent(),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)
	defer func() {
		_ = qrW.Close()
	}()
	if err = qr.Save(qrW); err != nil {
		slog.ErrorContext(ctx, "Failed to save qrcode", slog.Any("err", err))
	}
}
