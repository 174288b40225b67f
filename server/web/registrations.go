package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Muralis01/event-fest/internal/tsync"
	"github.com/Muralis01/event-fest/internal/xtime"
	"github.com/Muralis01/event-fest/server/auth"
	"github.com/Muralis01/event-fest/server/database"
	"github.com/Muralis01/event-fest/server/eazyfest"
	"github.com/Muralis01/event-fest/server/web/models"
)

type RegistrationsVars struct {
	Session database.Session
	Path    string
	State   models.ViewState
	Stats   models.RegistrationStats
	Page    models.Page[models.RegistrationCard]
	Message string
	Errors  []string
}

func (h *handler) Registrations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	registrations, err := h.Client.ListRegistrations(ctx, session.Token, session.StudentID)
	if err != nil {
		if errors.Is(err, eazyfest.ErrUnauthenticated) {
			h.clearSession(w, r)
			h.forceLogin(w, r)
			return
		}
		slog.ErrorContext(ctx, "Failed to fetch registrations", slog.Any("err", err))
		h.renderRegistrations(w, r, nil, "", fetchErrorMessage(err, "registrations"))
		return
	}

	h.renderRegistrations(w, r, registrations, "")
}

// renderRegistrations renders the student's registrations. The caller
// supplies the collection so the cancel handler can re-render with the
// cancelled entry removed locally.
func (h *handler) renderRegistrations(w http.ResponseWriter, r *http.Request, registrations []eazyfest.Registration, message string, errorMessages ...string) {
	ctx := r.Context()
	query := r.URL.Query()
	session := auth.GetSession(r)

	state := models.Reconcile(
		models.ParsePrevViewState(query, string(models.RegistrationFilterAll)),
		models.ParseViewState(query, string(models.RegistrationFilterAll)),
	)

	today := xtime.Today()
	filtered := models.FilterRegistrations(registrations, state, today)

	pageSize := gridPageSize
	if state.View == models.ViewModeList {
		pageSize = listPageSize
	}
	page := models.Paginate(filtered, state.Page, pageSize)

	cards := make([]models.RegistrationCard, 0, len(page.Items))
	for _, registration := range page.Items {
		pending := h.cancelling.State(actionKey{SessionID: session.ID, ID: registration.ID}) == tsync.ActionPending
		cards = append(cards, models.NewRegistrationCard(registration, today, pending))
	}

	if err := h.Templates().ExecuteTemplate(w, "registrations.gohtml", RegistrationsVars{
		Session: session,
		Path:    "/registrations",
		State:   state,
		Stats:   models.CalcRegistrationStats(registrations, today),
		Page: models.Page[models.RegistrationCard]{
			Items:      cards,
			Index:      page.Index,
			TotalPages: page.TotalPages,
			Total:      page.Total,
		},
		Message: message,
		Errors:  errorMessages,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render registrations template", slog.Any("err", err))
	}
}

// CancelRegistration cancels one of the student's registrations. On success
// the entry is removed from the shown collection locally instead of
// re-fetching. Registrations for events that already happened cannot be
// cancelled; entries whose event is missing can always be removed.
func (h *handler) CancelRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	registrationID, err := strconv.Atoi(r.PathValue("registration_id"))
	if err != nil || registrationID <= 0 {
		h.NotFound(w, r)
		return
	}

	registrations, err := h.Client.ListRegistrations(ctx, session.Token, session.StudentID)
	if err != nil {
		if errors.Is(err, eazyfest.ErrUnauthenticated) {
			h.clearSession(w, r)
			h.forceLogin(w, r)
			return
		}
		slog.ErrorContext(ctx, "Failed to fetch registrations", slog.Any("err", err))
		h.renderRegistrations(w, r, nil, "", fetchErrorMessage(err, "registrations"))
		return
	}

	var registration *eazyfest.Registration
	for i := range registrations {
		if registrations[i].ID == registrationID {
			registration = &registrations[i]
			break
		}
	}
	if registration == nil {
		h.renderRegistrations(w, r, registrations, "", "This registration no longer exists.")
		return
	}

	if registration.Event != nil && models.RegistrationPast(*registration, xtime.Today()) {
		h.renderRegistrations(w, r, registrations, "", "Registrations for past events cannot be cancelled.")
		return
	}

	key := actionKey{SessionID: session.ID, ID: registrationID}
	if !h.cancelling.Begin(key) {
		h.renderRegistrations(w, r, registrations, "", "Cancellation already in progress")
		return
	}

	err = h.Client.CancelRegistration(ctx, session.Token, registrationID)
	h.cancelling.Finish(key, err)
	if err != nil {
		if errors.Is(err, eazyfest.ErrUnauthenticated) {
			h.clearSession(w, r)
			h.forceLogin(w, r)
			return
		}
		slog.ErrorContext(ctx, "Failed to cancel registration", slog.Any("err", err), slog.Int("registration_id", registrationID))
		h.renderRegistrations(w, r, registrations, "", cancelErrorMessage(err))
		return
	}

	h.renderRegistrations(w, r, models.RemoveRegistration(registrations, registrationID), "Registration cancelled.")
}
