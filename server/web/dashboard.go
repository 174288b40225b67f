package web

import (
	"log/slog"
	"net/http"

	"github.com/Muralis01/event-fest/internal/tsync"
	"github.com/Muralis01/event-fest/internal/xtime"
	"github.com/Muralis01/event-fest/server/auth"
	"github.com/Muralis01/event-fest/server/database"
	"github.com/Muralis01/event-fest/server/eazyfest"
	"github.com/Muralis01/event-fest/server/web/models"
)

type DashboardVars struct {
	Session database.Session
	Path    string
	State   models.ViewState
	Stats   models.EventStats
	Page    models.Page[models.EventCard]
	Message string
	Errors  []string
}

func (h *handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	events, err := h.Client.ListEvents(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to fetch events", slog.Any("err", err))
		h.renderDashboard(w, r, nil, "", fetchErrorMessage(err, "events"))
		return
	}

	h.renderDashboard(w, r, events, "")
}

// renderDashboard renders the event catalog. The caller supplies the events
// so handlers that already hold a (possibly locally updated) catalog can
// re-render without another fetch.
func (h *handler) renderDashboard(w http.ResponseWriter, r *http.Request, events []eazyfest.Event, message string, errorMessages ...string) {
	ctx := r.Context()
	query := r.URL.Query()
	session := auth.GetSession(r)

	state := models.Reconcile(
		models.ParsePrevViewState(query, string(models.EventFilterUpcoming)),
		models.ParseViewState(query, string(models.EventFilterUpcoming)),
	)

	today := xtime.Today()
	filtered := models.FilterEvents(events, state, today)

	pageSize := gridPageSize
	if state.View == models.ViewModeList {
		pageSize = listPageSize
	}
	page := models.Paginate(filtered, state.Page, pageSize)

	cards := make([]models.EventCard, 0, len(page.Items))
	for _, event := range page.Items {
		pending := h.registering.State(actionKey{SessionID: session.ID, ID: event.ID}) == tsync.ActionPending
		cards = append(cards, models.NewEventCard(event, today, pending))
	}

	if err := h.Templates().ExecuteTemplate(w, "dashboard.gohtml", DashboardVars{
		Session: session,
		Path:    "/",
		State:   state,
		Stats:   models.CalcEventStats(events, today),
		Page: models.Page[models.EventCard]{
			Items:      cards,
			Index:      page.Index,
			TotalPages: page.TotalPages,
			Total:      page.Total,
		},
		Message: message,
		Errors:  errorMessages,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render dashboard template", slog.Any("err", err))
	}
}
