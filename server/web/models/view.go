package models

import (
	"net/url"
	"strconv"

	"github.com/Muralis01/event-fest/internal/xquery"
)

type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

func ParseViewMode(value string) ViewMode {
	if value == string(ViewModeList) {
		return ViewModeList
	}
	return ViewModeGrid
}

type EventFilter string

const (
	EventFilterAll      EventFilter = "all"
	EventFilterUpcoming EventFilter = "upcoming"
	EventFilterPast     EventFilter = "past"
)

func ParseEventFilter(value string) EventFilter {
	switch EventFilter(value) {
	case EventFilterAll, EventFilterUpcoming, EventFilterPast:
		return EventFilter(value)
	}
	return EventFilterUpcoming
}

type RegistrationFilter string

const (
	RegistrationFilterAll      RegistrationFilter = "all"
	RegistrationFilterUpcoming RegistrationFilter = "upcoming"
	RegistrationFilterAttended RegistrationFilter = "attended"
	RegistrationFilterMissed   RegistrationFilter = "missed"
)

func ParseRegistrationFilter(value string) RegistrationFilter {
	switch RegistrationFilter(value) {
	case RegistrationFilterAll, RegistrationFilterUpcoming, RegistrationFilterAttended, RegistrationFilterMissed:
		return RegistrationFilter(value)
	}
	return RegistrationFilterAll
}

// ViewState is the per-screen, client-only view state: search text, selected
// filter, grid/list mode, and the 0-based page index. It lives entirely in
// the URL and is discarded on navigation away.
type ViewState struct {
	Query  string
	Filter string
	View   ViewMode
	Page   int
}

// ParseViewState reads the requested view state from the query string.
func ParseViewState(query url.Values, defaultFilter string) ViewState {
	return ViewState{
		Query:  query.Get("q"),
		Filter: xquery.ParseString(query, "filter", defaultFilter),
		View:   ParseViewMode(query.Get("view")),
		Page:   xquery.ParseInt(query, "page", 0),
	}
}

// ParsePrevViewState reads the view state the page carrying the request was
// rendered with. Forms and pagination links embed it so Reconcile can tell a
// page navigation apart from a filter change.
func ParsePrevViewState(query url.Values, defaultFilter string) ViewState {
	return ViewState{
		Query:  query.Get("pq"),
		Filter: xquery.ParseString(query, "pf", defaultFilter),
		View:   ParseViewMode(query.Get("pv")),
	}
}

// Reconcile resets the page index to 0 whenever the search query, filter, or
// view mode changed; plain page navigation keeps the requested page.
func Reconcile(prev ViewState, next ViewState) ViewState {
	if prev.Query != next.Query || prev.Filter != next.Filter || prev.View != next.View {
		next.Page = 0
	}
	return next
}

// URL encodes the state into a link to the given page index, including the
// "p*" copies that ParsePrevViewState reads on the next request.
func (s ViewState) URL(path string, page int) string {
	values := url.Values{}
	if s.Query != "" {
		values.Set("q", s.Query)
		values.Set("pq", s.Query)
	}
	values.Set("filter", s.Filter)
	values.Set("pf", s.Filter)
	values.Set("view", string(s.View))
	values.Set("pv", string(s.View))
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	return path + "?" + values.Encode()
}

// WithFilter returns a copy of the state pointing at the given filter with
// the page reset.
func (s ViewState) WithFilter(filter string) ViewState {
	s.Filter = filter
	s.Page = 0
	return s
}

// WithView returns a copy of the state in the given view mode with the page
// reset.
func (s ViewState) WithView(view ViewMode) ViewState {
	s.View = view
	s.Page = 0
	return s
}
