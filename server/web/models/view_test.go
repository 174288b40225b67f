package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseViewState(t *testing.T) {
	query := url.Values{
		"q":      {"hack"},
		"filter": {"past"},
		"view":   {"list"},
		"page":   {"2"},
	}

	state := ParseViewState(query, "upcoming")
	assert.Equal(t, "hack", state.Query)
	assert.Equal(t, "past", state.Filter)
	assert.Equal(t, ViewModeList, state.View)
	assert.Equal(t, 2, state.Page)
}

func TestParseViewState_Defaults(t *testing.T) {
	state := ParseViewState(url.Values{}, "all")
	assert.Equal(t, "", state.Query)
	assert.Equal(t, "all", state.Filter)
	assert.Equal(t, ViewModeGrid, state.View)
	assert.Equal(t, 0, state.Page)
}

func TestReconcile_ResetsPageOnChange(t *testing.T) {
	prev := ViewState{Query: "hack", Filter: "all", View: ViewModeGrid}

	// Plain page navigation keeps the page.
	next := ViewState{Query: "hack", Filter: "all", View: ViewModeGrid, Page: 3}
	assert.Equal(t, 3, Reconcile(prev, next).Page)

	// Each of query, filter and view resets it.
	next = ViewState{Query: "fest", Filter: "all", View: ViewModeGrid, Page: 3}
	assert.Equal(t, 0, Reconcile(prev, next).Page)

	next = ViewState{Query: "hack", Filter: "past", View: ViewModeGrid, Page: 3}
	assert.Equal(t, 0, Reconcile(prev, next).Page)

	next = ViewState{Query: "hack", Filter: "all", View: ViewModeList, Page: 3}
	assert.Equal(t, 0, Reconcile(prev, next).Page)
}

func TestViewStateURL_RoundTrip(t *testing.T) {
	state := ViewState{Query: "hack", Filter: "past", View: ViewModeList}

	u, err := url.Parse(state.URL("/registrations", 2))
	assert.NoError(t, err)
	assert.Equal(t, "/registrations", u.Path)

	next := ParseViewState(u.Query(), "all")
	prev := ParsePrevViewState(u.Query(), "all")

	// Following the link is pure page navigation, so the page sticks.
	reconciled := Reconcile(prev, next)
	assert.Equal(t, 2, reconciled.Page)
	assert.Equal(t, state.Query, reconciled.Query)
	assert.Equal(t, state.Filter, reconciled.Filter)
	assert.Equal(t, state.View, reconciled.View)
}

func TestViewStateWithFilter(t *testing.T) {
	state := ViewState{Query: "hack", Filter: "all", View: ViewModeList, Page: 4}

	changed := state.WithFilter("upcoming")
	assert.Equal(t, "upcoming", changed.Filter)
	assert.Equal(t, 0, changed.Page)
	assert.Equal(t, "hack", changed.Query)

	// Original is unchanged.
	assert.Equal(t, 4, state.Page)
}

func TestParseFilters(t *testing.T) {
	assert.Equal(t, EventFilterUpcoming, ParseEventFilter("bogus"))
	assert.Equal(t, EventFilterPast, ParseEventFilter("past"))

	assert.Equal(t, RegistrationFilterAll, ParseRegistrationFilter("bogus"))
	assert.Equal(t, RegistrationFilterMissed, ParseRegistrationFilter("missed"))

	assert.Equal(t, ViewModeGrid, ParseViewMode("bogus"))
	assert.Equal(t, ViewModeList, ParseViewMode("list"))
}
