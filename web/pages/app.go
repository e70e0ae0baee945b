// Package pages contains the story browser page and its components.
// App is the root container; Search, List and Item are its children.
package pages

import (
	"hackerstories/models"
	"hackerstories/web/pages/comps"
	"hackerstories/web/pages/shared"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/logger"
)

// AppHeading is the fixed text of the page heading
const AppHeading = "My Hacker Stories"

// searchCallback is the browser-side hook the Search input reports changes to.
// It forwards the value back to HandleSearchChange via /partials/stories.
const searchCallback = "app.handleSearch"

// App is the root container. It owns the story list and, through State,
// the search text. Children get read-only values and a callback, never State itself.
type App struct {
	shared.Page
	Heading string
	Stories []models.Story
	State   *models.SearchState
}

// NewApp mounts a root container over stories with its own search state
func NewApp(stories []models.Story, state *models.SearchState) App {
	return App{
		Page:    shared.Page{Title: "Hacker Stories"},
		Heading: AppHeading,
		Stories: stories,
		State:   state,
	}
}

// HandleSearchChange is the search callback: it replaces the search text.
// There is nothing to validate; the next render re-derives the filtered view.
func (a App) HandleSearchChange(value string) {
	a.State.Set(value)
}

// Filtered derives the current view. It is recomputed on every call.
func (a App) Filtered() []models.Story {
	return models.SearchStories(a.Stories, a.State.Term())
}

// RenderPage produces the complete HTML document
func (a App) RenderPage() string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		a.Head(b),
		b.Body().R(
			element.RenderComponents(b, a),
			element.RenderComponents(b, a.Footer()),
			b.Script("src", "/static/js/app.js?v=1").R(),
		),
	)

	return b.String()
}

// RenderList renders only the List component for the current state.
// Used to swap the list in place while the user types.
func (a App) RenderList() string {
	b := element.NewBuilder()
	element.RenderComponents(b, List{Stories: a.Filtered()})
	return b.String()
}

// Render implements element.Component: heading, search, separator, list.
// The term is read once so the input, the echo and the list always agree.
func (a App) Render(b *element.Builder) (x any) {
	term := a.State.Term()
	filtered := models.SearchStories(a.Stories, term)
	logger.Debug("App rendered", "term", term, "matches", len(filtered))

	b.Div("class", "app", "id", "app").R(
		element.RenderComponents(b,
			comps.Heading{Title: a.Heading},
			Search{Value: term, OnSearch: searchCallback},
		),
		b.Hr(),
		element.RenderComponents(b, List{Stories: filtered}),
	)
	return
}
