package pages

import (
	"html"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/logger"
)

// Search is a controlled text input. It shows Value and reports every change
// to OnSearch; it never keeps text of its own.
//
// The input sits in a GET form on "/", so pressing Enter applies the search
// even without the page script.
type Search struct {
	Value    string
	OnSearch string // name of the JS function called with the new value
}

// Render implements element.Component
func (s Search) Render(b *element.Builder) (x any) {
	logger.Debug("Search rendered", "value", s.Value)

	value := html.EscapeString(s.Value)

	b.DivClass("search").R(
		b.Form("method", "get", "action", "/", "class", "search-form").R(
			b.Label("for", "search").T("Search"),
			b.Input("id", "search", "name", "search", "type", "text",
				"value", value,
				"autocomplete", "off",
				"oninput", s.OnSearch+"(this.value)"),
		),
		b.P("id", "search-echo").R(
			b.T("Searching for "),
			b.Strong().T(value),
		),
	)
	return
}
