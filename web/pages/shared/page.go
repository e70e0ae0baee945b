// Package shared contains the document shell shared by every full page.
package shared

import "github.com/rohanthewiz/element"

// Page is embedded by full-page components. It renders the <head> and the footer
// so a page only has to supply its body content.
type Page struct {
	Title string
}

// Head renders the document head with the stylesheet and the page script.
// Assets are cache-busted by version query.
func (p Page) Head(b *element.Builder) any {
	return b.Head().R(
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Title().T(p.Title),
		b.Link("rel", "stylesheet", "href", "/static/css/app.css?v=1"),
	)
}

// Footer returns the page footer component
func (p Page) Footer() Footer {
	return Footer{}
}
