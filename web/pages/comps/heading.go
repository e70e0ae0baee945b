package comps

import (
	"html"

	"github.com/rohanthewiz/element"
)

// Heading is the fixed page heading
type Heading struct {
	Title string
}

func (h Heading) Render(b *element.Builder) (x any) {
	b.H1("class", "app-heading").T(html.EscapeString(h.Title))
	return
}
