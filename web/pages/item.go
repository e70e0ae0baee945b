package pages

import (
	"html"
	"strconv"

	"hackerstories/models"

	"github.com/rohanthewiz/element"
)

// Item renders one story row: a linked title, then author, comment count and points.
type Item struct {
	models.StoryFields
}

// Render implements element.Component
func (it Item) Render(b *element.Builder) (x any) {
	b.Span("class", "story-title").R(
		b.A("href", html.EscapeString(it.URL)).T(html.EscapeString(it.Title)),
	)
	b.Span("class", "story-author").T(html.EscapeString(it.Author))
	b.Span("class", "story-comments").T(strconv.Itoa(it.NumComments))
	b.Span("class", "story-points").T(strconv.Itoa(it.Points))
	return
}
