package pages

import (
	"strconv"

	"hackerstories/models"

	"github.com/rohanthewiz/element"
)

// List renders already-filtered stories, one keyed Item per story.
// An empty list still renders its <ul>.
type List struct {
	Stories []models.Story
}

// Render implements element.Component
func (l List) Render(b *element.Builder) (x any) {
	b.Ul("class", "story-list", "id", "story-list").R(
		func() (x any) {
			for _, story := range l.Stories {
				// the key stays here; Item only gets the fields it shows
				id, fields := story.Split()
				b.Li("class", "story", "data-key", strconv.Itoa(id)).R(
					element.RenderComponents(b, Item{StoryFields: fields}),
				)
			}
			return
		}(),
	)
	return
}
