package shared

import "github.com/rohanthewiz/element"

// Footer is stateless - an empty struct is enough
type Footer struct{}

// Render implements element.Component
func (f Footer) Render(b *element.Builder) any {
	b.Footer("class", "page-footer").R(
		b.P().T("Stories are a fixed list; search filters titles as you type."),
	)
	return nil
}
