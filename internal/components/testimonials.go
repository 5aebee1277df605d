package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northbeam-capital/website/internal/content"
)

// Testimonials shows the quote at index with previous and next controls.
// Nothing is rendered for an empty list.
func Testimonials(items []content.Testimonial, index int) g.Node {
	if len(items) == 0 {
		return g.Group(nil)
	}
	if index < 0 || index >= len(items) {
		index = 0
	}
	current := items[index]

	return Div(
		ID("testimonials"),
		Class("py-8 md:py-12 xl:py-16 container"),
		g.Attr("role", "region"),
		g.Attr("aria-roledescription", "carousel"),
		g.Attr("aria-label", "Client testimonials"),

		Div(
			Class("text-center mb-8"),
			IconBadge("lucide--quote", "secondary"),
			P(Class("mt-4 font-semibold text-xl sm:text-2xl"), g.Text("What Our Clients Say")),
		),

		Div(
			Class("max-w-3xl mx-auto card bg-base-200/40 border border-base-300"),
			Div(
				Class("card-body items-center text-center"),
				g.Attr("aria-live", "polite"),
				g.El("blockquote",
					Class("text-lg leading-relaxed"),
					g.Text(fmt.Sprintf("“%s”", current.Quote)),
				),
				P(Class("mt-4 font-semibold"), g.Text(current.Author)),
				P(Class("text-sm text-base-content/60"), g.Text(current.Role)),
			),
		),

		Div(
			Class("flex justify-center items-center gap-4 mt-6"),
			postForm("/testimonials/previous",
				Button(
					Type("submit"),
					Class("btn btn-circle btn-sm"),
					g.Attr("aria-label", "Previous testimonial"),
					Icon("lucide--chevron-left size-4", ""),
				),
			),
			Span(
				Class("text-sm text-base-content/70 tabular-nums"),
				g.Text(fmt.Sprintf("%d / %d", index+1, len(items))),
			),
			postForm("/testimonials/next",
				Button(
					Type("submit"),
					Class("btn btn-circle btn-sm"),
					g.Attr("aria-label", "Next testimonial"),
					Icon("lucide--chevron-right size-4", ""),
				),
			),
		),
	)
}
