package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northbeam-capital/website/internal/content"
)

func Features(features []content.Feature) g.Node {
	return Div(
		ID("services"),
		Class("py-8 md:py-12 2xl:py-24 xl:py-16 container"),

		Div(
			Class("text-center"),
			IconBadge("lucide--sparkles", "primary"),
			P(
				Class("mt-4 font-semibold text-2xl sm:text-3xl"),
				g.Text("What We Do"),
			),
			P(
				Class("inline-block mt-3 max-w-2xl max-sm:text-sm text-base-content/70"),
				g.Text("Three practices, one team. We combine investment discipline with hands-on engineering so advice turns into results."),
			),
		),

		Div(
			Class("gap-6 2xl:gap-8 grid grid-cols-1 md:grid-cols-3 mt-12 xl:mt-16"),
			g.Group(g.Map(features, func(f content.Feature) g.Node {
				return Div(
					Class("hover:bg-base-200/40 border border-base-300 transition-all duration-300 card"),
					Div(
						Class("card-body"),
						IconBadge(f.Icon, f.Color),
						H3(Class("mt-4 font-semibold text-xl"), g.Text(f.Title)),
						P(Class("mt-2 text-sm text-base-content/80 leading-relaxed"), g.Text(f.Description)),
					),
				)
			})),
		),
	)
}

func Process(steps []content.Step) g.Node {
	return Div(
		ID("process"),
		Class("py-8 md:py-12 xl:py-16 container"),

		Div(
			Class("text-center mb-12"),
			P(Class("font-semibold text-xl sm:text-2xl"), g.Text("How We Work")),
			P(Class("mt-3 text-base-content/70 max-w-2xl mx-auto"), g.Text("A short, predictable path from first call to measurable outcome.")),
		),

		Ol(
			Class("grid grid-cols-1 md:grid-cols-2 xl:grid-cols-4 gap-6"),
			g.Group(g.Map(steps, func(s content.Step) g.Node {
				return Li(
					Class("card border border-base-300"),
					Div(
						Class("card-body"),
						Span(Class("font-black text-3xl text-primary/40"), g.Text(s.Number)),
						H3(Class("font-semibold text-lg"), g.Text(s.Title)),
						P(Class("text-sm text-base-content/80"), g.Text(s.Description)),
					),
				)
			})),
		),
	)
}
