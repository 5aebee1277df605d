package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northbeam-capital/website/internal/content"
)

func Hero(site content.Site) g.Node {
	return g.Group([]g.Node{
		Div(
			Class("relative z-2 overflow-hidden"),
			ID("hero"),

			Div(Class("absolute inset-0 -z-1 opacity-20 grainy")),

			Div(
				Class("container flex items-center justify-center pt-28 md:pt-36 xl:pt-44 pb-20 md:pb-28 xl:pb-36"),
				Div(
					Class("w-100 text-center md:w-120 xl:w-160 2xl:w-200"),

					Div(
						Class("flex justify-center"),
						Span(
							Class("inline-flex items-center rounded-full border border-base-300 bg-base-200/60 py-0.5 ps-1 pe-2 text-sm"),
							Span(
								Class("flex justify-center items-center bg-primary/10 px-1.5 py-0 border border-primary/10 rounded-full font-medium text-primary text-xs"),
								g.Text("FREE"),
							),
							g.Text(" 30-minute discovery call"),
						),
					),

					P(
						Class("mt-3 text-2xl leading-tight font-extrabold tracking-[-0.5px] md:text-4xl xl:text-5xl 2xl:text-6xl"),
						g.Text(site.Headline),
						Br(),
						Span(
							Class("from-secondary via-accent to-primary bg-linear-to-r bg-clip-text text-transparent"),
							g.Text(site.Highlight),
						),
					),

					P(
						Class("text-base-content/80 mt-5 xl:text-lg"),
						g.Text(site.Subheadline),
					),

					Div(
						Class("mt-8 inline-flex justify-center gap-3"),
						A(
							Href("#contact"),
							Class("btn btn-primary shadow-primary/20 shadow-xl"),
							Icon("lucide--calendar size-4", ""),
							g.Text("Book a call"),
						),
						A(
							Href("#services"),
							Class("btn btn-ghost"),
							Icon("lucide--arrow-down size-4", ""),
							g.Text("Our services"),
						),
					),
				),
			),
		),

		Div(Class("from-secondary via-accent to-primary mb-8 h-1 w-full bg-linear-to-r md:mb-12 xl:mb-16")),
	})
}
