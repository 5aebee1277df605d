package components

import (
	"fmt"
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(siteName, tagline string) g.Node {
	currentYear := strconv.Itoa(time.Now().Year())

	return Div(
		Class("relative"),

		Div(Class("z-0 absolute inset-0 opacity-20 grainy")),

		Div(
			Class("z-[2] relative pt-8 md:pt-12 xl:pt-16 container"),

			Div(
				Class("gap-6 grid grid-cols-2 md:grid-cols-5"),

				Div(
					Class("col-span-2"),
					Logo(siteName),

					P(
						Class("mt-3 max-sm:text-sm text-base-content/80"),
						g.Text(tagline),
					),

					Div(
						Class("flex items-center gap-2.5 mt-6"),
						A(Class("btn btn-sm btn-circle"), Href("#"), g.Attr("target", "_blank"),
							Icon("lucide--linkedin", "LinkedIn"),
						),
						A(Class("btn btn-sm btn-circle"), Href("#"), g.Attr("target", "_blank"),
							Icon("lucide--twitter", "Twitter"),
						),
						A(Class("btn btn-sm btn-circle"), Href("#contact"),
							Icon("lucide--mail", "Email"),
						),
					),
				),

				Div(Class("max-md:hidden xl:col-span-1")),

				Div(
					Class("col-span-1"),
					P(Class("font-medium"), g.Text("Services")),
					Div(
						Class("flex flex-col space-y-1.5 mt-5 text-base-content/80"),
						A(Href("#services"), g.Text("Portfolio Strategy")),
						A(Href("#services"), g.Text("Applied AI")),
						A(Href("#services"), g.Text("Due Diligence")),
					),
				),

				Div(
					Class("col-span-1"),
					P(Class("font-medium"), g.Text("Company")),
					Div(
						Class("flex flex-col space-y-1.5 mt-5 text-base-content/80"),
						A(Href("#process"), g.Text("How we work")),
						A(Href("#testimonials"), g.Text("Clients")),
						A(Href("#contact"), g.Text("Contact")),
					),
				),
			),

			Div(
				Class("flex flex-wrap justify-between items-center gap-3 mt-12 py-6 border-t border-base-300"),
				P(g.Text(fmt.Sprintf("© %s %s. All rights reserved.", currentYear, siteName))),
				P(Class("text-sm text-base-content/60"), g.Text("Nothing on this site is investment advice.")),
			),
		),
	)
}
