package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northbeam-capital/website/internal/contact"
)

// PageFieldPrefix prefixes the element ids of the page contact form
const PageFieldPrefix = "page-"

func ContactSection(form contact.Snapshot[contact.PageFields]) g.Node {
	return Div(
		ID("contact"),
		Class("py-8 md:py-12 xl:py-16 container"),

		Div(
			Class("grid grid-cols-1 lg:grid-cols-2 gap-10 items-start"),

			Div(
				IconBadge("lucide--messages-square", "accent"),
				P(Class("mt-4 font-bold text-2xl sm:text-3xl"), g.Text("Let's Talk")),
				P(
					Class("mt-3 max-w-lg text-base-content/80"),
					g.Text("Tell us where you are and where you want to be. A partner reads every message and replies within two business days."),
				),
				Ul(
					Class("mt-6 space-y-3"),
					contactPoint("lucide--clock", "Replies within two business days"),
					contactPoint("lucide--lock", "Your details are only used to answer you"),
					contactPoint("lucide--phone", "Prefer a call? Leave your number in the message"),
				),
			),

			Div(
				Class("card bg-base-100 border border-base-300 shadow"),
				Div(
					Class("card-body"),
					ContactForm(FormView{
						Action:        "/contact/page/submit",
						ResetAction:   "/contact/page/reset",
						DismissAction: "/contact/page/dismiss-error",
						IDPrefix:      PageFieldPrefix,
						Fields:        PageFields,
						Value:         form.Values.Get,
						Errors:        form.Errors,
						Status:        form.Status,
						Failure:       form.Failure,
						SubmitLabel:   "Send message",
					}),
				),
			),
		),
	)
}

func contactPoint(icon, text string) g.Node {
	return Li(
		Class("flex items-center gap-2 max-sm:text-sm"),
		Icon(icon+" size-5 text-success", ""),
		g.Text(text),
	)
}
