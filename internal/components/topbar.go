package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northbeam-capital/website/internal/contact"
	"github.com/northbeam-capital/website/internal/widget"
)

// PanelView is the dropdown state and both variant forms for one render
type PanelView struct {
	State        widget.DropdownState
	Organization contact.Snapshot[contact.OrganizationFields]
	Individual   contact.Snapshot[contact.IndividualFields]
}

var navLinks = []struct {
	Href  string
	Label string
}{
	{"#services", "Services"},
	{"#process", "Process"},
	{"#testimonials", "Clients"},
	{"#contact", "Contact"},
}

func Topbar(siteName string, p PanelView) g.Node {
	return Div(
		Class("fixed inset-x-0 top-0 z-[60] flex justify-center sm:top-4"),

		Div(
			Class("flex justify-between items-center bg-base-100/90 backdrop-blur shadow px-3 sm:px-6 py-3 sm:rounded-full w-full sm:container"),

			A(
				Href("#top"),
				Logo(siteName),
			),

			Ul(
				Class("hidden lg:inline-flex gap-2 px-0 menu menu-horizontal"),
				g.Group(g.Map(navLinks, func(l struct {
					Href  string
					Label string
				}) g.Node {
					return Li(A(Href(l.Href), g.Text(l.Label)))
				})),
			),

			Div(
				ID("contact-dropdown"),
				Class("relative"),
				g.Attr("data-open", strconv.FormatBool(p.State.Open)),

				postForm("/contact/panel/toggle",
					Button(
						ID(widget.ToggleID),
						Type("submit"),
						Class("btn btn-primary btn-sm gap-2"),
						g.Attr("aria-haspopup", "dialog"),
						g.Attr("aria-expanded", strconv.FormatBool(p.State.Open)),
						g.Attr("aria-controls", widget.PanelID),
						autofocus(p.State.Focus == widget.ToggleID),
						Icon("lucide--mail size-4", ""),
						g.Text("Contact us"),
					),
				),

				g.If(p.State.Open, ContactPanel(p)),
			),
		),
	)
}

// ContactPanel is the dropdown dialog with the variant switch and the form of
// the selected variant
func ContactPanel(p PanelView) g.Node {
	return Div(
		ID(widget.PanelID),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "false"),
		g.Attr("aria-labelledby", widget.PanelHeadingID),
		Class("absolute end-0 mt-3 w-[24rem] max-w-[calc(100vw-1.5rem)] card bg-base-100 border border-base-300 shadow-xl"),

		Div(
			Class("card-body gap-4"),

			Div(
				Class("flex items-center justify-between"),
				H3(ID(widget.PanelHeadingID), Class("font-semibold text-lg"), g.Text("Get in touch")),
				postForm("/contact/panel/close",
					Button(
						Type("submit"),
						Class("btn btn-ghost btn-sm btn-square"),
						g.Attr("aria-label", "Close contact panel"),
						Icon("lucide--x size-4", ""),
					),
				),
			),

			VariantSwitch(p.State.Variant),

			g.If(p.State.Variant == contact.VariantOrganization, ContactForm(FormView{
				Action:        "/contact/panel/submit",
				ResetAction:   "/contact/panel/reset",
				DismissAction: "/contact/panel/dismiss-error",
				IDPrefix:      widget.FieldID(contact.VariantOrganization, ""),
				Fields:        OrganizationFields,
				Value:         p.Organization.Values.Get,
				Errors:        p.Organization.Errors,
				Status:        p.Organization.Status,
				Failure:       p.Organization.Failure,
				Focus:         p.State.Focus,
				SubmitLabel:   "Send enquiry",
			})),

			g.If(p.State.Variant == contact.VariantIndividual, ContactForm(FormView{
				Action:        "/contact/panel/submit",
				ResetAction:   "/contact/panel/reset",
				DismissAction: "/contact/panel/dismiss-error",
				IDPrefix:      widget.FieldID(contact.VariantIndividual, ""),
				Fields:        IndividualFields,
				Value:         p.Individual.Values.Get,
				Errors:        p.Individual.Errors,
				Status:        p.Individual.Status,
				Failure:       p.Individual.Failure,
				Focus:         p.State.Focus,
				SubmitLabel:   "Send enquiry",
			})),
		),
	)
}

// VariantSwitch posts the selected variant; the active one is marked pressed
func VariantSwitch(selected contact.Variant) g.Node {
	variants := []contact.Variant{contact.VariantOrganization, contact.VariantIndividual}

	return postForm("/contact/panel/variant",
		Div(
			g.Attr("role", "group"),
			g.Attr("aria-label", "I am contacting you as"),
			Class("join w-full"),
			g.Group(g.Map(variants, func(v contact.Variant) g.Node {
				active := v == selected
				class := "btn btn-sm join-item flex-1"
				if active {
					class += " btn-active btn-primary"
				}
				return Button(
					Type("submit"),
					Name("variant"),
					Value(string(v)),
					Class(class),
					g.Attr("aria-pressed", strconv.FormatBool(active)),
					g.Text(v.Label()),
				)
			})),
		),
	)
}
