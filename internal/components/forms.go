package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northbeam-capital/website/internal/contact"
)

// Field describes how one record field is rendered
type Field struct {
	Key          string
	Label        string
	Type         string
	Placeholder  string
	Autocomplete string
}

const typeTextarea = "textarea"

var OrganizationFields = []Field{
	{Key: contact.FieldContactName, Label: "Contact name", Type: "text", Autocomplete: "name"},
	{Key: contact.FieldEmail, Label: "Email", Type: "email", Autocomplete: "email"},
	{Key: contact.FieldOrganizationName, Label: "Company name", Type: "text", Autocomplete: "organization"},
	{Key: contact.FieldNeedsDescription, Label: "Describe your needs", Type: typeTextarea, Placeholder: "What are you trying to achieve? (at least 20 characters)"},
}

var IndividualFields = []Field{
	{Key: contact.FieldFullName, Label: "Full name", Type: "text", Autocomplete: "name"},
	{Key: contact.FieldDateOfBirth, Label: "Date of birth", Type: "date", Autocomplete: "bday"},
	{Key: contact.FieldPhone, Label: "Phone", Type: "tel", Autocomplete: "tel", Placeholder: "+1 (555) 010-2030"},
	{Key: contact.FieldEmail, Label: "Email", Type: "email", Autocomplete: "email"},
	{Key: contact.FieldAddress, Label: "Address", Type: "text", Autocomplete: "street-address"},
	{Key: contact.FieldReason, Label: "Reason for contact", Type: typeTextarea, Placeholder: "How can we help? (at least 20 characters)"},
}

var PageFields = []Field{
	{Key: contact.FieldName, Label: "Name", Type: "text", Autocomplete: "name"},
	{Key: contact.FieldEmail, Label: "Email", Type: "email", Autocomplete: "email"},
	{Key: contact.FieldCompany, Label: "Company", Type: "text", Autocomplete: "organization"},
	{Key: contact.FieldMessage, Label: "Message", Type: typeTextarea, Placeholder: "Tell us a little about your project"},
}

// FormView is everything needed to render one contact form
type FormView struct {
	Action        string
	ResetAction   string
	DismissAction string
	IDPrefix      string
	Fields        []Field
	Value         func(key string) string
	Errors        contact.ValidationErrors
	Status        contact.Status
	Failure       string
	// Focus is the element id that receives autofocus, if any
	Focus       string
	SubmitLabel string
}

// ContactForm renders a form in its current lifecycle state. A successful form
// shows a confirmation with a reset action instead of the fields.
func ContactForm(v FormView) g.Node {
	if v.Status == contact.StatusSuccess {
		return SuccessPanel(v.ResetAction)
	}

	loading := v.Status == contact.StatusLoading

	return Div(
		Class("space-y-3"),

		g.If(v.Failure != "", FailureBanner(v.Failure, v.DismissAction)),

		g.El("form",
			g.Attr("method", "post"),
			g.Attr("action", v.Action),
			g.Attr("novalidate"),
			g.If(loading, g.Attr("aria-busy", "true")),
			Class("space-y-3"),

			g.Group(g.Map(v.Fields, func(f Field) g.Node {
				id := v.IDPrefix + f.Key
				return FieldControl(id, f, v.Value(f.Key), v.Errors[f.Key], v.Focus == id, loading)
			})),

			Button(
				Type("submit"),
				Class("btn btn-primary w-full"),
				disabled(loading),
				g.If(loading, g.Group([]g.Node{
					Span(Class("loading loading-spinner loading-sm"), g.Attr("aria-hidden", "true")),
					g.Text("Sending..."),
				})),
				g.If(!loading, g.Group([]g.Node{
					Icon("lucide--send size-4", ""),
					g.Text(v.SubmitLabel),
				})),
			),
		),
	)
}

// FieldControl renders a labelled input or textarea with its inline error
func FieldControl(id string, f Field, value, errMsg string, focus, locked bool) g.Node {
	errID := id + "-error"
	invalid := errMsg != ""

	attrs := g.Group([]g.Node{
		ID(id),
		Name(f.Key),
		g.If(f.Autocomplete != "", g.Attr("autocomplete", f.Autocomplete)),
		g.If(f.Placeholder != "", g.Attr("placeholder", f.Placeholder)),
		g.Attr("aria-required", "true"),
		g.If(invalid, g.Attr("aria-invalid", "true")),
		g.If(invalid, g.Attr("aria-describedby", errID)),
		autofocus(focus),
		disabled(locked),
	})

	var control g.Node
	if f.Type == typeTextarea {
		control = g.El("textarea",
			attrs,
			g.Attr("rows", "4"),
			Class(inputClass("textarea textarea-bordered w-full", invalid)),
			g.Text(value),
		)
	} else {
		control = Input(
			attrs,
			Type(f.Type),
			Value(value),
			Class(inputClass("input input-bordered w-full", invalid)),
		)
	}

	return Div(
		Class("form-control"),
		Label(
			g.Attr("for", id),
			Class("label"),
			Span(Class("label-text"), g.Text(f.Label)),
		),
		control,
		g.If(invalid, P(ID(errID), Class("mt-1 text-sm text-error"), g.Text(errMsg))),
	)
}

func inputClass(base string, invalid bool) string {
	if invalid {
		return base + " input-error"
	}
	return base
}

// FailureBanner is the form-level relay failure message with an optional
// dismiss action
func FailureBanner(message, dismissAction string) g.Node {
	return Div(
		g.Attr("role", "alert"),
		Class("alert alert-error"),
		Icon("lucide--circle-alert size-5", ""),
		Span(g.Text(message)),
		g.If(dismissAction != "", postForm(dismissAction,
			Button(
				Type("submit"),
				Class("btn btn-ghost btn-xs"),
				g.Attr("aria-label", "Dismiss"),
				Icon("lucide--x size-4", ""),
			),
		)),
	)
}

// SuccessPanel replaces a form after its message was relayed
func SuccessPanel(resetAction string) g.Node {
	return Div(
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		Class("flex flex-col items-center gap-3 py-6 text-center"),
		Span(
			Class("inline-flex items-center justify-center size-12 rounded-full bg-success/10 text-success"),
			Icon("lucide--circle-check size-6", ""),
		),
		P(Class("font-semibold text-lg"), g.Text("Thank you!")),
		P(Class("text-sm text-base-content/80"), g.Text("Your message has been sent. We will get back to you within two business days.")),
		postForm(resetAction,
			Button(Type("submit"), Class("btn btn-ghost btn-sm"), g.Text("Send another message")),
		),
	)
}
