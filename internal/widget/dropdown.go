package widget

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/northbeam-capital/website/internal/contact"
	"github.com/northbeam-capital/website/internal/relay"
)

// Element ids shared with the rendered markup
const (
	ToggleID       = "contact-toggle"
	PanelID        = "contact-panel"
	PanelHeadingID = "contact-panel-heading"
)

// Target is where a pointer interaction landed relative to the dropdown
type Target string

const (
	TargetPanel   Target = "panel"
	TargetToggle  Target = "toggle"
	TargetOutside Target = "outside"
)

// ParseTarget converts a submitted pointer target
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetPanel, TargetToggle, TargetOutside:
		return Target(s), nil
	default:
		return "", fmt.Errorf("widget: unknown pointer target %q", s)
	}
}

// FieldID returns the element id of a variant's input
func FieldID(v contact.Variant, field string) string {
	if v == contact.VariantIndividual {
		return "ind-" + field
	}
	return "org-" + field
}

// Dropdown is the header contact panel. It owns the open flag, the selected
// variant, one form per variant and the element that should receive focus on
// the next render.
type Dropdown struct {
	Organization *contact.OrganizationForm
	Individual   *contact.IndividualForm

	mu      sync.Mutex
	open    bool
	variant contact.Variant
	focus   string
}

// DropdownState is a copy of the dropdown flags for rendering
type DropdownState struct {
	Open    bool
	Variant contact.Variant
	Focus   string
}

// NewDropdown creates a closed dropdown showing the organization variant.
// Both variants send to dest.
func NewDropdown(r relay.Relay, dest relay.Destination, log *slog.Logger) *Dropdown {
	return &Dropdown{
		Organization: contact.NewOrganizationForm(r, dest, log),
		Individual:   contact.NewIndividualForm(r, dest, log),
		variant:      contact.VariantOrganization,
	}
}

// Open shows the panel and moves focus to the first field of the selected variant
func (d *Dropdown) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.open = true
	d.focus = FieldID(d.variant, d.variant.FirstField())
}

// Close hides the panel without moving focus
func (d *Dropdown) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.open = false
	d.focus = ""
}

// Toggle flips the panel; opening behaves like Open
func (d *Dropdown) Toggle() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.open = !d.open
	if d.open {
		d.focus = FieldID(d.variant, d.variant.FirstField())
	} else {
		d.focus = ""
	}
}

// Escape closes an open panel and returns focus to the toggle control
func (d *Dropdown) Escape() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open {
		return
	}
	d.open = false
	d.focus = ToggleID
}

// PointerDown closes the panel when the interaction is outside both the panel
// and the toggle control
func (d *Dropdown) PointerDown(target Target) {
	if target != TargetOutside {
		return
	}
	d.Close()
}

// SelectVariant switches the visible field set. Validation errors of both
// variants are cleared; each variant keeps its own entered values.
func (d *Dropdown) SelectVariant(v contact.Variant) error {
	if _, err := contact.ParseVariant(string(v)); err != nil {
		return err
	}

	d.Organization.ClearErrors()
	d.Individual.ClearErrors()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.variant = v
	if d.open {
		d.focus = FieldID(v, v.FirstField())
	}
	return nil
}

// IsOpen reports whether the panel is shown
func (d *Dropdown) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Variant returns the selected variant
func (d *Dropdown) Variant() contact.Variant {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.variant
}

// State returns the current flags without consuming the focus target
func (d *Dropdown) State() DropdownState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DropdownState{Open: d.open, Variant: d.variant, Focus: d.focus}
}

// ConsumeFocus returns the pending focus target and clears it, so focus moves
// only once per event
func (d *Dropdown) ConsumeFocus() DropdownState {
	d.mu.Lock()
	defer d.mu.Unlock()

	state := DropdownState{Open: d.open, Variant: d.variant, Focus: d.focus}
	d.focus = ""
	return state
}
