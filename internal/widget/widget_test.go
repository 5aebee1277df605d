package widget

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northbeam-capital/website/internal/contact"
	"github.com/northbeam-capital/website/internal/relay"
)

type okRelay struct{}

func (okRelay) Send(context.Context, relay.Destination, relay.Payload) error { return nil }

func newTestDropdown() *Dropdown {
	return NewDropdown(okRelay{}, relay.Destination{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDropdown_OpenFocusesFirstFieldOfVariant(t *testing.T) {
	d := newTestDropdown()
	assert.False(t, d.IsOpen())

	d.Open()
	assert.Equal(t, DropdownState{Open: true, Variant: contact.VariantOrganization, Focus: "org-contactName"}, d.State())

	d.Close()
	require.NoError(t, d.SelectVariant(contact.VariantIndividual))
	d.Toggle()
	assert.Equal(t, "ind-fullName", d.State().Focus)
}

func TestDropdown_EscapeReturnsFocusToToggle(t *testing.T) {
	d := newTestDropdown()
	d.Open()

	d.Escape()
	state := d.State()
	assert.False(t, state.Open)
	assert.Equal(t, ToggleID, state.Focus)
}

func TestDropdown_EscapeWhenClosedIsNoop(t *testing.T) {
	d := newTestDropdown()
	d.Escape()
	assert.Equal(t, DropdownState{Variant: contact.VariantOrganization}, d.State())
}

func TestDropdown_PointerDown(t *testing.T) {
	tests := []struct {
		target   Target
		wantOpen bool
	}{
		{TargetPanel, true},
		{TargetToggle, true},
		{TargetOutside, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			d := newTestDropdown()
			d.Open()
			d.PointerDown(tt.target)
			assert.Equal(t, tt.wantOpen, d.IsOpen())
		})
	}
}

func TestDropdown_Toggle(t *testing.T) {
	d := newTestDropdown()
	d.Toggle()
	assert.True(t, d.IsOpen())
	d.Toggle()
	assert.False(t, d.IsOpen())
	assert.Empty(t, d.State().Focus)
}

func TestDropdown_SelectVariantClearsErrorsKeepsValues(t *testing.T) {
	d := newTestDropdown()
	d.Open()

	require.NoError(t, d.Organization.Change(contact.FieldContactName, "Ada"))
	require.NoError(t, d.Individual.Change(contact.FieldPhone, "call me"))

	_, err := d.Organization.Submit(context.Background())
	require.Error(t, err)
	_, err = d.Individual.Submit(context.Background())
	require.Error(t, err)
	require.NotEmpty(t, d.Organization.Snapshot().Errors)
	require.NotEmpty(t, d.Individual.Snapshot().Errors)

	require.NoError(t, d.SelectVariant(contact.VariantIndividual))

	assert.Empty(t, d.Organization.Snapshot().Errors)
	assert.Empty(t, d.Individual.Snapshot().Errors)
	assert.Equal(t, "Ada", d.Organization.Snapshot().Values.ContactName)
	assert.Equal(t, "call me", d.Individual.Snapshot().Values.Phone)
	assert.Equal(t, contact.VariantIndividual, d.Variant())
	assert.Equal(t, "ind-fullName", d.State().Focus)

	require.NoError(t, d.SelectVariant(contact.VariantOrganization))
	assert.Equal(t, "Ada", d.Organization.Snapshot().Values.ContactName)
}

func TestDropdown_SelectUnknownVariant(t *testing.T) {
	d := newTestDropdown()
	err := d.SelectVariant(contact.Variant("company"))
	assert.ErrorIs(t, err, contact.ErrUnknownVariant)
	assert.Equal(t, contact.VariantOrganization, d.Variant())
}

func TestDropdown_ConsumeFocusOnce(t *testing.T) {
	d := newTestDropdown()
	d.Open()

	first := d.ConsumeFocus()
	assert.Equal(t, "org-contactName", first.Focus)
	assert.True(t, first.Open)

	assert.Empty(t, d.ConsumeFocus().Focus)
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget("outside")
	require.NoError(t, err)
	assert.Equal(t, TargetOutside, target)

	_, err = ParseTarget("window")
	assert.Error(t, err)
}

func TestCarousel_NextWrapsAfterN(t *testing.T) {
	for n := 1; n <= 5; n++ {
		c := NewCarousel(n)
		for i := 0; i < n; i++ {
			c.Next()
		}
		assert.Equal(t, 0, c.Index(), "n=%d", n)
	}
}

func TestCarousel_PreviousFromZero(t *testing.T) {
	c := NewCarousel(4)
	assert.Equal(t, 3, c.Previous())
	assert.Equal(t, 2, c.Previous())
	assert.Equal(t, 3, c.Next())
}

func TestCarousel_SingleItem(t *testing.T) {
	c := NewCarousel(1)
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 0, c.Previous())
}

func TestCarousel_Empty(t *testing.T) {
	c := NewCarousel(0)
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 0, c.Previous())
	assert.Equal(t, 0, NewCarousel(-3).Len())
}

func TestFieldID(t *testing.T) {
	assert.Equal(t, "org-email", FieldID(contact.VariantOrganization, contact.FieldEmail))
	assert.True(t, strings.HasPrefix(FieldID(contact.VariantIndividual, contact.FieldEmail), "ind-"))
}
