package contact

import "fmt"

// Variant selects one of the two header dropdown field sets
type Variant string

const (
	VariantOrganization Variant = "organization"
	VariantIndividual   Variant = "individual"
)

// Variants lists the accepted variant names
func Variants() []string {
	return []string{string(VariantOrganization), string(VariantIndividual)}
}

// ParseVariant converts a submitted variant name
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantOrganization, VariantIndividual:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// FirstField returns the key of the field that receives focus when the variant is shown
func (v Variant) FirstField() string {
	if v == VariantIndividual {
		return FieldFullName
	}
	return FieldContactName
}

// Label is the human readable name of the variant
func (v Variant) Label() string {
	if v == VariantIndividual {
		return "Individual"
	}
	return "Organization"
}
