package contact

import (
	"fmt"
	"strings"

	"github.com/northbeam-capital/website/internal/relay"
)

// Field keys, shared by validation errors, HTML inputs and Set
const (
	FieldContactName      = "contactName"
	FieldEmail            = "email"
	FieldOrganizationName = "organizationName"
	FieldNeedsDescription = "needsDescription"

	FieldFullName    = "fullName"
	FieldDateOfBirth = "dateOfBirth"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldReason      = "reason"

	FieldName    = "name"
	FieldCompany = "company"
	FieldMessage = "message"
)

// OrganizationFields is the organization variant of the dropdown form
type OrganizationFields struct {
	ContactName      string `form:"contactName" validate:"trimmed_required"`
	Email            string `form:"email" validate:"trimmed_required,email_shape"`
	OrganizationName string `form:"organizationName" validate:"trimmed_required"`
	NeedsDescription string `form:"needsDescription" validate:"trimmed_required,trimmed_min=20"`
}

// OrganizationFieldOrder lists the organization fields in display order
var OrganizationFieldOrder = []string{FieldContactName, FieldEmail, FieldOrganizationName, FieldNeedsDescription}

func (f *OrganizationFields) Set(field, value string) error {
	switch field {
	case FieldContactName:
		f.ContactName = value
	case FieldEmail:
		f.Email = value
	case FieldOrganizationName:
		f.OrganizationName = value
	case FieldNeedsDescription:
		f.NeedsDescription = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

func (f OrganizationFields) Get(field string) string {
	switch field {
	case FieldContactName:
		return f.ContactName
	case FieldEmail:
		return f.Email
	case FieldOrganizationName:
		return f.OrganizationName
	case FieldNeedsDescription:
		return f.NeedsDescription
	}
	return ""
}

func (f OrganizationFields) Validate() ValidationErrors {
	return validateRecord(f)
}

// Payload maps the record onto the relay template parameters
func (f OrganizationFields) Payload() relay.Payload {
	email := strings.TrimSpace(f.Email)
	return relay.Payload{
		"form_type": "Company",
		"name":      strings.TrimSpace(f.ContactName),
		"email":     email,
		"company":   strings.TrimSpace(f.OrganizationName),
		"message":   strings.TrimSpace(f.NeedsDescription),
		"reply_to":  email,
	}
}

// IndividualFields is the individual variant of the dropdown form
type IndividualFields struct {
	FullName    string `form:"fullName" validate:"trimmed_required"`
	DateOfBirth string `form:"dateOfBirth" validate:"trimmed_required"`
	Phone       string `form:"phone" validate:"trimmed_required,phone_shape"`
	Email       string `form:"email" validate:"trimmed_required,email_shape"`
	Address     string `form:"address" validate:"trimmed_required"`
	Reason      string `form:"reason" validate:"trimmed_required,trimmed_min=20"`
}

// IndividualFieldOrder lists the individual fields in display order
var IndividualFieldOrder = []string{FieldFullName, FieldDateOfBirth, FieldPhone, FieldEmail, FieldAddress, FieldReason}

func (f *IndividualFields) Set(field, value string) error {
	switch field {
	case FieldFullName:
		f.FullName = value
	case FieldDateOfBirth:
		f.DateOfBirth = value
	case FieldPhone:
		f.Phone = value
	case FieldEmail:
		f.Email = value
	case FieldAddress:
		f.Address = value
	case FieldReason:
		f.Reason = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

func (f IndividualFields) Get(field string) string {
	switch field {
	case FieldFullName:
		return f.FullName
	case FieldDateOfBirth:
		return f.DateOfBirth
	case FieldPhone:
		return f.Phone
	case FieldEmail:
		return f.Email
	case FieldAddress:
		return f.Address
	case FieldReason:
		return f.Reason
	}
	return ""
}

func (f IndividualFields) Validate() ValidationErrors {
	return validateRecord(f)
}

func (f IndividualFields) Payload() relay.Payload {
	email := strings.TrimSpace(f.Email)
	return relay.Payload{
		"form_type": "Individual",
		"name":      strings.TrimSpace(f.FullName),
		"dob":       strings.TrimSpace(f.DateOfBirth),
		"phone":     strings.TrimSpace(f.Phone),
		"email":     email,
		"address":   strings.TrimSpace(f.Address),
		"message":   strings.TrimSpace(f.Reason),
		"reply_to":  email,
	}
}

// PageFields is the page-level contact form. Every field is required; the
// message has no minimum length.
type PageFields struct {
	Name    string `form:"name" validate:"trimmed_required"`
	Email   string `form:"email" validate:"trimmed_required,email_shape"`
	Company string `form:"company" validate:"trimmed_required"`
	Message string `form:"message" validate:"trimmed_required"`
}

// PageFieldOrder lists the page form fields in display order
var PageFieldOrder = []string{FieldName, FieldEmail, FieldCompany, FieldMessage}

func (f *PageFields) Set(field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldCompany:
		f.Company = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

func (f PageFields) Get(field string) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldCompany:
		return f.Company
	case FieldMessage:
		return f.Message
	}
	return ""
}

func (f PageFields) Validate() ValidationErrors {
	return validateRecord(f)
}

// Payload has no form_type: the page form has its own destination
func (f PageFields) Payload() relay.Payload {
	email := strings.TrimSpace(f.Email)
	return relay.Payload{
		"name":     strings.TrimSpace(f.Name),
		"email":    email,
		"company":  strings.TrimSpace(f.Company),
		"message":  strings.TrimSpace(f.Message),
		"reply_to": email,
	}
}
