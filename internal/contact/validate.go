package contact

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MinRationaleLength is the minimum trimmed length of the needs and reason fields
const MinRationaleLength = 20

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)
)

var requiredMessages = map[string]string{
	FieldContactName:      "Contact name required",
	FieldEmail:            "Email required",
	FieldOrganizationName: "Company name required",
	FieldNeedsDescription: "Please describe your needs",
	FieldFullName:         "Full name required",
	FieldDateOfBirth:      "Date of birth required",
	FieldPhone:            "Phone number required",
	FieldAddress:          "City and state required",
	FieldReason:           "Please share your reason",
	FieldName:             "Name required",
	FieldCompany:          "Company required",
	FieldMessage:          "Message required",
}

// ValidationErrors maps a field key to the message shown next to that field
type ValidationErrors map[string]string

// Error lists the invalid fields in key order
func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "contact: invalid fields: " + strings.Join(keys, ", ")
}

// Has reports whether field has an error
func (v ValidationErrors) Has(field string) bool {
	_, ok := v[field]
	return ok
}

func (v ValidationErrors) clone() ValidationErrors {
	if len(v) == 0 {
		return nil
	}
	out := make(ValidationErrors, len(v))
	for k, msg := range v {
		out[k] = msg
	}
	return out
}

var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return fld.Tag.Get("form")
		})

		mustRegister(v, "trimmed_required", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		mustRegister(v, "email_shape", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})
		mustRegister(v, "phone_shape", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})
		mustRegister(v, "trimmed_min", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
		})

		validatorInstance = v
	})

	return validatorInstance
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// validateRecord runs the struct rules of a field record. Every failing field is
// reported, each with the message of its first failing rule.
func validateRecord(record any) ValidationErrors {
	err := getValidator().Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		panic(fmt.Sprintf("contact: validate %T: %v", record, err))
	}

	out := make(ValidationErrors, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = message(fe.Field(), fe.Tag(), fe.Param())
	}
	return out
}

func message(field, tag, param string) string {
	switch tag {
	case "trimmed_required":
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
		return "Required"
	case "email_shape":
		return "Invalid email format"
	case "phone_shape":
		return "Invalid phone format"
	case "trimmed_min":
		return fmt.Sprintf("Minimum %s characters required", param)
	default:
		return "Invalid value"
	}
}

// Validate checks raw submitted values against the rules of a dropdown variant.
// Keys the variant does not know are ignored.
func Validate(variant Variant, values map[string]string) ValidationErrors {
	switch variant {
	case VariantIndividual:
		var f IndividualFields
		for k, v := range values {
			_ = f.Set(k, v)
		}
		return f.Validate()
	default:
		var f OrganizationFields
		for k, v := range values {
			_ = f.Set(k, v)
		}
		return f.Validate()
	}
}
