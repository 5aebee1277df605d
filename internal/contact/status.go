package contact

import "errors"

// Status is the submission lifecycle state of one form
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// FailureMessage is shown in the form banner when the relay rejects a submission
const FailureMessage = "Something went wrong while sending your message. Please try again."

var (
	// ErrSubmissionInFlight is returned while a relay call for the form is pending
	ErrSubmissionInFlight = errors.New("contact: submission already in flight")
	// ErrAwaitingReset is returned when submitting or editing a form that already succeeded
	ErrAwaitingReset = errors.New("contact: form must be reset before sending another message")
	// ErrInvalidTransition is returned for a reset outside the success state
	ErrInvalidTransition = errors.New("contact: invalid status transition")
	// ErrUnknownField is returned when setting a field the record does not have
	ErrUnknownField = errors.New("contact: unknown field")
	// ErrUnknownVariant is returned when parsing an unsupported variant name
	ErrUnknownVariant = errors.New("contact: unknown form variant")
)

// Result is the single outcome of a relayed submission
type Result struct {
	Status Status
	Err    error
}
