package contact

import (
	"context"
	"log/slog"
	"sync"

	"github.com/northbeam-capital/website/internal/relay"
	"github.com/northbeam-capital/website/pkg/logger"
)

// Record is the constraint satisfied by a pointer to a field record
type Record[F any] interface {
	*F
	Get(field string) string
	Set(field, value string) error
	Validate() ValidationErrors
	Payload() relay.Payload
}

// Form owns one field record and drives its submission lifecycle:
//
//	idle ──submit──▶ loading ──relay ok──▶ success ──reset──▶ idle
//	                    │
//	                    └──relay failed──▶ error ──submit──▶ loading
//
// At most one relay call is in flight per Form.
type Form[F any, P Record[F]] struct {
	name  string
	relay relay.Relay
	dest  relay.Destination
	log   *slog.Logger

	mu      sync.Mutex
	values  F
	errors  ValidationErrors
	status  Status
	failure string
}

// Snapshot is a copy of a form's state for rendering
type Snapshot[F any] struct {
	Values  F
	Errors  ValidationErrors
	Status  Status
	Failure string
}

type (
	OrganizationForm = Form[OrganizationFields, *OrganizationFields]
	IndividualForm   = Form[IndividualFields, *IndividualFields]
	PageForm         = Form[PageFields, *PageFields]
)

// NewForm creates an idle form with an empty record
func NewForm[F any, P Record[F]](name string, r relay.Relay, dest relay.Destination, log *slog.Logger) *Form[F, P] {
	return &Form[F, P]{
		name:   name,
		relay:  r,
		dest:   dest,
		log:    log.With(logger.Scope("contact."+name)),
		status: StatusIdle,
	}
}

func NewOrganizationForm(r relay.Relay, dest relay.Destination, log *slog.Logger) *OrganizationForm {
	return NewForm[OrganizationFields, *OrganizationFields]("organization", r, dest, log)
}

func NewIndividualForm(r relay.Relay, dest relay.Destination, log *slog.Logger) *IndividualForm {
	return NewForm[IndividualFields, *IndividualFields]("individual", r, dest, log)
}

func NewPageForm(r relay.Relay, dest relay.Destination, log *slog.Logger) *PageForm {
	return NewForm[PageFields, *PageFields]("page", r, dest, log)
}

// Name identifies the form in logs and metrics
func (f *Form[F, P]) Name() string {
	return f.name
}

// Change sets one field. The field's error is dropped when its value changes.
// The record is read-only while loading and until a success is reset.
func (f *Form[F, P]) Change(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.editable(); err != nil {
		return err
	}
	return f.change(field, value)
}

// Update applies several field values at once, as posted by an HTML form
func (f *Form[F, P]) Update(values map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.editable(); err != nil {
		return err
	}
	for field, value := range values {
		if err := f.change(field, value); err != nil {
			return err
		}
	}
	return nil
}

func (f *Form[F, P]) editable() error {
	switch f.status {
	case StatusLoading:
		return ErrSubmissionInFlight
	case StatusSuccess:
		return ErrAwaitingReset
	}
	return nil
}

func (f *Form[F, P]) change(field, value string) error {
	record := P(&f.values)
	old := record.Get(field)
	if err := record.Set(field, value); err != nil {
		return err
	}
	if value != old {
		delete(f.errors, field)
	}
	return nil
}

// Submit validates the record and, if valid, starts exactly one relay call.
//
// Invalid records are rejected with the ValidationErrors (also kept on the form).
// The returned channel yields the relay outcome once and is then closed. The relay
// call is detached from ctx cancellation so it completes even if the caller leaves.
func (f *Form[F, P]) Submit(ctx context.Context) (<-chan Result, error) {
	f.mu.Lock()

	switch f.status {
	case StatusLoading:
		f.mu.Unlock()
		submissionsTotal.WithLabelValues(f.name, "in_flight").Inc()
		return nil, ErrSubmissionInFlight
	case StatusSuccess:
		f.mu.Unlock()
		return nil, ErrAwaitingReset
	}

	if errs := P(&f.values).Validate(); len(errs) > 0 {
		f.errors = errs
		f.mu.Unlock()
		submissionsTotal.WithLabelValues(f.name, "invalid").Inc()
		return nil, errs.clone()
	}

	payload := P(&f.values).Payload()
	f.status = StatusLoading
	f.errors = nil
	f.failure = ""
	f.mu.Unlock()

	submissionsTotal.WithLabelValues(f.name, "accepted").Inc()

	done := make(chan Result, 1)
	go f.send(context.WithoutCancel(ctx), payload, done)
	return done, nil
}

func (f *Form[F, P]) send(ctx context.Context, payload relay.Payload, done chan<- Result) {
	defer close(done)

	err := f.relay.Send(ctx, f.dest, payload)

	f.mu.Lock()
	if err != nil {
		f.status = StatusError
		f.failure = FailureMessage
		f.log.Warn("contact submission failed", logger.Error(err))
	} else {
		var zero F
		f.values = zero
		f.errors = nil
		f.status = StatusSuccess
		f.log.Info("contact submission relayed")
	}
	res := Result{Status: f.status, Err: err}
	f.mu.Unlock()

	done <- res
}

// Reset returns a successful form to idle so another message can be sent
func (f *Form[F, P]) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != StatusSuccess {
		return ErrInvalidTransition
	}
	f.status = StatusIdle
	return nil
}

// DismissFailure hides the relay failure banner; the entered values stay
func (f *Form[F, P]) DismissFailure() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failure = ""
}

// ClearErrors drops every validation error
func (f *Form[F, P]) ClearErrors() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = nil
}

// Status returns the current lifecycle state
func (f *Form[F, P]) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Snapshot returns a copy of the form state
func (f *Form[F, P]) Snapshot() Snapshot[F] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot[F]{
		Values:  f.values,
		Errors:  f.errors.clone(),
		Status:  f.status,
		Failure: f.failure,
	}
}
