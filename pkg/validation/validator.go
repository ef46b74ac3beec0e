// Package validation runs the ordered submit-time checks of the scheduling
// form. Checks stop at the first failure.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"district-scheduler/pkg/models"
)

// DateLayout is the ISO calendar date format used by the schedule date
const DateLayout = "2006-01-02"

// Field names a form control that a check can reject
type Field string

const (
	FieldManager      Field = "manager"
	FieldDistricts    Field = "districts"
	FieldPhone        Field = "phone"
	FieldName         Field = "name"
	FieldScheduleDate Field = "schedule_date"
)

const (
	MsgManagerRequired  = "Please select a manager."
	MsgDistrictRequired = "Please select at least one district."
	MsgPhoneInvalid     = "Please enter a valid 10-digit phone number."
	MsgNameRequired     = "Please enter your name with designation."
	MsgDateRequired     = "Please select a schedule date."
	MsgDateInPast       = "Schedule date cannot be in the past."
)

// FieldError is a failed check. It names the control to refocus.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator checks a form state against the submission rules
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
	location *time.Location
}

// Option configures a Validator
type Option func(*Validator)

// WithClock overrides the time source used to find today's date
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// WithLocation sets the zone in which "today" is computed. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.location = loc
		}
	}
}

// New creates a Validator
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(),
		now:      time.Now,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Today returns the current calendar date as YYYY-MM-DD
func (v *Validator) Today() string {
	return v.now().In(v.location).Format(DateLayout)
}

// Validate runs every check in order and returns a *FieldError for the first
// one that fails, or nil.
func (v *Validator) Validate(state models.FormState) error {
	if state.Manager == "" {
		return &FieldError{Field: FieldManager, Message: MsgManagerRequired}
	}

	if len(state.Districts) == 0 {
		return &FieldError{Field: FieldDistricts, Message: MsgDistrictRequired}
	}

	if err := v.validate.Var(strings.TrimSpace(state.Phone), "len=10,number"); err != nil {
		return &FieldError{Field: FieldPhone, Message: MsgPhoneInvalid}
	}

	if strings.TrimSpace(state.Name) == "" {
		return &FieldError{Field: FieldName, Message: MsgNameRequired}
	}

	// A date control reports an empty value for anything that is not a
	// well formed date, so malformed input counts as missing.
	if err := v.validate.Var(state.ScheduleDate, "required,datetime="+DateLayout); err != nil {
		return &FieldError{Field: FieldScheduleDate, Message: MsgDateRequired}
	}

	// ISO dates order lexicographically.
	if state.ScheduleDate < v.Today() {
		return &FieldError{Field: FieldScheduleDate, Message: MsgDateInPast}
	}

	return nil
}
