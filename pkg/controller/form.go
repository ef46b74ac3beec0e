// Package controller binds the scheduling form's handlers to a ui surface:
// district rendering on manager change, the phone input filter and the
// validate then submit pipeline.
package controller

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"district-scheduler/pkg/districts"
	"district-scheduler/pkg/metrics"
	"district-scheduler/pkg/models"
	"district-scheduler/pkg/services"
	"district-scheduler/pkg/ui"
	"district-scheduler/pkg/utils"
	"district-scheduler/pkg/validation"
)

const (
	SuccessMessage     = "Data submitted successfully!"
	errorMessageFormat = "Error submitting data: %v"
)

// Outcome reports how a submit attempt ended
type Outcome int

const (
	// OutcomeIgnored means the submit control was disabled
	OutcomeIgnored Outcome = iota
	OutcomeInvalid
	OutcomeSubmitted
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeSubmitted:
		return "submitted"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// FormController owns one form instance. Its handlers must be called from a
// single goroutine, the surface's event loop.
type FormController struct {
	controls           ui.Controls
	directory          *districts.Directory
	validator          *validation.Validator
	submissions        services.SubmissionService
	logger             *zap.Logger
	defaultCountryCode string
}

// Option configures a FormController
type Option func(*FormController)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *FormController) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDefaultCountryCode sets the country code restored when the form resets
func WithDefaultCountryCode(code string) Option {
	return func(c *FormController) { c.defaultCountryCode = code }
}

// New creates a controller bound to controls
func New(
	controls ui.Controls,
	directory *districts.Directory,
	validator *validation.Validator,
	submissions services.SubmissionService,
	opts ...Option,
) *FormController {
	c := &FormController{
		controls:    controls,
		directory:   directory,
		validator:   validator,
		submissions: submissions,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HandleManagerChange re-renders the district choices for the selected
// manager. Previous choices and their selections are discarded.
func (c *FormController) HandleManagerChange() {
	manager := c.controls.Manager.Value()
	list := c.directory.Resolve(manager)
	if len(list) == 0 {
		c.controls.Districts.Clear()
		return
	}
	c.controls.Districts.Render(list)
}

// HandlePhoneInput strips non-digits from the phone control and caps it at
// ten digits.
func (c *FormController) HandlePhoneInput() {
	raw := c.controls.Phone.Value()
	filtered := utils.FilterPhoneInput(raw)
	if filtered != raw {
		c.controls.Phone.SetValue(filtered)
	}
}

// State reads the current form values
func (c *FormController) State() models.FormState {
	return models.FormState{
		Manager:      c.controls.Manager.Value(),
		Districts:    c.controls.Districts.Selected(),
		Name:         c.controls.Name.Value(),
		Phone:        c.controls.Phone.Value(),
		CountryCode:  c.controls.CountryCode.Value(),
		ScheduleDate: c.controls.ScheduleDate.Value(),
	}
}

// HandleSubmit validates the form and, if it passes, sends it once. The
// submit control stays disabled while the endpoint call is in flight.
func (c *FormController) HandleSubmit(ctx context.Context) Outcome {
	if !c.controls.Submit.Enabled() {
		return OutcomeIgnored
	}

	c.controls.Message.Show("", ui.ToneNone)

	state := c.State()
	if err := c.validator.Validate(state); err != nil {
		c.reject(err)
		return OutcomeInvalid
	}

	payload := models.NewSubmissionPayload(state)

	c.controls.Submit.SetEnabled(false)
	defer c.controls.Submit.SetEnabled(true)

	if err := c.submissions.ProcessSubmission(ctx, payload); err != nil {
		c.controls.Message.Show(fmt.Sprintf(errorMessageFormat, err), ui.ToneError)
		return OutcomeFailed
	}

	c.controls.Message.Show(SuccessMessage, ui.ToneSuccess)
	c.Reset()
	return OutcomeSubmitted
}

// Reset restores every field to its initial value and removes the district
// choices.
func (c *FormController) Reset() {
	c.controls.Manager.SetValue("")
	c.controls.Name.SetValue("")
	c.controls.Phone.SetValue("")
	c.controls.CountryCode.SetValue(c.defaultCountryCode)
	c.controls.ScheduleDate.SetValue("")
	c.controls.Districts.Clear()
}

func (c *FormController) reject(err error) {
	var fieldErr *validation.FieldError
	if !errors.As(err, &fieldErr) {
		c.controls.Alerter.Alert(err.Error())
		return
	}

	metrics.ValidationFailures.WithLabelValues(string(fieldErr.Field)).Inc()
	c.logger.Debug("submission rejected",
		zap.String("field", string(fieldErr.Field)),
		zap.String("reason", fieldErr.Message),
	)

	c.controls.Alerter.Alert(fieldErr.Message)
	if target := c.focusTarget(fieldErr.Field); target != nil {
		target.Focus()
	}
}

func (c *FormController) focusTarget(field validation.Field) ui.Focusable {
	switch field {
	case validation.FieldManager:
		return c.controls.Manager
	case validation.FieldDistricts:
		return c.controls.Districts
	case validation.FieldPhone:
		return c.controls.Phone
	case validation.FieldName:
		return c.controls.Name
	case validation.FieldScheduleDate:
		return c.controls.ScheduleDate
	default:
		return nil
	}
}
