package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"district-scheduler/pkg/controller"
	"district-scheduler/pkg/districts"
	"district-scheduler/pkg/middleware"
	"district-scheduler/pkg/models"
	"district-scheduler/pkg/services"
	"district-scheduler/pkg/ui"
	"district-scheduler/pkg/validation"
)

// Handlers contains all HTTP handlers for the form
type Handlers struct {
	directory          *districts.Directory
	validator          *validation.Validator
	submissionService  services.SubmissionService
	countryCodes       []string
	defaultCountryCode string
	logger             *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	directory *districts.Directory,
	validator *validation.Validator,
	submissionService services.SubmissionService,
	countryCodes []string,
	defaultCountryCode string,
	logger *zap.Logger,
) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		directory:          directory,
		validator:          validator,
		submissionService:  submissionService,
		countryCodes:       countryCodes,
		defaultCountryCode: defaultCountryCode,
		logger:             logger,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// newForm builds a fresh surface and its controller for one request
func (h *Handlers) newForm(c *gin.Context) (*ui.Form, *controller.FormController) {
	form := ui.NewForm(h.defaultCountryCode)
	ctrl := controller.New(form.Controls(), h.directory, h.validator, h.submissionService,
		controller.WithLogger(h.logger.With(zap.String("request_id", middleware.GetRequestID(c)))),
		controller.WithDefaultCountryCode(h.defaultCountryCode),
	)
	return form, ctrl
}

// restore replays the browser's field values through the controller's
// handlers, so the district list and phone filter behave as they do live.
func restore(form *ui.Form, ctrl *controller.FormController, state models.FormState) {
	form.Manager.SetValue(state.Manager)
	ctrl.HandleManagerChange()
	form.Districts.Check(state.Districts...)
	form.Name.SetValue(state.Name)
	form.Phone.SetValue(state.Phone)
	ctrl.HandlePhoneInput()
	if state.CountryCode != "" {
		form.CountryCode.SetValue(state.CountryCode)
	}
	form.ScheduleDate.SetValue(state.ScheduleDate)
}

// ShowForm renders an empty form
func (h *Handlers) ShowForm(c *gin.Context) {
	form, _ := h.newForm(c)
	c.HTML(http.StatusOK, formTemplate, h.newView(form))
}

// Districts renders the district choices for a manager change
func (h *Handlers) Districts(c *gin.Context) {
	form, ctrl := h.newForm(c)
	form.Manager.SetValue(c.Query("manager"))
	ctrl.HandleManagerChange()

	c.JSON(http.StatusOK, gin.H{
		"manager":   form.Manager.Value(),
		"districts": districtOptions(form.Districts),
	})
}

// SubmitForm handles the page's form post and re-renders the page with the
// alert or outcome message
func (h *Handlers) SubmitForm(c *gin.Context) {
	var state models.FormState
	if err := c.ShouldBind(&state); err != nil {
		h.logger.Warn("Error binding form", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return
	}

	form, ctrl := h.newForm(c)
	restore(form, ctrl, state)
	outcome := ctrl.HandleSubmit(c.Request.Context())

	c.HTML(statusFor(outcome), formTemplate, h.newView(form))
}

// SubmitJSON is the JSON equivalent of SubmitForm for scripted clients
func (h *Handlers) SubmitJSON(c *gin.Context) {
	var state models.FormState
	if err := c.ShouldBindJSON(&state); err != nil {
		h.logger.Warn("Error parsing JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	form, ctrl := h.newForm(c)
	restore(form, ctrl, state)
	outcome := ctrl.HandleSubmit(c.Request.Context())

	switch outcome {
	case controller.OutcomeSubmitted:
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": form.Message.Text,
		})
	case controller.OutcomeInvalid:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": form.Alerts.Last(),
			"field": form.Focus.Current(),
		})
	default:
		c.JSON(statusFor(outcome), gin.H{"error": form.Message.Text})
	}
}

// ListManagers returns managers in selector order
func (h *Handlers) ListManagers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"managers": h.directory.Managers()})
}

// ManagerDistricts returns one manager's districts
func (h *Handlers) ManagerDistricts(c *gin.Context) {
	name := c.Param("name")
	if !h.directory.Has(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Manager not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"manager":   name,
		"districts": h.directory.Resolve(name),
	})
}

func statusFor(outcome controller.Outcome) int {
	switch outcome {
	case controller.OutcomeInvalid:
		return http.StatusUnprocessableEntity
	case controller.OutcomeFailed:
		return http.StatusBadGateway
	case controller.OutcomeIgnored:
		return http.StatusConflict
	default:
		return http.StatusOK
	}
}
