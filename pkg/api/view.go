package api

import (
	"district-scheduler/pkg/models"
	"district-scheduler/pkg/ui"
	"district-scheduler/pkg/utils"
)

const districtIDPrefix = "dist_"

type districtOption struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked,omitempty"`
}

// formView is the data the form page template renders
type formView struct {
	Managers       []string
	CountryCodes   []string
	Today          string
	State          models.FormState
	Districts      []districtOption
	Alert          string
	Focus          string
	Message        string
	MessageTone    ui.Tone
	SubmitDisabled bool
}

func districtOptions(group *ui.CheckboxGroup) []districtOption {
	choices := group.Choices()
	out := make([]districtOption, 0, len(choices))
	for _, c := range choices {
		out = append(out, districtOption{
			ID:      utils.ControlID(districtIDPrefix, c.Label),
			Label:   c.Label,
			Checked: c.Checked,
		})
	}
	return out
}

func (h *Handlers) newView(form *ui.Form) formView {
	return formView{
		Managers:     h.directory.Managers(),
		CountryCodes: h.countryCodes,
		Today:        h.validator.Today(),
		State: models.FormState{
			Manager:      form.Manager.Value(),
			Name:         form.Name.Value(),
			Phone:        form.Phone.Value(),
			CountryCode:  form.CountryCode.Value(),
			ScheduleDate: form.ScheduleDate.Value(),
		},
		Districts:      districtOptions(form.Districts),
		Alert:          form.Alerts.Last(),
		Focus:          form.Focus.Current(),
		Message:        form.Message.Text,
		MessageTone:    form.Message.Tone,
		SubmitDisabled: !form.Submit.Enabled(),
	}
}
