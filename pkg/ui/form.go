package ui

// Control ids, shared by the web page and focus reporting
const (
	IDManager      = "manager"
	IDDistricts    = "districtCheckboxes"
	IDName         = "name"
	IDPhone        = "phone"
	IDCountryCode  = "countryCode"
	IDScheduleDate = "schedule_date"
)

// Form is a complete in-memory surface
type Form struct {
	Focus        *FocusTracker
	Manager      *Field
	Districts    *CheckboxGroup
	Name         *Field
	Phone        *Field
	CountryCode  *Field
	ScheduleDate *Field
	Submit       *Toggle
	Message      *MessageBox
	Alerts       *AlertLog
}

// NewForm returns an empty form with the submit control enabled
func NewForm(countryCode string) *Form {
	focus := &FocusTracker{}
	return &Form{
		Focus:        focus,
		Manager:      NewField(IDManager, "", focus),
		Districts:    NewCheckboxGroup(IDDistricts, focus),
		Name:         NewField(IDName, "", focus),
		Phone:        NewField(IDPhone, "", focus),
		CountryCode:  NewField(IDCountryCode, countryCode, focus),
		ScheduleDate: NewField(IDScheduleDate, "", focus),
		Submit:       NewToggle(),
		Message:      &MessageBox{},
		Alerts:       &AlertLog{},
	}
}

// Controls exposes the form through the controller capability set
func (f *Form) Controls() Controls {
	return Controls{
		Manager:      f.Manager,
		Districts:    f.Districts,
		Name:         f.Name,
		Phone:        f.Phone,
		CountryCode:  f.CountryCode,
		ScheduleDate: f.ScheduleDate,
		Submit:       f.Submit,
		Message:      f.Message,
		Alerter:      f.Alerts,
	}
}
