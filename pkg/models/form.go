package models

import "strings"

// DistrictSeparator joins selected districts in the submitted payload
const DistrictSeparator = ", "

// FormState represents the values currently held by the form controls
type FormState struct {
	Manager      string   `json:"manager" form:"manager"`
	Districts    []string `json:"districts" form:"districts"`
	Name         string   `json:"name" form:"name"`
	Phone        string   `json:"phone" form:"phone"`
	CountryCode  string   `json:"country_code" form:"country_code"`
	ScheduleDate string   `json:"schedule_date" form:"schedule_date"`
}

// SubmissionPayload is the body posted to the remote endpoint
type SubmissionPayload struct {
	Manager      string `json:"manager"`
	District     string `json:"district"`
	Name         string `json:"name"`
	Phone        string `json:"phone"` // country code prefixed
	ScheduleDate string `json:"schedule_date"`
}

// NewSubmissionPayload snapshots a validated form state
func NewSubmissionPayload(state FormState) SubmissionPayload {
	return SubmissionPayload{
		Manager:      state.Manager,
		District:     strings.Join(state.Districts, DistrictSeparator),
		Name:         strings.TrimSpace(state.Name),
		Phone:        state.CountryCode + strings.TrimSpace(state.Phone),
		ScheduleDate: state.ScheduleDate,
	}
}
