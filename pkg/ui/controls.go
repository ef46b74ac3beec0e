// Package ui describes the capabilities the form controller needs from a
// rendering surface, plus in-memory controls that back the web and CLI views.
package ui

// Tone colours a message shown in the message area
type Tone string

const (
	ToneNone    Tone = ""
	ToneSuccess Tone = "green"
	ToneError   Tone = "red"
)

// ValueControl is a control holding a single string value
type ValueControl interface {
	Value() string
	SetValue(value string)
}

// Focusable controls can take input focus
type Focusable interface {
	Focus()
}

// Input is a focusable single value control such as a text box or selector
type Input interface {
	ValueControl
	Focusable
}

// Button can be enabled or disabled
type Button interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// ChoiceList renders a set of independently selectable choices
type ChoiceList interface {
	Focusable
	// Render replaces every existing choice with a fresh unselected set.
	Render(choices []string)
	Selected() []string
	Clear()
}

// MessageArea shows an inline, non-blocking status line
type MessageArea interface {
	Show(text string, tone Tone)
}

// Alerter shows a blocking notice that must be acknowledged
type Alerter interface {
	Alert(message string)
}

// Controls is the full surface the form controller is bound to
type Controls struct {
	Manager      Input
	Districts    ChoiceList
	Name         Input
	Phone        Input
	CountryCode  Input
	ScheduleDate Input
	Submit       Button
	Message      MessageArea
	Alerter      Alerter
}
