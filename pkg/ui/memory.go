package ui

import "sync"

// FocusTracker records which control last took focus
type FocusTracker struct {
	mu      sync.Mutex
	current string
}

// Current returns the id of the focused control, or "" when none was
func (f *FocusTracker) Current() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *FocusTracker) set(id string) {
	f.mu.Lock()
	f.current = id
	f.mu.Unlock()
}

// Field is an in-memory Input
type Field struct {
	ID    string
	value string
	focus *FocusTracker
}

// NewField creates a field reporting focus to tracker (may be nil)
func NewField(id, value string, tracker *FocusTracker) *Field {
	return &Field{ID: id, value: value, focus: tracker}
}

func (f *Field) Value() string { return f.value }

func (f *Field) SetValue(value string) { f.value = value }

func (f *Field) Focus() {
	if f.focus != nil {
		f.focus.set(f.ID)
	}
}

// Choice is one rendered checkbox
type Choice struct {
	Label   string
	Checked bool
}

// CheckboxGroup is an in-memory ChoiceList
type CheckboxGroup struct {
	ID      string
	choices []Choice
	focus   *FocusTracker
}

// NewCheckboxGroup creates an empty group reporting focus to tracker
func NewCheckboxGroup(id string, tracker *FocusTracker) *CheckboxGroup {
	return &CheckboxGroup{ID: id, focus: tracker}
}

func (g *CheckboxGroup) Render(choices []string) {
	g.choices = make([]Choice, len(choices))
	for i, label := range choices {
		g.choices[i] = Choice{Label: label}
	}
}

// Check marks every rendered choice whose label is in labels. Unknown labels
// are ignored.
func (g *CheckboxGroup) Check(labels ...string) {
	want := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		want[l] = struct{}{}
	}
	for i := range g.choices {
		if _, ok := want[g.choices[i].Label]; ok {
			g.choices[i].Checked = true
		}
	}
}

// Choices returns the rendered choices in display order
func (g *CheckboxGroup) Choices() []Choice {
	out := make([]Choice, len(g.choices))
	copy(out, g.choices)
	return out
}

func (g *CheckboxGroup) Selected() []string {
	var out []string
	for _, c := range g.choices {
		if c.Checked {
			out = append(out, c.Label)
		}
	}
	return out
}

func (g *CheckboxGroup) Clear() { g.choices = nil }

func (g *CheckboxGroup) Focus() {
	if g.focus != nil {
		g.focus.set(g.ID)
	}
}

// Toggle is an in-memory Button. It counts transitions to disabled so callers
// can check the submit guard was raised.
type Toggle struct {
	mu       sync.Mutex
	enabled  bool
	disables int
	OnChange func(enabled bool)
}

// NewToggle returns an enabled toggle
func NewToggle() *Toggle { return &Toggle{enabled: true} }

func (t *Toggle) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

func (t *Toggle) SetEnabled(enabled bool) {
	t.mu.Lock()
	if !enabled && t.enabled {
		t.disables++
	}
	t.enabled = enabled
	hook := t.OnChange
	t.mu.Unlock()
	if hook != nil {
		hook(enabled)
	}
}

// Disables returns how many times the toggle went from enabled to disabled
func (t *Toggle) Disables() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.disables
}

// MessageBox is an in-memory MessageArea
type MessageBox struct {
	Text string
	Tone Tone
}

func (m *MessageBox) Show(text string, tone Tone) {
	m.Text = text
	m.Tone = tone
}

// AlertLog is an in-memory Alerter that keeps every alert in order
type AlertLog struct {
	Alerts []string
}

func (a *AlertLog) Alert(message string) {
	a.Alerts = append(a.Alerts, message)
}

// Last returns the most recent alert or ""
func (a *AlertLog) Last() string {
	if len(a.Alerts) == 0 {
		return ""
	}
	return a.Alerts[len(a.Alerts)-1]
}
