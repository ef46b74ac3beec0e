package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckboxGroupRenderDiscardsSelections(t *testing.T) {
	g := NewCheckboxGroup("districts", nil)
	g.Render([]string{"Nalanda", "Banka"})
	g.Check("Banka", "Unknown")
	assert.Equal(t, []string{"Banka"}, g.Selected())

	g.Render([]string{"Banka", "Gaya"})
	assert.Empty(t, g.Selected())
	assert.Equal(t, []Choice{{Label: "Banka"}, {Label: "Gaya"}}, g.Choices())

	g.Clear()
	assert.Empty(t, g.Choices())
}

func TestFocusTracker(t *testing.T) {
	var tracker FocusTracker
	name := NewField("name", "", &tracker)
	group := NewCheckboxGroup("districts", &tracker)

	assert.Equal(t, "", tracker.Current())
	name.Focus()
	assert.Equal(t, "name", tracker.Current())
	group.Focus()
	assert.Equal(t, "districts", tracker.Current())

	NewField("orphan", "", nil).Focus()
	assert.Equal(t, "districts", tracker.Current())
}

func TestToggle(t *testing.T) {
	var seen []bool
	toggle := NewToggle()
	toggle.OnChange = func(enabled bool) { seen = append(seen, enabled) }

	assert.True(t, toggle.Enabled())
	toggle.SetEnabled(false)
	toggle.SetEnabled(false)
	toggle.SetEnabled(true)
	toggle.SetEnabled(true)

	assert.True(t, toggle.Enabled())
	assert.Equal(t, 1, toggle.Disables())
	assert.Equal(t, []bool{false, false, true, true}, seen)
}

func TestAlertLogAndMessageBox(t *testing.T) {
	var log AlertLog
	assert.Equal(t, "", log.Last())
	log.Alert("first")
	log.Alert("second")
	assert.Equal(t, "second", log.Last())
	assert.Len(t, log.Alerts, 2)

	var box MessageBox
	box.Show("done", ToneSuccess)
	assert.Equal(t, MessageBox{Text: "done", Tone: ToneSuccess}, box)
}
