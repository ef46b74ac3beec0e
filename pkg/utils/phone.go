package utils

import "strings"

// PhoneDigits is the number of digits a local phone number carries
const PhoneDigits = 10

// FilterPhoneInput keeps only ASCII digits and truncates to PhoneDigits.
// It is applied to the phone control on every input event.
func FilterPhoneInput(value string) string {
	var b strings.Builder
	b.Grow(PhoneDigits)
	n := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		n++
		if n == PhoneDigits {
			break
		}
	}
	return b.String()
}

// ControlID turns a display label into an element id segment, replacing
// whitespace runs with underscores.
func ControlID(prefix, label string) string {
	return prefix + strings.Join(strings.Fields(label), "_")
}
