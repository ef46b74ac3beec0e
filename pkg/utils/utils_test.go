package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterPhoneInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"formatted", "(555) 123-4567", "5551234567"},
		{"too long", "98765432101234", "9876543210"},
		{"letters", "abc", ""},
		{"empty", "", ""},
		{"unicode digits dropped", "٣12", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterPhoneInput(tt.input))
		})
	}
}

func TestFilterPhoneInputKeystrokes(t *testing.T) {
	value := ""
	for _, r := range "(555) 123-4567" {
		value = FilterPhoneInput(value + string(r))
	}
	assert.Equal(t, "5551234567", value)

	value = FilterPhoneInput(value + "8")
	assert.Equal(t, "5551234567", value)
}

func TestHashString(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashString(""))
	assert.NotEqual(t, HashString("+919876543210"), HashString("+919876543211"))
	assert.Len(t, HashString("x"), 64)
}

func TestControlID(t *testing.T) {
	assert.Equal(t, "dist_East_Champaran", ControlID("dist_", "East Champaran"))
	assert.Equal(t, "dist_Gaya", ControlID("dist_", "Gaya"))
	assert.Equal(t, "dist_A_B", ControlID("dist_", "A   B"))
}
