package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositiveIntValidator(t *testing.T) {
	v := PositiveIntValidator()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"valid", "7", "7"},
		{"zero", "0", "10"},
		{"negative", "-1", "10"},
		{"garbage", "seven", "10"},
		{"empty uses default", "", "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v("key", tt.value, "10")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoolValidator(t *testing.T) {
	v := BoolValidator()

	tests := []struct {
		value string
		want  string
	}{
		{"1", "true"},
		{"yes", "true"},
		{"on", "true"},
		{"0", "false"},
		{"no", "false"},
		{"off", "false"},
		{"maybe", "false"}, // falls back to default
		{"", "false"},
	}

	for _, tt := range tests {
		got, err := v("key", tt.value, "false")
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, "value %q", tt.value)
	}
}

func TestEnumValidator(t *testing.T) {
	v := EnumValidator(map[string]bool{"info": true, "debug": true})

	got, err := v("logging_level", "DEBUG", "info")
	assert.NoError(t, err)
	assert.Equal(t, "debug", got)

	got, err = v("logging_level", "trace", "info")
	assert.NoError(t, err)
	assert.Equal(t, "info", got)
}

func TestNonEmptyValidator(t *testing.T) {
	v := NonEmptyValidator()

	got, err := v("session_name", "VEREFINE", "fallback")
	assert.NoError(t, err)
	assert.Equal(t, "VEREFINE", got)

	got, err = v("session_name", "   ", "fallback")
	assert.NoError(t, err)
	assert.Equal(t, "fallback", got)
}
