package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIsValid(t *testing.T) {
	tests := []struct {
		format Format
		valid  bool
	}{
		{FormatYAML, true},
		{FormatJSON, true},
		{FormatMetadata, true},
		{FormatTable, true},
		{Format("invalid"), false},
		{Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.IsValid())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
		{"JSON", FormatJSON},
		{"metadata", FormatMetadata},
		{"pkg-info", FormatMetadata},
		{"table", FormatTable},
		{"bogus", FormatYAML},
		{"", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFormat(tt.input))
		})
	}
}

func TestValidBuildFormats(t *testing.T) {
	formats := ValidBuildFormats()

	assert.Contains(t, formats, "yaml")
	assert.Contains(t, formats, "json")
	assert.Contains(t, formats, "metadata")
	assert.Len(t, formats, 3)
}
