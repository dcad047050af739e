package output

import "strings"

// Format specifies the output format.
type Format string

const (
	// FormatYAML outputs the metadata record as YAML.
	FormatYAML Format = "yaml"

	// FormatJSON outputs the metadata record as JSON.
	FormatJSON Format = "json"

	// FormatMetadata outputs the core-metadata header text.
	FormatMetadata Format = "metadata"

	// FormatTable outputs a human-oriented table.
	FormatTable Format = "table"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatMetadata, FormatTable:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format.
// Returns FormatYAML if the string is empty or unknown.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	case "metadata", "pkg-info":
		return FormatMetadata
	case "table":
		return FormatTable
	default:
		return FormatYAML
	}
}

// ValidBuildFormats returns valid formats for the build command.
func ValidBuildFormats() []string {
	return []string{"yaml", "json", "metadata"}
}

// ValidDiscoverFormats returns valid formats for the discover command.
func ValidDiscoverFormats() []string {
	return []string{"table", "json", "yaml"}
}
