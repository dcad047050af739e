package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_RoundTrip(t *testing.T) {
	d, err := Parse([]byte(fullDescriptor), "pyproject.toml")
	require.NoError(t, err)

	encoded, err := d.Encode()
	require.NoError(t, err)

	reparsed, err := Parse(encoded, "pyproject.toml")
	require.NoError(t, err)

	assert.Equal(t, d, reparsed, "serialize then re-parse must be identity")
}

func TestEncode_RoundTripMinimal(t *testing.T) {
	input := `[build-system]
requires = ["setuptools>=61.0"]

[project]
name = "x"
version = "0.1.0"
`
	d, err := Parse([]byte(input), "pyproject.toml")
	require.NoError(t, err)

	encoded, err := d.Encode()
	require.NoError(t, err)

	reparsed, err := Parse(encoded, "pyproject.toml")
	require.NoError(t, err)
	assert.Equal(t, d, reparsed)
}
