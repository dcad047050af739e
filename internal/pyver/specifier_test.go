package pyver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecifier(t *testing.T) {
	spec, err := ParseSpecifier(">=61.0")
	require.NoError(t, err)

	assert.Equal(t, ">=", spec.Op)
	assert.Equal(t, "61.0", spec.Value)
	assert.False(t, spec.Wildcard)
}

func TestParseSpecifier_Wildcard(t *testing.T) {
	spec, err := ParseSpecifier("==1.26.*")
	require.NoError(t, err)
	assert.True(t, spec.Wildcard)

	_, err = ParseSpecifier(">=1.26.*")
	assert.Error(t, err, "wildcard is only valid with == and !=")
}

func TestParseSpecifier_Invalid(t *testing.T) {
	tests := []string{
		"",
		"1.0",
		">=",
		"==not a version",
		"~=3",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSpecifier(input)
			assert.Error(t, err)
		})
	}
}

func TestSpecifier_Check(t *testing.T) {
	tests := []struct {
		spec    string
		version string
		want    bool
	}{
		{">=3.10", "3.11", true},
		{">=3.10", "3.10", true},
		{">=3.10", "3.9", false},
		{"<4", "3.12", true},
		{"<4", "4.0", false},
		{"==1.26.0", "1.26.0", true},
		{"==1.26.0", "1.26.1", false},
		{"==1.0", "1.0+local", true},
		{"==1.0+abc", "1.0+abc", true},
		{"==1.0+abc", "1.0+def", false},
		{"!=1.0", "1.0+local", false},
		{"!=1.26.0", "1.26.1", true},
		{"==1.26.*", "1.26.4", true},
		{"==1.26.*", "1.27.0", false},
		{"!=1.26.*", "1.26.4", false},
		{"!=1.26.*", "1.27.0", true},
		{"~=3.1", "3.9", true},
		{"~=3.1", "4.0", false},
		{"~=3.1", "3.0", false},
		{"~=1.4.2", "1.4.9", true},
		{"~=1.4.2", "1.5.0", false},
		{">1.0", "1.0.post1", false},
		{">1.0", "1.1.post1", true},
		{"<1.0", "1.0.dev1", false},
		{"<1.0", "0.9", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec+" vs "+tt.version, func(t *testing.T) {
			spec, err := ParseSpecifier(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.Check(MustParse(tt.version)))
		})
	}
}

func TestSpecifier_ArbitraryEquality(t *testing.T) {
	spec, err := ParseSpecifier("===1.0-custom")
	require.NoError(t, err)

	assert.True(t, spec.Check(Version{original: "1.0-custom"}))
	assert.False(t, spec.Check(MustParse("1.0")))
}

func TestParseSpecifierSet(t *testing.T) {
	set, err := ParseSpecifierSet(">=3.8, <4")
	require.NoError(t, err)
	require.Len(t, set.Specifiers, 2)

	assert.True(t, set.Check(MustParse("3.10")))
	assert.False(t, set.Check(MustParse("3.7")))
	assert.False(t, set.Check(MustParse("4.1")))
}

func TestParseSpecifierSet_Empty(t *testing.T) {
	set, err := ParseSpecifierSet("")
	require.NoError(t, err)

	assert.True(t, set.IsEmpty())
	assert.True(t, set.Check(MustParse("0.0.1")), "the empty set matches everything")
}

func TestSpecifierSet_String(t *testing.T) {
	set, err := ParseSpecifierSet(" >=3.8 , <4.0 ")
	require.NoError(t, err)
	assert.Equal(t, ">=3.8,<4.0", set.String())
}
