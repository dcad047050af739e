package pyver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ReleaseSegments(t *testing.T) {
	v, err := Parse("1.26.0")
	require.NoError(t, err)

	assert.Equal(t, 0, v.Epoch)
	assert.Equal(t, []int{1, 26, 0}, v.Release)
	assert.Nil(t, v.Pre)
	assert.Nil(t, v.Post)
	assert.Nil(t, v.Dev)
	assert.Empty(t, v.Local)
}

func TestParse_FullGrammar(t *testing.T) {
	v, err := Parse("2!1.0rc2.post3.dev4+ubuntu.1")
	require.NoError(t, err)

	assert.Equal(t, 2, v.Epoch)
	assert.Equal(t, []int{1, 0}, v.Release)
	require.NotNil(t, v.Pre)
	assert.Equal(t, "rc", v.Pre.Phase)
	assert.Equal(t, 2, v.Pre.Number)
	require.NotNil(t, v.Post)
	assert.Equal(t, 3, *v.Post)
	require.NotNil(t, v.Dev)
	assert.Equal(t, 4, *v.Dev)
	assert.Equal(t, "ubuntu.1", v.Local)
}

func TestParse_Normalization(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"v1.0", "1.0"},
		{"1.0.alpha2", "1.0a2"},
		{"1.0.beta", "1.0b0"},
		{"1.0.preview1", "1.0rc1"},
		{"1.0.c3", "1.0rc3"},
		{"1.0-3", "1.0.post3"},
		{"1.0.rev4", "1.0.post4"},
		{"1.0post1", "1.0.post1"},
		{"1.0.DEV2", "1.0.dev2"},
		{"1.0+ubuntu-1", "1.0+ubuntu.1"},
		{"  1.26.0 ", "1.26.0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"abc",
		"1.0.x",
		"1..0",
		"1.0+",
		"==1.0",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("0.1.0"))
	assert.True(t, IsValid("3.8"))
	assert.False(t, IsValid("not-a-version"))
}

func TestCompare_Ordering(t *testing.T) {
	// Ascending per the ecosystem's total order.
	ordered := []string{
		"1.0.dev1",
		"1.0a1",
		"1.0a2.dev1",
		"1.0a2",
		"1.0b1",
		"1.0rc1",
		"1.0",
		"1.0+abc",
		"1.0+abc.1",
		"1.0.post1",
		"1.1",
		"1!0.5",
	}

	for i := 0; i < len(ordered)-1; i++ {
		a := MustParse(ordered[i])
		b := MustParse(ordered[i+1])
		assert.Equal(t, -1, Compare(a, b), "%s should sort before %s", ordered[i], ordered[i+1])
		assert.Equal(t, 1, Compare(b, a), "%s should sort after %s", ordered[i+1], ordered[i])
	}
}

func TestCompare_Equal(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"1.0", "1.0.0"},
		{"1.0", "v1.0"},
		{"1.0a1", "1.0.alpha1"},
		{"1.0.post1", "1.0-1"},
	}

	for _, tt := range tests {
		t.Run(tt.a+"=="+tt.b, func(t *testing.T) {
			assert.Equal(t, 0, Compare(MustParse(tt.a), MustParse(tt.b)))
		})
	}
}

func TestCompare_LocalSegments(t *testing.T) {
	// Numeric local segments order after alphanumeric ones.
	assert.Equal(t, -1, Compare(MustParse("1.0+foo"), MustParse("1.0+1")))
	assert.Equal(t, 1, Compare(MustParse("1.0+2"), MustParse("1.0+1")))
}

func TestIsPreRelease(t *testing.T) {
	assert.True(t, MustParse("1.0a1").IsPreRelease())
	assert.True(t, MustParse("1.0.dev1").IsPreRelease())
	assert.False(t, MustParse("1.0").IsPreRelease())
	assert.False(t, MustParse("1.0.post1").IsPreRelease())
}

func TestOriginal(t *testing.T) {
	v := MustParse(" V1.0.Alpha2 ")
	assert.Equal(t, "V1.0.Alpha2", v.Original())
	assert.Equal(t, "1.0a2", v.String())
}
