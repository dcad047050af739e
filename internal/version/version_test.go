package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.NotEmpty(t, info.GoVersion)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.2.3",
		GitCommit: "abc1234",
		BuildDate: "2026-01-01",
		GoVersion: "go1.25.0",
	}

	s := info.String()
	assert.Contains(t, s, "v1.2.3")
	assert.Contains(t, s, "abc1234")
	assert.Contains(t, s, "go1.25.0")
}

func TestExtractPythonVersion(t *testing.T) {
	tests := []struct {
		output  string
		want    string
		wantErr bool
	}{
		{"Python 3.11.6\n", "3.11.6", false},
		{"Python 3.9\n", "3.9", false},
		{"Python 3.13.0rc1\n", "3.13.0rc1", false},
		{"garbage\n", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			got, err := extractPythonVersion(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPythonBinaryInfoSatisfies(t *testing.T) {
	info := PythonBinaryInfo{Version: "3.11.6", Found: true}

	ok, err := info.Satisfies(">=3.9")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = info.Satisfies(">=3.12")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = PythonBinaryInfo{}.Satisfies(">=3.9")
	assert.Error(t, err)
}

func TestPythonBinaryInfoString(t *testing.T) {
	assert.Contains(t, PythonBinaryInfo{}.String(), "not found")

	found := PythonBinaryInfo{Version: "3.11.6", Path: "/usr/bin/python3", Found: true}
	assert.Contains(t, found.String(), "3.11.6")
	assert.Contains(t, found.String(), "/usr/bin/python3")
}
