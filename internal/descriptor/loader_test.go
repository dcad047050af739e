package descriptor

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/pydist/cli/internal/errors"
	"github.com/pydist/cli/internal/testutil"
)

const fullDescriptor = `[build-system]
requires = ["setuptools>=61.0"]
build-backend = "setuptools.build_meta"

[project]
name = "post_tracking"
dynamic = ["readme", "dependencies"]
version = "1.0.0"
description = "Post tracking for a custom low-cost imaging platform."
license = {file = "LICENSE"}
keywords = ["tracking", "imaging", "timelapse"]
requires-python = ">=3.10"
authors = [{name = "Ada Tester", email = "ada@example.org"}]
maintainers = [{name = "Ada Tester", email = "ada@example.org"}]
classifiers = [
    "Development Status :: 4 - Beta",
    "Intended Audience :: Science/Research",
    "Programming Language :: Python :: 3.10",
]

[project.urls]
Homepage = "https://example.org/post-tracking"
Repository = "https://example.org/post-tracking.git"
Issues = "https://example.org/post-tracking/issues"

[tool.setuptools]
package-dir = {"" = "src"}
include-package-data = true

[tool.setuptools.dynamic]
readme = {file = "README.md"}
dependencies = {file = "requirements.txt"}

[tool.setuptools.packages.find]
where = ["src"]
include = ["post_tracking*"]
exclude = ["post_tracking_tests*"]
namespaces = false
`

func TestParse_FullDescriptor(t *testing.T) {
	d, err := Parse([]byte(fullDescriptor), "pyproject.toml")
	require.NoError(t, err)

	assert.Equal(t, []string{"setuptools>=61.0"}, d.BuildSystem.Requires)
	assert.Equal(t, "setuptools.build_meta", d.BuildSystem.BuildBackend)

	p := d.Project
	assert.Equal(t, "post_tracking", p.Name)
	assert.Equal(t, []string{"readme", "dependencies"}, p.Dynamic)
	assert.Equal(t, "1.0.0", p.Version)
	assert.Equal(t, ">=3.10", p.RequiresPython)
	require.NotNil(t, p.License)
	assert.Equal(t, "LICENSE", p.License.File)
	require.Len(t, p.Authors, 1)
	assert.Equal(t, "Ada Tester <ada@example.org>", p.Authors[0].String())
	assert.Len(t, p.Classifiers, 3)
	assert.Equal(t, []string{"Homepage", "Issues", "Repository"}, p.SortedURLNames())

	st := d.Tool.Setuptools
	assert.Equal(t, "src", st.SourceRoot())
	require.NotNil(t, st.IncludePackageData)
	assert.True(t, *st.IncludePackageData)

	require.NotNil(t, st.Dynamic.Readme)
	assert.Equal(t, []string{"README.md"}, st.Dynamic.Readme.File)
	require.NotNil(t, st.Dynamic.Dependencies)
	assert.Equal(t, []string{"requirements.txt"}, st.Dynamic.Dependencies.File)

	find := st.Packages.Find
	require.NotNil(t, find)
	assert.Equal(t, []string{"src"}, find.Roots())
	assert.Equal(t, []string{"post_tracking*"}, find.IncludePatterns())
	assert.Equal(t, []string{"post_tracking_tests*"}, find.ExcludePatterns())
	assert.False(t, find.AllowNamespaces())
}

func TestParse_MalformedTOML(t *testing.T) {
	_, err := Parse([]byte("[project\nname = \"x\""), "pyproject.toml")
	require.Error(t, err)
	assert.ErrorIs(t, err, perrors.ErrParse)
}

func TestParse_UnknownKey(t *testing.T) {
	input := `[build-system]
requires = ["setuptools>=61.0"]

[project]
name = "x"
version = "0.1.0"
licence = "MIT"
`
	_, err := Parse([]byte(input), "pyproject.toml")
	require.Error(t, err)
	assert.ErrorIs(t, err, perrors.ErrParse)
	assert.Contains(t, err.Error(), "licence")
}

func TestParse_ForeignToolTablesIgnored(t *testing.T) {
	input := `[build-system]
requires = ["setuptools>=61.0"]

[project]
name = "x"
version = "0.1.0"

[tool.black]
line-length = 100
`
	_, err := Parse([]byte(input), "pyproject.toml")
	assert.NoError(t, err)
}

func TestParse_LicenseSpellings(t *testing.T) {
	tests := []struct {
		name     string
		license  string
		wantFile string
		wantText string
	}{
		{"string", `license = "MIT"`, "", "MIT"},
		{"file table", `license = {file = "LICENSE"}`, "LICENSE", ""},
		{"text table", `license = {text = "MIT"}`, "", "MIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "[build-system]\nrequires = [\"setuptools\"]\n[project]\nname = \"x\"\nversion = \"0.1.0\"\n" + tt.license + "\n"
			d, err := Parse([]byte(input), "pyproject.toml")
			require.NoError(t, err)
			require.NotNil(t, d.Project.License)
			assert.Equal(t, tt.wantFile, d.Project.License.File)
			assert.Equal(t, tt.wantText, d.Project.License.Text)
		})
	}
}

func TestParse_FileDirectiveList(t *testing.T) {
	input := `[build-system]
requires = ["setuptools"]

[project]
name = "x"
version = "0.1.0"
dynamic = ["dependencies"]

[tool.setuptools.dynamic]
dependencies = {file = ["requirements.txt", "requirements-extra.txt"]}
`
	d, err := Parse([]byte(input), "pyproject.toml")
	require.NoError(t, err)
	require.NotNil(t, d.Tool.Setuptools.Dynamic.Dependencies)
	assert.Equal(t, []string{"requirements.txt", "requirements-extra.txt"},
		d.Tool.Setuptools.Dynamic.Dependencies.File)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, DescriptorFile, fullDescriptor)

	d, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "post_tracking", d.Project.Name)
	assert.Equal(t, filepath.Join(dir, DescriptorFile), d.Path)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, perrors.ErrNotFound)

	var detail *perrors.DetailError
	assert.True(t, errors.As(err, &detail))
}

func TestLoad_EmptyDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, perrors.ErrNotFound)
}
