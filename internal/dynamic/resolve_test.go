package dynamic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pydist/cli/internal/descriptor"
	perrors "github.com/pydist/cli/internal/errors"
	"github.com/pydist/cli/internal/testutil"
)

const dynamicDescriptor = `[build-system]
requires = ["setuptools>=61.0"]

[project]
name = "post_tracking"
version = "1.0.0"
dynamic = ["readme", "dependencies"]

[tool.setuptools.dynamic]
readme = {file = "README.md"}
dependencies = {file = "requirements.txt"}
`

func loadDescriptor(t *testing.T) *descriptor.Descriptor {
	t.Helper()
	d, err := descriptor.Parse([]byte(dynamicDescriptor), "pyproject.toml")
	require.NoError(t, err)
	return d
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "README.md", "Hello")
	testutil.WriteFile(t, dir, "requirements.txt", "numpy==1.26.0\n")

	resolved, err := Resolve(loadDescriptor(t), dir)
	require.NoError(t, err)

	require.NotNil(t, resolved.Readme)
	assert.Equal(t, "Hello", resolved.Readme.Text)
	assert.Equal(t, "text/markdown", resolved.Readme.ContentType)

	require.Len(t, resolved.Dependencies, 1)
	assert.Equal(t, "numpy", resolved.Dependencies[0].Name)
	assert.Equal(t, "==1.26.0", resolved.Dependencies[0].Specifiers.String())
}

func TestResolve_MissingReadme(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "requirements.txt", "numpy==1.26.0\n")

	_, err := Resolve(loadDescriptor(t), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, perrors.ErrMissingFile)
}

func TestResolve_EmptyRequirements(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "README.md", "Hello")
	testutil.WriteFile(t, dir, "requirements.txt", "")

	_, err := Resolve(loadDescriptor(t), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, perrors.ErrMissingFile)
}

func TestResolve_NothingDynamic(t *testing.T) {
	input := `[build-system]
requires = ["setuptools>=61.0"]

[project]
name = "x"
version = "0.1.0"
`
	d, err := descriptor.Parse([]byte(input), "pyproject.toml")
	require.NoError(t, err)

	resolved, err := Resolve(d, t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, resolved.Readme)
	assert.Nil(t, resolved.Dependencies)
}

func TestResolve_ContentTypeOverride(t *testing.T) {
	input := `[build-system]
requires = ["setuptools>=61.0"]

[project]
name = "x"
version = "0.1.0"
dynamic = ["readme"]

[tool.setuptools.dynamic]
readme = {file = "README.txt", content-type = "text/markdown"}
`
	d, err := descriptor.Parse([]byte(input), "pyproject.toml")
	require.NoError(t, err)

	dir := t.TempDir()
	testutil.WriteFile(t, dir, "README.txt", "plain but declared markdown")

	resolved, err := Resolve(d, dir)
	require.NoError(t, err)
	require.NotNil(t, resolved.Readme)
	assert.Equal(t, "text/markdown", resolved.Readme.ContentType)
}

func TestParseRequirementsFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "requirements.txt", `# pinned deps
numpy==1.26.0
opencv-python>=4.8  # vision
matplotlib>=3.7,\
<4

--index-url https://pypi.example.org/simple
`)

	reqs, err := ParseRequirementsFile(path)
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	assert.Equal(t, "numpy", reqs[0].Name)
	assert.Equal(t, "opencv-python", reqs[1].Name)
	assert.Equal(t, "matplotlib", reqs[2].Name)
	assert.Equal(t, ">=3.7,<4", reqs[2].Specifiers.String())
}

func TestParseRequirementsFile_NestedInclude(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "base.txt", "numpy==1.26.0\n")
	path := testutil.WriteFile(t, dir, "requirements.txt", "-r base.txt\npillow>=10\n")

	reqs, err := ParseRequirementsFile(path)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "numpy", reqs[0].Name)
	assert.Equal(t, "pillow", reqs[1].Name)
}

func TestParseRequirementsFile_IncludeCycle(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a.txt", "-r b.txt\n")
	path := testutil.WriteFile(t, dir, "b.txt", "-r a.txt\n")

	_, err := ParseRequirementsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestParseRequirementsFile_BadLine(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "requirements.txt", "numpy==1.26.0\n???\n")

	_, err := ParseRequirementsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":2:")
}
