package discovery

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pydist/cli/internal/descriptor"
	perrors "github.com/pydist/cli/internal/errors"
	"github.com/pydist/cli/internal/testutil"
)

func parseDescriptor(t *testing.T, data string) *descriptor.Descriptor {
	t.Helper()
	d, err := descriptor.Parse([]byte(data), "pyproject.toml")
	require.NoError(t, err)
	return d
}

const trackingDescriptor = `
[build-system]
requires = ["setuptools>=61.0"]
build-backend = "setuptools.build_meta"

[project]
name = "post_tracking"
version = "0.4.0"

[tool.setuptools]
package-dir = {"" = "src"}

[tool.setuptools.packages.find]
where = ["src"]
include = ["post_tracking*"]
exclude = ["post_tracking_tests*"]
namespaces = false
`

func TestDiscover_SourceLayout(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackage(t, root, "src", "post_tracking")
	testutil.WritePackage(t, root, "src", "post_tracking.camera")
	testutil.WritePackage(t, root, "src", "post_tracking.utils")
	testutil.WritePackage(t, root, "src", "post_tracking_tests")
	testutil.WritePackage(t, root, "src", "scratch")

	d := parseDescriptor(t, trackingDescriptor)

	result, err := Discover(d, root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"post_tracking",
		"post_tracking.camera",
		"post_tracking.utils",
	}, result.Names())
	assert.Equal(t, []string{"src"}, result.Roots)
	assert.Equal(t, filepath.Join("src", "post_tracking", "camera"), result.Packages[1].Dir)
}

func TestDiscover_ExcludeWinsOverInclude(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackage(t, root, "src", "post_tracking")
	testutil.WritePackage(t, root, "src", "post_tracking_tests")
	testutil.WritePackage(t, root, "src", "post_tracking_tests.fixtures")

	d := parseDescriptor(t, trackingDescriptor)

	result, err := Discover(d, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"post_tracking"}, result.Names())
}

func TestDiscover_NoNamespacesSkipsBareDirs(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackage(t, root, "src", "post_tracking")
	testutil.MkdirAll(t, root, "src", "post_tracking", "data")

	d := parseDescriptor(t, trackingDescriptor)

	result, err := Discover(d, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"post_tracking"}, result.Names())
}

func TestDiscover_NamespacePackages(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackage(t, root, "src", "post_tracking")
	testutil.MkdirAll(t, root, "src", "post_tracking", "plugins")

	d := parseDescriptor(t, `
[build-system]
requires = ["setuptools>=61.0"]
build-backend = "setuptools.build_meta"

[project]
name = "post_tracking"
version = "0.4.0"

[tool.setuptools.packages.find]
where = ["src"]
include = ["post_tracking*"]
`)

	result, err := Discover(d, root)
	require.NoError(t, err)
	require.Equal(t, []string{"post_tracking", "post_tracking.plugins"}, result.Names())
	assert.False(t, result.Packages[0].Namespace)
	assert.True(t, result.Packages[1].Namespace)
}

func TestDiscover_Empty(t *testing.T) {
	root := t.TempDir()
	testutil.MkdirAll(t, root, "src")

	d := parseDescriptor(t, trackingDescriptor)

	result, err := Discover(d, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, perrors.ErrEmptyPackage)
	assert.Empty(t, result.Packages)
}

func TestDiscover_MissingRoot(t *testing.T) {
	root := t.TempDir()

	d := parseDescriptor(t, trackingDescriptor)

	_, err := Discover(d, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, perrors.ErrNotFound)
}

func TestDiscover_DefaultsToFlatLayout(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackage(t, root, "", "post_tracking")
	testutil.WritePackage(t, root, "", "helpers")

	d := parseDescriptor(t, `
[build-system]
requires = ["setuptools>=61.0"]
build-backend = "setuptools.build_meta"

[project]
name = "post_tracking"
version = "0.4.0"
`)

	result, err := Discover(d, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"helpers", "post_tracking"}, result.Names())
	assert.Equal(t, []string{"."}, result.Roots)
}

func TestDiscover_PackageDirWithoutFindTable(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackage(t, root, "src", "post_tracking")

	d := parseDescriptor(t, `
[build-system]
requires = ["setuptools>=61.0"]
build-backend = "setuptools.build_meta"

[project]
name = "post_tracking"
version = "0.4.0"

[tool.setuptools]
package-dir = {"" = "src"}
`)

	result, err := Discover(d, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"post_tracking"}, result.Names())
	assert.Equal(t, []string{"src"}, result.Roots)
}
