// Package discovery locates the sub-packages a descriptor bundles: it scans
// the configured source roots for importable packages and filters them
// through the include/exclude pattern sets.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pydist/cli/internal/descriptor"
	perrors "github.com/pydist/cli/internal/errors"
)

// Package is a discovered package.
type Package struct {
	// Name is the dotted import name, e.g. "post_tracking.utils".
	Name string `json:"name"`

	// Dir is the package directory relative to the project root.
	Dir string `json:"dir"`

	// Namespace reports whether the package lacks an __init__.py.
	Namespace bool `json:"namespace,omitempty"`
}

// Result is the outcome of a discovery scan.
type Result struct {
	// Packages are the discovered packages in sorted name order.
	Packages []Package `json:"packages"`

	// Roots are the scanned source roots relative to the project root.
	Roots []string `json:"roots"`
}

// Names returns the dotted package names.
func (r *Result) Names() []string {
	names := make([]string, len(r.Packages))
	for i, pkg := range r.Packages {
		names[i] = pkg.Name
	}
	return names
}

// Discover scans the project rooted at root using the descriptor's discovery
// configuration and returns the matching packages.
//
// An empty result is returned alongside an EmptyPackageError so callers can
// decide whether the condition is fatal.
func Discover(d *descriptor.Descriptor, root string) (*Result, error) {
	find := d.Tool.Setuptools.Packages.Find

	result := &Result{}

	sourceRoot := d.Tool.Setuptools.SourceRoot()
	roots := find.Roots()
	if find == nil && sourceRoot != "." {
		// No explicit find table: fall back to the package-dir mapping.
		roots = []string{sourceRoot}
	}
	result.Roots = roots

	include := find.IncludePatterns()
	exclude := find.ExcludePatterns()
	namespaces := find.AllowNamespaces()

	seen := make(map[string]bool)
	for _, scanRoot := range roots {
		absRoot := filepath.Join(root, scanRoot)

		info, err := os.Stat(absRoot)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &perrors.DetailError{
					Type:     "not found",
					Message:  fmt.Sprintf("discovery root %s does not exist", scanRoot),
					Location: absRoot,
					Field:    "tool.setuptools.packages.find.where",
					Cause:    perrors.ErrNotFound,
				}
			}
			return nil, fmt.Errorf("stat %s: %w", absRoot, err)
		}
		if !info.IsDir() {
			return nil, perrors.NewValidationError(
				fmt.Sprintf("discovery root %s is not a directory", scanRoot),
				absRoot, "tool.setuptools.packages.find.where", "",
			)
		}

		if err := scan(absRoot, "", namespaces, func(pkg Package) {
			if seen[pkg.Name] {
				return
			}
			if !matchAny(include, pkg.Name) || matchAny(exclude, pkg.Name) {
				return
			}
			pkg.Dir = filepath.Join(scanRoot, filepath.FromSlash(strings.ReplaceAll(pkg.Name, ".", "/")))
			seen[pkg.Name] = true
			result.Packages = append(result.Packages, pkg)
		}); err != nil {
			return nil, err
		}
	}

	sort.Slice(result.Packages, func(i, j int) bool {
		return result.Packages[i].Name < result.Packages[j].Name
	})

	if len(result.Packages) == 0 {
		return result, perrors.NewEmptyPackageError(
			"package discovery matched zero packages",
			d.Path,
			"Check tool.setuptools.packages.find.where and the include patterns.",
		)
	}

	return result, nil
}

// scan walks dir looking for packages. prefix is the dotted name of dir
// itself ("" at a scan root). Only directories that are packages are
// descended into; a stray non-package directory ends that branch.
func scan(dir, prefix string, namespaces bool, emit func(Package)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || !validPackageName(entry.Name()) {
			continue
		}

		name := entry.Name()
		dotted := name
		if prefix != "" {
			dotted = prefix + "." + name
		}

		sub := filepath.Join(dir, name)
		isPackage := hasInit(sub)

		if !isPackage && !namespaces {
			continue
		}

		emit(Package{Name: dotted, Namespace: !isPackage})

		if err := scan(sub, dotted, namespaces, emit); err != nil {
			return err
		}
	}

	return nil
}

func hasInit(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "__init__.py"))
	return err == nil && !info.IsDir()
}

// validPackageName filters out directories that cannot be imported
// (hidden directories, egg-info, names with dashes, ...).
func validPackageName(name string) bool {
	if name == "" || name[0] == '.' || name[0] == '_' && strings.HasSuffix(name, "__") {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// matchAny reports whether the dotted name matches any pattern. Patterns use
// fnmatch-style globbing against the full dotted name.
func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
