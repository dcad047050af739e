// Package descriptor loads, validates and re-serializes package descriptors
// (pyproject.toml documents).
package descriptor

import (
	"fmt"
	"sort"
	"strings"
)

// DescriptorFile is the canonical descriptor filename.
const DescriptorFile = "pyproject.toml"

// Dynamic field names the descriptor may delegate to auxiliary files.
const (
	DynamicReadme       = "readme"
	DynamicDependencies = "dependencies"
)

// Descriptor is a parsed package descriptor.
type Descriptor struct {
	BuildSystem BuildSystem `toml:"build-system" json:"build-system"`
	Project     Project     `toml:"project" json:"project"`
	Tool        Tool        `toml:"tool,omitempty" json:"tool,omitempty"`

	// Path is the descriptor file this was loaded from, empty for in-memory
	// descriptors.
	Path string `toml:"-" json:"-"`
}

// BuildSystem declares the build-time tool requirements.
type BuildSystem struct {
	// Requires lists build-tool requirement strings, e.g. "setuptools>=61.0".
	Requires []string `toml:"requires" json:"requires"`

	// BuildBackend names the backend entry point.
	BuildBackend string `toml:"build-backend,omitempty" json:"build-backend,omitempty"`
}

// Project is the static package metadata.
type Project struct {
	Name           string            `toml:"name" json:"name"`
	Dynamic        []string          `toml:"dynamic,omitempty" json:"dynamic,omitempty"`
	Version        string            `toml:"version,omitempty" json:"version,omitempty"`
	Description    string            `toml:"description,omitempty" json:"description,omitempty"`
	Readme         string            `toml:"readme,omitempty" json:"readme,omitempty"`
	License        *License          `toml:"license,omitempty" json:"license,omitempty"`
	Keywords       []string          `toml:"keywords,omitempty" json:"keywords,omitempty"`
	RequiresPython string            `toml:"requires-python,omitempty" json:"requires-python,omitempty"`
	Dependencies   []string          `toml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Authors        []Person          `toml:"authors,omitempty" json:"authors,omitempty"`
	Maintainers    []Person          `toml:"maintainers,omitempty" json:"maintainers,omitempty"`
	Classifiers    []string          `toml:"classifiers,omitempty" json:"classifiers,omitempty"`
	URLs           map[string]string `toml:"urls,omitempty" json:"urls,omitempty"`
}

// IsDynamic reports whether the named field is declared dynamic.
func (p Project) IsDynamic(field string) bool {
	for _, d := range p.Dynamic {
		if d == field {
			return true
		}
	}
	return false
}

// SortedURLNames returns the URL labels in deterministic order.
func (p Project) SortedURLNames() []string {
	names := make([]string, 0, len(p.URLs))
	for name := range p.URLs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Person is an author or maintainer identity record.
type Person struct {
	Name  string `toml:"name,omitempty" json:"name,omitempty"`
	Email string `toml:"email,omitempty" json:"email,omitempty"`
}

// String renders the person for metadata output: "Name <email>".
func (p Person) String() string {
	switch {
	case p.Name != "" && p.Email != "":
		return fmt.Sprintf("%s <%s>", p.Name, p.Email)
	case p.Name != "":
		return p.Name
	default:
		return p.Email
	}
}

// License is a license reference: either an inline text or a file pointer.
// The descriptor may spell it as a bare string (treated as text) or as an
// inline table with a "file" or "text" key.
type License struct {
	File string `json:"file,omitempty"`
	Text string `json:"text,omitempty"`
}

// UnmarshalTOML accepts both the string and the table spelling.
func (l *License) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case string:
		l.Text = v
		return nil
	case map[string]interface{}:
		for key, raw := range v {
			s, ok := raw.(string)
			if !ok {
				return fmt.Errorf("license.%s: expected string", key)
			}
			switch key {
			case "file":
				l.File = s
			case "text":
				l.Text = s
			default:
				return fmt.Errorf("license: unknown key %q", key)
			}
		}
		return nil
	default:
		return fmt.Errorf("license: expected string or table, got %T", data)
	}
}

// MarshalTOML re-serializes the license reference.
func (l License) MarshalTOML() ([]byte, error) {
	if l.File != "" {
		return []byte(fmt.Sprintf("{file = %q}", l.File)), nil
	}
	return []byte(fmt.Sprintf("{text = %q}", l.Text)), nil
}

// Tool holds tool-specific configuration tables.
type Tool struct {
	Setuptools Setuptools `toml:"setuptools,omitempty" json:"setuptools,omitempty"`
}

// Setuptools is the [tool.setuptools] table: layout rules and dynamic-field
// indirections.
type Setuptools struct {
	// PackageDir maps package roots to directories ("" -> "src" for the src
	// layout).
	PackageDir map[string]string `toml:"package-dir,omitempty" json:"package-dir,omitempty"`

	// IncludePackageData controls bundling of non-code files. nil means the
	// build tool's default.
	IncludePackageData *bool `toml:"include-package-data,omitempty" json:"include-package-data,omitempty"`

	Dynamic  DynamicTable  `toml:"dynamic,omitempty" json:"dynamic,omitempty"`
	Packages PackagesTable `toml:"packages,omitempty" json:"packages,omitempty"`
}

// SourceRoot returns the directory mapped to the package root, "." if the
// descriptor declares no mapping.
func (s Setuptools) SourceRoot() string {
	if dir, ok := s.PackageDir[""]; ok && dir != "" {
		return dir
	}
	return "."
}

// DynamicTable maps dynamic metadata fields to their source files.
type DynamicTable struct {
	Readme       *FileDirective `toml:"readme,omitempty" json:"readme,omitempty"`
	Dependencies *FileDirective `toml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// Directive returns the directive for a dynamic field name, nil if absent.
func (d DynamicTable) Directive(field string) *FileDirective {
	switch field {
	case DynamicReadme:
		return d.Readme
	case DynamicDependencies:
		return d.Dependencies
	default:
		return nil
	}
}

// FileDirective is an indirection to auxiliary files supplying a metadata
// value: {file = "README.md"} or {file = ["requirements.txt"]}, optionally
// with an explicit content-type.
type FileDirective struct {
	File        []string `json:"file"`
	ContentType string   `json:"content-type,omitempty"`
}

// UnmarshalTOML accepts both the single-file and the file-list spelling.
func (f *FileDirective) UnmarshalTOML(data interface{}) error {
	table, ok := data.(map[string]interface{})
	if !ok {
		return fmt.Errorf("dynamic directive: expected table, got %T", data)
	}

	for key, raw := range table {
		switch key {
		case "file":
			switch v := raw.(type) {
			case string:
				f.File = []string{v}
			case []interface{}:
				for _, item := range v {
					s, ok := item.(string)
					if !ok {
						return fmt.Errorf("dynamic directive: file entries must be strings")
					}
					f.File = append(f.File, s)
				}
			default:
				return fmt.Errorf("dynamic directive: file must be a string or array")
			}
		case "content-type":
			s, ok := raw.(string)
			if !ok {
				return fmt.Errorf("dynamic directive: content-type must be a string")
			}
			f.ContentType = s
		default:
			return fmt.Errorf("dynamic directive: unknown key %q", key)
		}
	}

	return nil
}

// MarshalTOML re-serializes the directive.
func (f FileDirective) MarshalTOML() ([]byte, error) {
	var b strings.Builder
	b.WriteString("{file = ")
	if len(f.File) == 1 {
		fmt.Fprintf(&b, "%q", f.File[0])
	} else {
		b.WriteString("[")
		for i, file := range f.File {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q", file)
		}
		b.WriteString("]")
	}
	if f.ContentType != "" {
		fmt.Fprintf(&b, ", content-type = %q", f.ContentType)
	}
	b.WriteString("}")
	return []byte(b.String()), nil
}

// PackagesTable is the [tool.setuptools.packages] table.
type PackagesTable struct {
	Find *FindDirective `toml:"find,omitempty" json:"find,omitempty"`
}

// FindDirective is the package-discovery configuration.
type FindDirective struct {
	// Where lists root directories to scan. Default: ["."].
	Where []string `toml:"where,omitempty" json:"where,omitempty"`

	// Include lists name patterns to bundle. Default: ["*"].
	Include []string `toml:"include,omitempty" json:"include,omitempty"`

	// Exclude lists name patterns to drop; exclusion wins over inclusion.
	Exclude []string `toml:"exclude,omitempty" json:"exclude,omitempty"`

	// Namespaces enables namespace-package discovery (directories without
	// __init__.py). nil means the build tool's default.
	Namespaces *bool `toml:"namespaces,omitempty" json:"namespaces,omitempty"`
}

// Roots returns the scan roots with the default applied.
func (f *FindDirective) Roots() []string {
	if f == nil || len(f.Where) == 0 {
		return []string{"."}
	}
	return f.Where
}

// IncludePatterns returns the include set with the default applied.
func (f *FindDirective) IncludePatterns() []string {
	if f == nil || len(f.Include) == 0 {
		return []string{"*"}
	}
	return f.Include
}

// ExcludePatterns returns the exclude set.
func (f *FindDirective) ExcludePatterns() []string {
	if f == nil {
		return nil
	}
	return f.Exclude
}

// AllowNamespaces reports whether namespace packages participate in
// discovery.
func (f *FindDirective) AllowNamespaces() bool {
	if f == nil || f.Namespaces == nil {
		return true
	}
	return *f.Namespaces
}
