package dynamic

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pydist/cli/internal/descriptor"
	perrors "github.com/pydist/cli/internal/errors"
	"github.com/pydist/cli/internal/pyver"
)

// Readme is a resolved long description.
type Readme struct {
	// Path is the source file, relative to the project root as written.
	Path string

	// Text is the file content.
	Text string

	// ContentType is the declared or inferred content type.
	ContentType string
}

// Resolved holds every dynamic metadata value after resolution.
type Resolved struct {
	// Readme is nil when the descriptor declares no dynamic readme.
	Readme *Readme

	// Dependencies is nil when the descriptor declares no dynamic
	// dependency list.
	Dependencies []pyver.Requirement
}

// Resolve reads the auxiliary files behind every dynamic field of d. root is
// the project directory the descriptor's relative paths resolve against.
//
// A missing or empty source file is a MissingFileError; resolution is
// all-or-nothing.
func Resolve(d *descriptor.Descriptor, root string) (*Resolved, error) {
	resolved := &Resolved{}

	if d.Project.IsDynamic(descriptor.DynamicReadme) {
		directive := d.Tool.Setuptools.Dynamic.Readme
		source, err := singleFile(d, descriptor.DynamicReadme, directive)
		if err != nil {
			return nil, err
		}

		text, err := readNonEmpty(descriptor.DynamicReadme, root, source)
		if err != nil {
			return nil, err
		}

		contentType := directive.ContentType
		if contentType == "" {
			contentType = inferContentType(source)
		}

		resolved.Readme = &Readme{
			Path:        source,
			Text:        text,
			ContentType: contentType,
		}
	}

	if d.Project.IsDynamic(descriptor.DynamicDependencies) {
		directive := d.Tool.Setuptools.Dynamic.Dependencies
		source, err := singleFile(d, descriptor.DynamicDependencies, directive)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(root, source)
		if err := requireNonEmpty(descriptor.DynamicDependencies, path); err != nil {
			return nil, err
		}

		reqs, err := ParseRequirementsFile(path)
		if err != nil {
			return nil, perrors.NewValidationError(
				fmt.Sprintf("resolving dependencies: %v", err),
				path, "tool.setuptools.dynamic.dependencies", "",
			)
		}
		resolved.Dependencies = reqs
	}

	return resolved, nil
}

func singleFile(d *descriptor.Descriptor, field string, directive *descriptor.FileDirective) (string, error) {
	if directive == nil || len(directive.File) != 1 {
		return "", perrors.NewValidationError(
			fmt.Sprintf("dynamic field %q must name exactly one source file", field),
			d.Path, "tool.setuptools.dynamic."+field, "",
		)
	}
	return directive.File[0], nil
}

func readNonEmpty(field, root, source string) (string, error) {
	path := filepath.Join(root, source)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", perrors.NewMissingFileError(
				fmt.Sprintf("dynamic field %q references %s, which does not exist", field, source),
				path, "tool.setuptools.dynamic."+field,
				fmt.Sprintf("Create %s or point the dynamic field at an existing file.", source),
			)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return "", perrors.NewMissingFileError(
			fmt.Sprintf("dynamic field %q references %s, which is empty", field, source),
			path, "tool.setuptools.dynamic."+field, "",
		)
	}

	return string(data), nil
}

func requireNonEmpty(field, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return perrors.NewMissingFileError(
				fmt.Sprintf("dynamic field %q references %s, which does not exist", field, filepath.Base(path)),
				path, "tool.setuptools.dynamic."+field,
				fmt.Sprintf("Create %s or point the dynamic field at an existing file.", filepath.Base(path)),
			)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if info.Size() == 0 {
		return perrors.NewMissingFileError(
			fmt.Sprintf("dynamic field %q references %s, which is empty", field, filepath.Base(path)),
			path, "tool.setuptools.dynamic."+field, "",
		)
	}

	return nil
}

// inferContentType maps a readme filename to its content type.
func inferContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md":
		return "text/markdown"
	case ".rst":
		return "text/x-rst"
	default:
		return "text/plain"
	}
}
