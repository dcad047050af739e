package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pydist/cli/internal/descriptor"
	"github.com/pydist/cli/internal/discovery"
	"github.com/pydist/cli/internal/dynamic"
	perrors "github.com/pydist/cli/internal/errors"
	"github.com/pydist/cli/internal/metadata"
	"github.com/pydist/cli/internal/output"
)

// Project is a fully loaded and checked project.
type Project struct {
	// Root is the project directory.
	Root string

	// Descriptor is the parsed pyproject.toml.
	Descriptor *descriptor.Descriptor

	// Resolved contains the materialized dynamic fields.
	Resolved *dynamic.Resolved

	// Packages is the discovery result.
	Packages *discovery.Result

	// Record is the assembled metadata record.
	Record *metadata.Record

	// Warnings are non-fatal conditions encountered while loading.
	Warnings []string
}

// LoadOptions controls project loading.
type LoadOptions struct {
	// ToolName is the build tool matched against build-system.requires.
	ToolName string

	// ToolVersion enables constraint checks when non-empty.
	ToolVersion string

	// Strict upgrades the empty-package warning to an error.
	Strict bool
}

// projectRoot resolves a vet/build path argument to the project directory.
func projectRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return path, nil
	}
	return filepath.Dir(path), nil
}

// loadProject runs the full pipeline: parse, validate, constraint check,
// dynamic resolution, package discovery and record assembly.
func loadProject(path string, opts LoadOptions) (*Project, error) {
	if path == "" {
		path = "."
	}

	root, err := projectRoot(path)
	if err != nil {
		return nil, err
	}

	d, err := descriptor.Load(path)
	if err != nil {
		return nil, err
	}

	if violations := d.Validate(); len(violations) > 0 {
		for _, v := range violations {
			output.Error(v.Error())
		}
		return nil, &perrors.ExitError{
			Err:     fmt.Errorf("%d validation error(s) in %s", len(violations), d.Path),
			Code:    ExitValidationError,
			Printed: true,
		}
	}

	if err := d.CheckToolConstraints(opts.ToolName, opts.ToolVersion); err != nil {
		return nil, err
	}

	resolved, err := dynamic.Resolve(d, root)
	if err != nil {
		return nil, err
	}

	project := &Project{
		Root:       root,
		Descriptor: d,
		Resolved:   resolved,
	}

	packages, err := discovery.Discover(d, root)
	if err != nil {
		if errors.Is(err, perrors.ErrEmptyPackage) && !opts.Strict {
			project.Warnings = append(project.Warnings, err.Error())
			output.Warn("package discovery matched zero packages", "descriptor", d.Path)
		} else {
			return nil, err
		}
	}
	project.Packages = packages

	project.Record = metadata.Assemble(d, resolved, packages)

	return project, nil
}

// loadOptionsFromFlags builds LoadOptions from the resolved global config.
func loadOptionsFromFlags(strict bool) LoadOptions {
	return LoadOptions{
		ToolName:    GetToolName(),
		ToolVersion: GetToolVersion(),
		Strict:      strict || GetConfig().Project.Strict,
	}
}
