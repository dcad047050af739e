package descriptor

import (
	"fmt"
	"regexp"

	perrors "github.com/pydist/cli/internal/errors"
	"github.com/pydist/cli/internal/pyver"
)

// nameRe accepts distribution names: alphanumerics separated by single
// runs of ".", "-" or "_".
var nameRe = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// supportedDynamic lists the dynamic fields the build tool can resolve.
var supportedDynamic = map[string]bool{
	DynamicReadme:       true,
	DynamicDependencies: true,
}

// Validate checks every static invariant of the descriptor and returns all
// violations. Dynamic-field file existence is checked at resolve time, not
// here.
func (d *Descriptor) Validate() []error {
	var errs []error

	errs = append(errs, d.validateBuildSystem()...)
	errs = append(errs, d.validateProject()...)
	errs = append(errs, d.validateDynamic()...)

	return errs
}

func (d *Descriptor) validateBuildSystem() []error {
	var errs []error

	if len(d.BuildSystem.Requires) == 0 {
		errs = append(errs, perrors.NewValidationError(
			"build-system.requires must list at least one build requirement",
			d.Path, "build-system.requires",
			`Add e.g. requires = ["setuptools>=61.0"].`,
		))
	}

	for _, raw := range d.BuildSystem.Requires {
		if _, err := pyver.ParseRequirement(raw); err != nil {
			errs = append(errs, perrors.NewValidationError(
				fmt.Sprintf("invalid build requirement %q: %v", raw, err),
				d.Path, "build-system.requires", "",
			))
		}
	}

	return errs
}

func (d *Descriptor) validateProject() []error {
	var errs []error
	p := d.Project

	if p.Name == "" {
		errs = append(errs, perrors.NewValidationError(
			"project.name is required",
			d.Path, "project.name", "",
		))
	} else if !nameRe.MatchString(p.Name) {
		errs = append(errs, perrors.NewValidationError(
			fmt.Sprintf("invalid project name %q", p.Name),
			d.Path, "project.name",
			"Names are alphanumerics separated by '.', '-' or '_'.",
		))
	}

	switch {
	case p.IsDynamic("version"):
		if p.Version != "" {
			errs = append(errs, perrors.NewValidationError(
				"project.version is declared dynamic but set statically",
				d.Path, "project.version",
				"Remove the static value or drop \"version\" from project.dynamic.",
			))
		}
	case p.Version == "":
		errs = append(errs, perrors.NewValidationError(
			"project.version is required",
			d.Path, "project.version", "",
		))
	case !pyver.IsValid(p.Version):
		errs = append(errs, perrors.NewValidationError(
			fmt.Sprintf("invalid version %q", p.Version),
			d.Path, "project.version", "",
		))
	}

	if p.RequiresPython != "" {
		if _, err := pyver.ParseSpecifierSet(p.RequiresPython); err != nil {
			errs = append(errs, perrors.NewValidationError(
				fmt.Sprintf("invalid requires-python %q: %v", p.RequiresPython, err),
				d.Path, "project.requires-python", "",
			))
		}
	}

	for _, raw := range p.Dependencies {
		if _, err := pyver.ParseRequirement(raw); err != nil {
			errs = append(errs, perrors.NewValidationError(
				fmt.Sprintf("invalid dependency %q: %v", raw, err),
				d.Path, "project.dependencies", "",
			))
		}
	}

	if p.License != nil && p.License.File != "" && p.License.Text != "" {
		errs = append(errs, perrors.NewValidationError(
			"project.license may set file or text, not both",
			d.Path, "project.license", "",
		))
	}

	return errs
}

func (d *Descriptor) validateDynamic() []error {
	var errs []error
	p := d.Project

	for _, field := range p.Dynamic {
		if field == "version" {
			// Handled in validateProject; setuptools resolves it from
			// attributes we do not model.
			continue
		}

		if !supportedDynamic[field] {
			errs = append(errs, perrors.NewValidationError(
				fmt.Sprintf("unsupported dynamic field %q", field),
				d.Path, "project.dynamic",
				"Supported dynamic fields: readme, dependencies.",
			))
			continue
		}

		directive := d.Tool.Setuptools.Dynamic.Directive(field)
		if directive == nil {
			errs = append(errs, perrors.NewValidationError(
				fmt.Sprintf("dynamic field %q has no [tool.setuptools.dynamic] entry", field),
				d.Path, "tool.setuptools.dynamic."+field,
				fmt.Sprintf("Add %s = {file = \"...\"} under [tool.setuptools.dynamic].", field),
			))
			continue
		}

		// Every dynamic field must resolve to exactly one source file.
		if len(directive.File) != 1 {
			errs = append(errs, perrors.NewValidationError(
				fmt.Sprintf("dynamic field %q must name exactly one source file, got %d", field, len(directive.File)),
				d.Path, "tool.setuptools.dynamic."+field, "",
			))
		}
	}

	// Fields set both statically and via dynamic indirection are ambiguous.
	if p.IsDynamic(DynamicReadme) && p.Readme != "" {
		errs = append(errs, perrors.NewValidationError(
			"project.readme is declared dynamic but set statically",
			d.Path, "project.readme", "",
		))
	}
	if p.IsDynamic(DynamicDependencies) && len(p.Dependencies) > 0 {
		errs = append(errs, perrors.NewValidationError(
			"project.dependencies is declared dynamic but set statically",
			d.Path, "project.dependencies", "",
		))
	}

	// The reverse: a [tool.setuptools.dynamic] entry for a field that was
	// never declared dynamic is dead configuration.
	for _, field := range []string{DynamicReadme, DynamicDependencies} {
		if d.Tool.Setuptools.Dynamic.Directive(field) != nil && !p.IsDynamic(field) {
			errs = append(errs, perrors.NewValidationError(
				fmt.Sprintf("[tool.setuptools.dynamic] configures %q but project.dynamic does not list it", field),
				d.Path, "project.dynamic", "",
			))
		}
	}

	return errs
}
