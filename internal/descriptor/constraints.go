package descriptor

import (
	"fmt"

	"github.com/pydist/cli/internal/errors"
	"github.com/pydist/cli/internal/pyver"
)

// CheckToolConstraints verifies the invoking build tool against the
// descriptor's build-system requirements. Entries naming other tools are
// ignored; a matching entry whose specifier set rejects toolVersion makes
// the descriptor unbuildable with this tool.
func (d *Descriptor) CheckToolConstraints(toolName, toolVersion string) error {
	if toolVersion == "" {
		return nil
	}

	version, err := pyver.Parse(toolVersion)
	if err != nil {
		return errors.NewValidationError(
			fmt.Sprintf("invalid tool version %q: %v", toolVersion, err),
			d.Path, "", "",
		)
	}

	normalized := pyver.NormalizeName(toolName)
	for _, raw := range d.BuildSystem.Requires {
		req, err := pyver.ParseRequirement(raw)
		if err != nil {
			// Validate reports unparseable entries; skip here.
			continue
		}
		if req.NormalizedName() != normalized {
			continue
		}
		if !req.Specifiers.Check(version) {
			return errors.NewConstraintError(
				fmt.Sprintf("%s %s does not satisfy build requirement %q",
					toolName, version, raw),
				map[string]string{
					"descriptor":  d.Path,
					"field":       "build-system.requires",
					"requirement": raw,
				},
				fmt.Sprintf("Upgrade %s to a version matching %s.", toolName, req.Specifiers.String()),
			)
		}
	}

	return nil
}
