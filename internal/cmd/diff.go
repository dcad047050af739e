package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	perrors "github.com/pydist/cli/internal/errors"
	"github.com/pydist/cli/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <path-a> <path-b>",
		Short: "Compare the metadata records of two projects",
		Long: `Build the metadata records of two projects and show a structured diff.

Both projects go through the full pipeline first, so the comparison covers
resolved dynamic fields and discovered packages, not just the raw TOML.

Examples:
  # Compare a working tree against a released checkout
  pydist diff ./main ./release-0.4.0`,
		Args: cobra.ExactArgs(2),
		RunE: runDiff,
	}
}

// runDiff executes the diff command.
func runDiff(cmd *cobra.Command, args []string) error {
	opts := loadOptionsFromFlags(false)

	var fromRecord, toRecord []byte
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var buildErr error
		if fromRecord, buildErr = recordYAML(args[0], opts); buildErr != nil {
			return buildErr
		}
		toRecord, buildErr = recordYAML(args[1], opts)
		return buildErr
	}, output.WithTitle("Building metadata records..."))
	if err != nil {
		return exitWith(err)
	}

	diff, err := output.DiffYAML(args[0], fromRecord, args[1], toRecord, output.IsTTY())
	if err != nil {
		return exitWith(err)
	}

	if diff == "" {
		output.Println(output.FormatCheckmark("Metadata records are identical"))
		return nil
	}

	output.Print(diff)
	return &perrors.ExitError{
		Err:     fmt.Errorf("metadata records differ"),
		Code:    ExitGeneralError,
		Printed: true,
	}
}

// recordYAML builds a project and serializes its record to YAML.
func recordYAML(path string, opts LoadOptions) ([]byte, error) {
	project, err := loadProject(path, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := output.WriteRecord(project.Record, output.RecordOptions{
		Format: output.FormatYAML,
		Writer: &buf,
	}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
