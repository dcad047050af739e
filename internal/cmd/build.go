package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pydist/cli/internal/output"
)

// Build command flags
var (
	buildOutDirFlag string
	buildStrictFlag bool
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [path]",
		Short: "Resolve a descriptor and emit its metadata record",
		Long: `Build the distribution metadata record for a package descriptor.

This command runs the full pipeline — parse, validate, constraint check,
dynamic-field resolution, package discovery — and emits the resolved
metadata record. Every dynamic field is materialized in the output.

Arguments:
  path    Path to project directory or pyproject.toml (default: current directory)

Examples:
  # Print the metadata record as YAML
  pydist build

  # Print the core-metadata header text
  pydist build -o metadata

  # Write the record into a directory
  pydist build --out-dir dist/

  # Enforce build-system requires against a tool version
  pydist build --tool-version 58.1.0`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}

	cmd.Flags().StringVar(&buildOutDirFlag, "out-dir", "",
		"Write the record into this directory instead of stdout")
	cmd.Flags().BoolVar(&buildStrictFlag, "strict", false,
		"Treat an empty package set as an error")

	return cmd
}

// runBuild executes the build command.
func runBuild(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	format := GetFormat()
	if format == output.FormatTable {
		return exitWith(fmt.Errorf("format %s not supported for build (valid: %v)",
			format, output.ValidBuildFormats()))
	}

	project, err := loadProject(path, loadOptionsFromFlags(buildStrictFlag))
	if err != nil {
		return exitWith(err)
	}

	outDir := buildOutDirFlag
	if outDir == "" {
		outDir = GetConfig().OutDir
	}

	if outDir != "" {
		written, err := output.WriteRecordFile(project.Record, outDir, format)
		if err != nil {
			return exitWith(err)
		}
		output.Println(output.FormatCheckmark(fmt.Sprintf("Wrote %s", written)))
		return nil
	}

	if err := output.WriteRecord(project.Record, output.RecordOptions{
		Format: format,
		Writer: os.Stdout,
	}); err != nil {
		return exitWith(err)
	}

	return nil
}
