package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pydist/cli/internal/output"
	"github.com/pydist/cli/internal/watch"
)

// Vet command flags
var (
	vetStrictFlag bool
	vetWatchFlag  bool
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet [path]",
		Short: "Validate a package descriptor without building",
		Long: `Validate a pyproject.toml package descriptor.

This command parses the descriptor, checks every schema rule, resolves the
dynamic fields against the source tree and runs package discovery. No output
files are written — purely a pass/fail validation tool with per-check
feedback.

Arguments:
  path    Path to project directory or pyproject.toml (default: current directory)

Examples:
  # Validate the project in the current directory
  pydist vet

  # Treat an empty package set as an error
  pydist vet ./my-project --strict

  # Re-validate whenever the descriptor or its files change
  pydist vet --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVet,
	}

	cmd.Flags().BoolVar(&vetStrictFlag, "strict", false,
		"Treat an empty package set as an error")
	cmd.Flags().BoolVarP(&vetWatchFlag, "watch", "w", false,
		"Re-validate on file changes")

	return cmd
}

// runVet executes the vet command.
func runVet(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	if vetWatchFlag {
		return runVetWatch(cmd.Context(), path)
	}

	if err := vetOnce(path); err != nil {
		return exitWith(err)
	}
	return nil
}

// vetOnce runs a single validation pass and prints the check lines.
func vetOnce(path string) error {
	project, err := loadProject(path, loadOptionsFromFlags(vetStrictFlag))
	if err != nil {
		return err
	}

	d := project.Descriptor

	output.Println(output.FormatCheckLine("descriptor", d.Path, output.StatusOK))
	output.Println(output.FormatCheckLine("build-system", d.BuildSystem.BuildBackend, output.StatusOK))

	if project.Resolved.Readme != nil {
		detail := fmt.Sprintf("%s (%s)", project.Resolved.Readme.Path, project.Resolved.Readme.ContentType)
		output.Println(output.FormatCheckLine("readme", detail, output.StatusOK))
	}
	if deps := project.Resolved.Dependencies; deps != nil {
		detail := fmt.Sprintf("%d requirement(s)", len(deps))
		output.Println(output.FormatCheckLine("dependencies", detail, output.StatusOK))
	}

	status := output.StatusOK
	packageCount := 0
	if project.Packages != nil {
		packageCount = len(project.Packages.Packages)
	}
	if packageCount == 0 {
		status = output.StatusWarning
	}
	output.Println(output.FormatCheckLine("packages", fmt.Sprintf("%d found", packageCount), status))

	summary := fmt.Sprintf("Descriptor valid (%s %s)", d.Project.Name, d.Project.Version)
	output.Println(output.FormatCheckmark(summary))

	return nil
}

// runVetWatch re-runs validation on every change until interrupted.
func runVetWatch(ctx context.Context, path string) error {
	root, err := projectRoot(path)
	if err != nil {
		return exitWith(err)
	}

	w, err := watch.New(watch.Config{
		Root: root,
		Run: func(ctx context.Context) error {
			return vetOnce(path)
		},
	})
	if err != nil {
		return exitWith(err)
	}

	if err := w.Start(ctx); err != nil && ctx.Err() == nil {
		return exitWith(err)
	}
	return nil
}
