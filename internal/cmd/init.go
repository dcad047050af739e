package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pydist/cli/internal/output"
	"github.com/pydist/cli/internal/templates"
)

// Init command flags
var (
	initTemplateFlag    string
	initDirFlag         string
	initDescriptionFlag string
	initForceFlag       bool
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Scaffold a new Python project",
		Long: `Scaffold a new Python project with a pyproject.toml descriptor.

The generated project uses dynamic readme and dependencies directives and
passes 'pydist vet' out of the box.

Templates:
  simple      Flat layout with the package next to pyproject.toml
  standard    src layout with explicit package discovery (default)

Examples:
  # Create a project in ./post-tracking
  pydist init post-tracking

  # Flat layout in an explicit directory
  pydist init post-tracking --template simple --dir ./pt`,
		Args: cobra.ExactArgs(1),
		RunE: runInit,
	}

	cmd.Flags().StringVarP(&initTemplateFlag, "template", "t", "",
		fmt.Sprintf("Project template: %s", strings.Join(templates.ValidTemplates(), ", ")))
	cmd.Flags().StringVar(&initDirFlag, "dir", "",
		"Target directory (default: ./<name>)")
	cmd.Flags().StringVar(&initDescriptionFlag, "description", "",
		"Project summary line")
	cmd.Flags().BoolVar(&initForceFlag, "force", false,
		"Generate into a non-empty directory")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]

	targetDir := initDirFlag
	if targetDir == "" {
		targetDir = name
	}

	result, err := templates.NewGenerator(templates.GenerateOptions{
		TargetDir:    targetDir,
		TemplateName: initTemplateFlag,
		ProjectName:  name,
		Description:  initDescriptionFlag,
		Force:        initForceFlag,
	}).Generate()
	if err != nil {
		return exitWith(err)
	}

	entries := make([]output.FileEntry, len(result.Files))
	for i, f := range result.Files {
		entries[i] = output.FileEntry{Path: f}
	}
	output.Print(output.RenderFileTree(entries, 40))

	output.Println(output.FormatCheckmark(
		fmt.Sprintf("Created %s project in %s", result.TemplateName, result.TargetDir)))

	return nil
}
