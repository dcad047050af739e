package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pydist/cli/internal/output"
)

// NewDiscoverCmd creates the discover command.
func NewDiscoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discover [path]",
		Short: "List the packages a descriptor bundles",
		Long: `Run package discovery for a descriptor and list the result.

Discovery scans the configured source roots for importable packages and
filters them through the include/exclude patterns from
tool.setuptools.packages.find.

Arguments:
  path    Path to project directory or pyproject.toml (default: current directory)

Examples:
  # List packages as a table
  pydist discover

  # List packages as JSON
  pydist discover -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDiscover,
	}
}

// runDiscover executes the discover command.
func runDiscover(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	// Discovery output defaults to a table; -o yaml/json switch to
	// machine-readable forms.
	format := output.FormatTable
	if outputFormatFlag != "" {
		format = output.ParseFormat(outputFormatFlag)
	}

	project, err := loadProject(path, loadOptionsFromFlags(false))
	if err != nil {
		return exitWith(err)
	}

	result := project.Packages

	switch format {
	case output.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return exitWith(err)
		}
	case output.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return exitWith(err)
		}
		if err := encoder.Close(); err != nil {
			return exitWith(err)
		}
	default:
		t := output.NewTable("PACKAGE", "DIR", "NAMESPACE")
		for _, pkg := range result.Packages {
			ns := ""
			if pkg.Namespace {
				ns = "yes"
			}
			t.Row(pkg.Name, pkg.Dir, ns)
		}
		output.Println(t.String())
		output.Println(output.FormatCheckmark(fmt.Sprintf("%d package(s)", len(result.Packages))))
	}

	return nil
}
