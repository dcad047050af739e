package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pydist/cli/internal/output"
	"github.com/pydist/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show pydist CLI version information.

Displays:
  - pydist version, commit, and build date
  - The Python interpreter found in PATH`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetInfo()

	output.Println(fmt.Sprintf("pydist version %s", info.Version))
	output.Println(fmt.Sprintf("  Commit:  %s", info.GitCommit))
	output.Println(fmt.Sprintf("  Built:   %s", info.BuildDate))
	output.Println(fmt.Sprintf("  Go:      %s", info.GoVersion))

	py := version.DetectPythonBinary()
	output.Println("")
	output.Println("Python:")
	output.Println(py.String())

	return nil
}
