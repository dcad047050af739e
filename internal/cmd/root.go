// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pydist/cli/internal/config"
	"github.com/pydist/cli/internal/output"
)

var (
	// Global flags
	configFlag       string
	outputFormatFlag string
	verboseFlag      bool
	toolNameFlag     string
	toolVersionFlag  string

	// Loaded configuration (set during PersistentPreRunE)
	cliConfig *config.Config
)

// NewRootCmd creates the root command for the pydist CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pydist",
		Short:         "Python package descriptor tool",
		Long:          `pydist reads pyproject.toml package descriptors, validates them and produces distribution metadata.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: PYDIST_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "", "Output format: yaml, json, metadata")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&toolNameFlag, "tool-name", "", "Build tool name for constraint checks (env: PYDIST_TOOL_NAME)")
	rootCmd.PersistentFlags().StringVar(&toolVersionFlag, "tool-version", "", "Build tool version for constraint checks (env: PYDIST_TOOL_VERSION)")

	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewDiscoverCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	output.SetupLogging(verboseFlag)

	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		// Commands that never touch the config still work; resolution
		// falls back to flags, env vars and defaults.
		output.Debug("config load error", "error", err)
		loaded = config.DefaultConfig()
	}
	cliConfig = loaded

	if verboseFlag {
		config.LogResolvedValues([]config.ResolvedValue{
			resolveFormat(),
			resolveToolName(),
			resolveToolVersion(),
		})
	}

	return nil
}

func resolveFormat() config.ResolvedValue {
	return config.Resolve("format", outputFormatFlag, "PYDIST_FORMAT", GetConfig().Format, "yaml")
}

func resolveToolName() config.ResolvedValue {
	return config.Resolve("tool.name", toolNameFlag, "PYDIST_TOOL_NAME", GetConfig().Tool.Name, "setuptools")
}

func resolveToolVersion() config.ResolvedValue {
	return config.Resolve("tool.version", toolVersionFlag, "PYDIST_TOOL_VERSION", GetConfig().Tool.Version, "")
}

// GetConfig returns the loaded CLI configuration.
func GetConfig() *config.Config {
	if cliConfig == nil {
		return config.DefaultConfig()
	}
	return cliConfig
}

// GetFormat returns the resolved output format.
func GetFormat() output.Format {
	return output.ParseFormat(resolveFormat().Value)
}

// GetToolName returns the resolved build tool name.
func GetToolName() string {
	return resolveToolName().Value
}

// GetToolVersion returns the resolved build tool version.
func GetToolVersion() string {
	return resolveToolVersion().Value
}
