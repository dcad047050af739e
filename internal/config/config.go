// Package config provides configuration loading and management.
package config

// ProjectConfig contains project-lookup settings.
type ProjectConfig struct {
	// Descriptor is the descriptor filename to look for.
	// Env: PYDIST_DESCRIPTOR, Default: "pyproject.toml"
	Descriptor string `json:"descriptor,omitempty" mapstructure:"descriptor"`

	// Strict upgrades empty-package warnings to errors.
	// Env: PYDIST_STRICT, Default: false. Override with --strict flag.
	Strict bool `json:"strict,omitempty" mapstructure:"strict"`
}

// ToolConfig identifies the build tool the descriptor constraints are
// checked against.
type ToolConfig struct {
	// Name is the backend tool name matched against build-system.requires.
	// Env: PYDIST_TOOL_NAME, Default: "setuptools"
	Name string `json:"name,omitempty" mapstructure:"name"`

	// Version is the tool version used for constraint checks.
	// Env: PYDIST_TOOL_VERSION, Default: unset (checks skipped)
	Version string `json:"version,omitempty" mapstructure:"version"`
}

// Config represents the pydist CLI configuration.
// Loaded from ~/.pydist/config.yaml.
type Config struct {
	// Format is the default output format for build and discover.
	// Env: PYDIST_FORMAT, Default: "yaml"
	Format string `json:"format,omitempty" mapstructure:"format"`

	// OutDir is the default output directory for build --out-dir.
	// Env: PYDIST_OUT_DIR
	OutDir string `json:"outDir,omitempty" mapstructure:"outDir"`

	// Project contains project-lookup settings.
	Project ProjectConfig `json:"project,omitempty" mapstructure:"project"`

	// Tool contains build-tool identity settings.
	Tool ToolConfig `json:"tool,omitempty" mapstructure:"tool"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `pydist config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Format: "yaml",
		Project: ProjectConfig{
			Descriptor: "pyproject.toml",
		},
		Tool: ToolConfig{
			Name: "setuptools",
		},
	}
}

// WithDefaults fills unset fields with their defaults.
func (c *Config) WithDefaults() *Config {
	if c.Format == "" {
		c.Format = "yaml"
	}
	if c.Project.Descriptor == "" {
		c.Project.Descriptor = "pyproject.toml"
	}
	if c.Tool.Name == "" {
		c.Tool.Name = "setuptools"
	}
	return c
}
