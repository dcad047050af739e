package templates

import (
	"fmt"
	"regexp"
	"strings"
)

// registry holds the known templates.
var registry = []Template{
	{
		Name:        "simple",
		Description: "Flat layout with the package next to pyproject.toml.",
	},
	{
		Name:        "standard",
		Description: "src layout with explicit package discovery.",
		Default:     true,
	},
}

// Get returns the template with the given name.
func Get(name string) (Template, error) {
	if name == "" {
		return DefaultTemplate(), nil
	}
	for _, tmpl := range registry {
		if tmpl.Name == name {
			return tmpl, nil
		}
	}
	return Template{}, fmt.Errorf("unknown template %q (valid: %s)",
		name, strings.Join(ValidTemplates(), ", "))
}

// DefaultTemplate returns the template used when none is named.
func DefaultTemplate() Template {
	for _, tmpl := range registry {
		if tmpl.Default {
			return tmpl
		}
	}
	return registry[0]
}

// ValidTemplates returns all valid template names.
func ValidTemplates() []string {
	names := make([]string, len(registry))
	for i, tmpl := range registry {
		names[i] = tmpl.Name
	}
	return names
}

var projectNameRe = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// ValidateProjectName checks that a distribution name is acceptable.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if !projectNameRe.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must start and end with a letter or digit and contain only letters, digits, '.', '-' and '_'", name)
	}
	return nil
}

// SanitizeName converts a distribution name into an importable package name:
// lowercase with separators folded to underscores.
func SanitizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(name)
	return name
}
