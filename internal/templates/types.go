package templates

// Template represents a project template with its metadata.
type Template struct {
	// Name is the template identifier (simple, standard).
	Name string

	// Description explains the template's purpose and use case.
	Description string

	// Default indicates if this is the default template when --template is omitted.
	Default bool
}

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// ProjectName is the distribution name (from the init argument).
	ProjectName string

	// PackageName is the importable package name (sanitized from ProjectName).
	PackageName string

	// Version is the initial version (hardcoded to 0.1.0).
	Version string

	// Description is the project summary line.
	Description string
}

// GenerateOptions configures project generation behavior.
type GenerateOptions struct {
	// TargetDir is the directory to generate the project in.
	TargetDir string

	// TemplateName is the template to use.
	TemplateName string

	// ProjectName overrides the distribution name derived from TargetDir.
	ProjectName string

	// Description is the project summary line.
	Description string

	// Force allows overwriting files in non-empty directories.
	Force bool
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Files is the list of files created, relative to TargetDir.
	Files []string

	// TemplateName is the template that was used.
	TemplateName string

	// TargetDir is the directory where files were created.
	TargetDir string
}
