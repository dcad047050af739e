package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pydist/cli/internal/output"
)

// Generator handles project generation from templates.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate creates a new project from a template.
func (g *Generator) Generate() (*GenerateResult, error) {
	tmpl, err := Get(g.opts.TemplateName)
	if err != nil {
		return nil, err
	}

	projectName := g.opts.ProjectName
	if projectName == "" {
		projectName = filepath.Base(g.opts.TargetDir)
	}

	if err := ValidateProjectName(projectName); err != nil {
		return nil, err
	}

	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	description := g.opts.Description
	if description == "" {
		description = "Add a short description here"
	}

	data := TemplateData{
		ProjectName: projectName,
		PackageName: SanitizeName(projectName),
		Version:     "0.1.0",
		Description: description,
	}

	output.Debug("generating project",
		"template", tmpl.Name,
		"project", projectName,
		"dir", g.opts.TargetDir,
	)

	files, err := NewRenderer(data).RenderTemplate(tmpl.Name)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		TemplateName: tmpl.Name,
		TargetDir:    g.opts.TargetDir,
	}

	for _, f := range files {
		targetPath := filepath.Join(g.opts.TargetDir, filepath.FromSlash(f.TargetPath))

		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", targetPath, err)
		}

		if err := os.WriteFile(targetPath, f.Content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", targetPath, err)
		}

		result.Files = append(result.Files, f.TargetPath)
	}

	return result, nil
}

// checkTargetDir verifies the target directory is usable.
func (g *Generator) checkTargetDir() error {
	entries, err := os.ReadDir(g.opts.TargetDir)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(g.opts.TargetDir, 0o755)
		}
		return err
	}

	if len(entries) > 0 && !g.opts.Force {
		return fmt.Errorf("directory %s is not empty (use --force to overwrite)", g.opts.TargetDir)
	}

	return nil
}
