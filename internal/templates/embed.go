// Package templates provides embedded project templates and rendering.
package templates

import "embed"

// TemplateFS holds the embedded project templates. The all: prefix keeps
// files with leading underscores (like __init__.py.tmpl) in the embed.
//
//go:embed all:simple all:standard
var TemplateFS embed.FS
