// Package metadata assembles the distribution metadata record for a
// descriptor: static project fields merged with resolved dynamic content and
// the discovered package list.
package metadata

import (
	"fmt"
	"strings"

	"github.com/pydist/cli/internal/descriptor"
	"github.com/pydist/cli/internal/discovery"
	"github.com/pydist/cli/internal/dynamic"
)

// Record is the fully resolved metadata of a distribution. Every dynamic
// field has been materialized; serializing a Record never requires touching
// the source tree again.
type Record struct {
	Name           string   `json:"name"`
	Version        string   `json:"version,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	Description    string   `json:"description,omitempty"`
	DescriptionCT  string   `json:"descriptionContentType,omitempty"`
	License        string   `json:"license,omitempty"`
	LicenseFile    string   `json:"licenseFile,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	RequiresPython string   `json:"requiresPython,omitempty"`
	RequiresDist   []string `json:"requiresDist,omitempty"`
	Authors        []string `json:"authors,omitempty"`
	Maintainers    []string `json:"maintainers,omitempty"`
	Classifiers    []string `json:"classifiers,omitempty"`
	URLs           []URL    `json:"urls,omitempty"`
	Packages       []string `json:"packages,omitempty"`
}

// URL is a labelled project URL. A slice keeps the descriptor's label order
// stable across serializations.
type URL struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Assemble builds the Record for a descriptor. resolved and packages may be
// nil when the caller skipped dynamic resolution or discovery.
func Assemble(d *descriptor.Descriptor, resolved *dynamic.Resolved, packages *discovery.Result) *Record {
	p := d.Project

	rec := &Record{
		Name:           p.Name,
		Version:        p.Version,
		Summary:        p.Description,
		Keywords:       p.Keywords,
		RequiresPython: p.RequiresPython,
		Classifiers:    p.Classifiers,
	}

	if p.License != nil {
		rec.License = p.License.Text
		rec.LicenseFile = p.License.File
	}

	for _, a := range p.Authors {
		rec.Authors = append(rec.Authors, a.String())
	}
	for _, m := range p.Maintainers {
		rec.Maintainers = append(rec.Maintainers, m.String())
	}

	for _, label := range p.SortedURLNames() {
		rec.URLs = append(rec.URLs, URL{Label: label, URL: p.URLs[label]})
	}

	rec.RequiresDist = p.Dependencies
	if resolved != nil {
		if resolved.Readme != nil {
			rec.Description = resolved.Readme.Text
			rec.DescriptionCT = resolved.Readme.ContentType
		}
		if len(resolved.Dependencies) > 0 {
			rec.RequiresDist = nil
			for _, req := range resolved.Dependencies {
				rec.RequiresDist = append(rec.RequiresDist, req.String())
			}
		}
	}

	if packages != nil {
		rec.Packages = packages.Names()
	}

	return rec
}

// CoreMetadata renders the Record as a core-metadata file, the email-header
// format installers consume. The long description follows the headers after
// a blank line.
func (r *Record) CoreMetadata() string {
	var b strings.Builder

	header := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", key, value)
		}
	}

	header("Metadata-Version", "2.1")
	header("Name", r.Name)
	header("Version", r.Version)
	header("Summary", r.Summary)
	if len(r.Keywords) > 0 {
		header("Keywords", strings.Join(r.Keywords, ","))
	}
	for _, a := range r.Authors {
		header("Author-email", a)
	}
	for _, m := range r.Maintainers {
		header("Maintainer-email", m)
	}
	header("License", r.License)
	if r.LicenseFile != "" {
		header("License-File", r.LicenseFile)
	}
	for _, c := range r.Classifiers {
		header("Classifier", c)
	}
	header("Requires-Python", r.RequiresPython)
	for _, req := range r.RequiresDist {
		header("Requires-Dist", req)
	}
	for _, u := range r.URLs {
		header("Project-URL", fmt.Sprintf("%s, %s", u.Label, u.URL))
	}
	header("Description-Content-Type", r.DescriptionCT)

	if r.Description != "" {
		b.WriteString("\n")
		b.WriteString(r.Description)
		if !strings.HasSuffix(r.Description, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}
