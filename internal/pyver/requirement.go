package pyver

import (
	"fmt"
	"regexp"
	"strings"
)

// Requirement is a parsed dependency line, e.g. "numpy==1.26.0" or
// "requests[socks]>=2.28; python_version < '3.12'".
type Requirement struct {
	// Name is the distribution name as written.
	Name string

	// Extras are the requested extras, without brackets.
	Extras []string

	// Specifiers constrain the acceptable versions (may be empty).
	Specifiers SpecifierSet

	// Marker is the raw environment marker after ";", empty if absent.
	Marker string
}

var requirementRe = regexp.MustCompile(
	`^([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*(?:\[([^\]]*)\])?\s*(.*)$`)

// ParseRequirement parses a single dependency line.
func ParseRequirement(s string) (Requirement, error) {
	line := strings.TrimSpace(s)
	if line == "" {
		return Requirement{}, fmt.Errorf("empty requirement")
	}

	var req Requirement

	// Split off the environment marker first; specifiers never contain ";".
	if idx := strings.Index(line, ";"); idx >= 0 {
		req.Marker = strings.TrimSpace(line[idx+1:])
		line = strings.TrimSpace(line[:idx])
	}

	m := requirementRe.FindStringSubmatch(line)
	if m == nil {
		return Requirement{}, fmt.Errorf("invalid requirement %q", s)
	}

	req.Name = m[1]

	if m[2] != "" {
		for _, extra := range strings.Split(m[2], ",") {
			extra = strings.TrimSpace(extra)
			if extra != "" {
				req.Extras = append(req.Extras, extra)
			}
		}
	}

	rest := strings.TrimSpace(m[3])
	// Specifiers may be parenthesized: "name (>=1.0)".
	if strings.HasPrefix(rest, "(") && strings.HasSuffix(rest, ")") {
		rest = strings.TrimSpace(rest[1 : len(rest)-1])
	}

	if rest != "" {
		set, err := ParseSpecifierSet(rest)
		if err != nil {
			return Requirement{}, fmt.Errorf("requirement %q: %w", s, err)
		}
		req.Specifiers = set
	}

	return req, nil
}

// MustParseRequirement is ParseRequirement for known-good lines; it panics on
// parse errors.
func MustParseRequirement(s string) Requirement {
	req, err := ParseRequirement(s)
	if err != nil {
		panic(err)
	}
	return req
}

// NormalizedName returns the canonical distribution name: lowercase with runs
// of ".", "-" and "_" collapsed to a single "-".
func (r Requirement) NormalizedName() string {
	return NormalizeName(r.Name)
}

// String returns the normalized requirement line.
func (r Requirement) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	if len(r.Extras) > 0 {
		b.WriteString("[")
		b.WriteString(strings.Join(r.Extras, ","))
		b.WriteString("]")
	}
	if !r.Specifiers.IsEmpty() {
		b.WriteString(r.Specifiers.String())
	}
	if r.Marker != "" {
		b.WriteString("; ")
		b.WriteString(r.Marker)
	}
	return b.String()
}

var nameRunRe = regexp.MustCompile(`[-_.]+`)

// NormalizeName canonicalizes a distribution name.
func NormalizeName(name string) string {
	return strings.ToLower(nameRunRe.ReplaceAllString(name, "-"))
}
