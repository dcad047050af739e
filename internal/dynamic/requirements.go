// Package dynamic resolves descriptor metadata values that live in auxiliary
// files rather than being inlined (readme text, dependency lists).
package dynamic

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pydist/cli/internal/pyver"
)

// ParseRequirementsFile reads a requirements.txt and returns the parsed
// dependency lines. Comments, blank lines and backslash continuations follow
// the usual rules; nested "-r other.txt" includes are followed relative to
// the including file, with include cycles rejected.
func ParseRequirementsFile(path string) ([]pyver.Requirement, error) {
	return parseRequirements(path, map[string]bool{})
}

func parseRequirements(path string, visiting map[string]bool) ([]pyver.Requirement, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if visiting[abs] {
		return nil, fmt.Errorf("requirements include cycle via %s", path)
	}
	visiting[abs] = true
	defer delete(visiting, abs)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var reqs []pyver.Requirement
	var pending strings.Builder
	lineNo := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// Strip comments; a "#" inside a requirement line starts a comment
		// when preceded by whitespace or at line start.
		line = stripComment(line)

		if strings.HasSuffix(line, `\`) {
			pending.WriteString(strings.TrimSuffix(line, `\`))
			continue
		}
		pending.WriteString(line)
		full := strings.TrimSpace(pending.String())
		pending.Reset()

		if full == "" {
			continue
		}

		if ref, ok := strings.CutPrefix(full, "-r "); ok {
			nested, err := parseRequirements(filepath.Join(filepath.Dir(path), strings.TrimSpace(ref)), visiting)
			if err != nil {
				return nil, err
			}
			reqs = append(reqs, nested...)
			continue
		}
		if strings.HasPrefix(full, "-") {
			// Pip options (--index-url, -e, ...) carry no metadata value.
			continue
		}

		req, err := pyver.ParseRequirement(full)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		reqs = append(reqs, req)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return reqs, nil
}

func stripComment(line string) string {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "#") {
		return ""
	}
	if idx := strings.Index(line, " #"); idx >= 0 {
		return line[:idx]
	}
	return line
}
