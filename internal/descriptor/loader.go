package descriptor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	perrors "github.com/pydist/cli/internal/errors"
)

// Load reads a descriptor from path. A directory path implies the
// pyproject.toml inside it.
func Load(path string) (*Descriptor, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &perrors.DetailError{
				Type:     "not found",
				Message:  fmt.Sprintf("no descriptor at %s", path),
				Location: path,
				Hint:     "Run inside a project directory or pass the path to a pyproject.toml.",
				Cause:    perrors.ErrNotFound,
			}
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	file := path
	if info.IsDir() {
		file = filepath.Join(path, DescriptorFile)
		if _, err := os.Stat(file); err != nil {
			if os.IsNotExist(err) {
				return nil, &perrors.DetailError{
					Type:     "not found",
					Message:  fmt.Sprintf("no %s in %s", DescriptorFile, path),
					Location: path,
					Cause:    perrors.ErrNotFound,
				}
			}
			return nil, fmt.Errorf("stat %s: %w", file, err)
		}
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}

	d, err := Parse(data, file)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Parse decodes descriptor TOML. location is used for error reporting only.
func Parse(data []byte, location string) (*Descriptor, error) {
	var d Descriptor

	md, err := toml.Decode(string(data), &d)
	if err != nil {
		location := location
		if pe, ok := err.(toml.ParseError); ok && pe.Position.Line > 0 {
			location = fmt.Sprintf("%s:%d", location, pe.Position.Line)
		}
		return nil, perrors.NewParseError(err.Error(), location, "")
	}

	if keys := rejectedKeys(md); len(keys) > 0 {
		return nil, perrors.NewParseError(
			fmt.Sprintf("unrecognized key(s): %s", strings.Join(keys, ", ")),
			location,
			"Remove the key or check its spelling against the descriptor schema.",
		)
	}

	d.Path = location
	return &d, nil
}

// rejectedKeys filters the undecoded keys down to the ones we refuse.
// Unknown top-level sections and unknown keys under [tool.setuptools] are
// errors; other tools' tables (tool.black, tool.ruff, ...) pass through.
func rejectedKeys(md toml.MetaData) []string {
	var rejected []string
	for _, key := range md.Undecoded() {
		dotted := key.String()
		if strings.HasPrefix(dotted, "tool.") && !strings.HasPrefix(dotted, "tool.setuptools.") {
			continue
		}
		rejected = append(rejected, dotted)
	}
	return rejected
}
