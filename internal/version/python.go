package version

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"

	"github.com/pydist/cli/internal/pyver"
)

// pythonVersionRegex matches interpreter version output like "Python 3.11.6".
var pythonVersionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?(?:[a-z]+\d*)?`)

// PythonBinaryInfo contains Python interpreter version information.
type PythonBinaryInfo struct {
	// Version is the interpreter version.
	Version string `json:"version"`

	// Path is the path to the interpreter binary.
	Path string `json:"path"`

	// Found indicates if an interpreter was found.
	Found bool `json:"found"`

	// Message provides additional information when detection fails.
	Message string `json:"message,omitempty"`
}

// DetectPythonBinary finds the Python interpreter in PATH and reads its
// version. python3 is preferred over python.
func DetectPythonBinary() PythonBinaryInfo {
	path, err := exec.LookPath("python3")
	if err != nil {
		path, err = exec.LookPath("python")
	}
	if err != nil {
		return PythonBinaryInfo{
			Found:   false,
			Message: "Python interpreter not found in PATH",
		}
	}

	version, err := getPythonVersion(path)
	if err != nil {
		return PythonBinaryInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get Python version: " + err.Error(),
		}
	}

	return PythonBinaryInfo{
		Version: version,
		Path:    path,
		Found:   true,
	}
}

// getPythonVersion executes 'python --version' and extracts the version.
func getPythonVersion(pythonPath string) (string, error) {
	cmd := exec.Command(pythonPath, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return extractPythonVersion(out.String())
}

// extractPythonVersion extracts the version number from interpreter output.
func extractPythonVersion(output string) (string, error) {
	match := pythonVersionRegex.FindString(output)
	if match == "" {
		return "", fmt.Errorf("could not parse Python version from %q", output)
	}
	return match, nil
}

// Satisfies reports whether the detected interpreter satisfies a
// requires-python specifier set. Returns false when no interpreter was
// found or its version does not parse.
func (p PythonBinaryInfo) Satisfies(requiresPython string) (bool, error) {
	if !p.Found || p.Version == "" {
		return false, fmt.Errorf("no Python interpreter detected")
	}

	set, err := pyver.ParseSpecifierSet(requiresPython)
	if err != nil {
		return false, err
	}

	v, err := pyver.Parse(p.Version)
	if err != nil {
		return false, err
	}

	return set.Check(v), nil
}

// String returns a human-readable interpreter info string.
func (p PythonBinaryInfo) String() string {
	if !p.Found {
		return "  Interpreter: not found\n  Path:        -"
	}

	if p.Version == "" {
		return fmt.Sprintf("  Interpreter: unknown (%s)\n  Path:        %s", p.Message, p.Path)
	}

	return fmt.Sprintf("  Interpreter: %s\n  Path:        %s", p.Version, p.Path)
}
