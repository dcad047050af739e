package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"github.com/pydist/cli/internal/metadata"
)

// RecordOptions controls metadata record output.
type RecordOptions struct {
	// Format specifies the output format: yaml, json or metadata.
	Format Format
	// Writer is the output destination.
	Writer io.Writer
}

// WriteRecord writes a metadata record to the writer in the given format.
func WriteRecord(rec *metadata.Record, opts RecordOptions) error {
	switch opts.Format {
	case FormatJSON:
		encoder := json.NewEncoder(opts.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(rec); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case FormatMetadata:
		_, err := io.WriteString(opts.Writer, rec.CoreMetadata())
		return err
	case FormatYAML:
		return writeRecordYAML(rec, opts.Writer)
	case FormatTable:
		return fmt.Errorf("format %s not supported for record output", opts.Format)
	}
	return writeRecordYAML(rec, opts.Writer) // Default to YAML
}

// writeRecordYAML serializes through sigs.k8s.io/yaml so the YAML output
// carries the same field names as the JSON output.
func writeRecordYAML(rec *metadata.Record, w io.Writer) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// recordFilenames maps formats to the conventional on-disk filename.
var recordFilenames = map[Format]string{
	FormatYAML:     "metadata.yaml",
	FormatJSON:     "metadata.json",
	FormatMetadata: "METADATA",
}

// WriteRecordFile writes a metadata record into outDir using the
// conventional filename for the format. Returns the written path.
func WriteRecordFile(rec *metadata.Record, outDir string, format Format) (string, error) {
	name, ok := recordFilenames[format]
	if !ok {
		return "", fmt.Errorf("format %s not supported for file output", format)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteRecord(rec, RecordOptions{Format: format, Writer: f}); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	Debug("wrote metadata file", "format", format, "file", path)
	return path, nil
}
