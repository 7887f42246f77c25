package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cacheops/ecinv/pkg/inventory"
)

// Writer renders a report to an output destination in one format.
// Close must be called when the writer was built over a file.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter creates a Writer with the given format and destination.
// If output is nil, os.Stdout is used.
func NewWriter(format Format, output io.Writer) (*Writer, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown output format: %q (supported: %s)",
			format, strings.Join(SupportedFormats(), ", "))
	}
	if output == nil {
		output = os.Stdout
	}
	return &Writer{format: format, output: output}, nil
}

// NewFileWriterOrStdout creates a Writer targeting the given path. An
// empty path means stdout. A path ending in a separator (or naming an
// existing directory) gets a timestamped default file name; parent
// directories are created as needed.
func NewFileWriterOrStdout(format Format, path string) (*Writer, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewWriter(format, os.Stdout)
	}

	target, err := resolveTarget(format, trimmed)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	writer, err := NewWriter(format, file)
	if err != nil {
		file.Close()
		return nil, err
	}
	writer.closer = file
	return writer, nil
}

func resolveTarget(format Format, path string) (string, error) {
	isDir := strings.HasSuffix(path, string(os.PathSeparator)) || strings.HasSuffix(path, "/")
	if !isDir {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			isDir = true
		}
	}
	if !isDir {
		return path, nil
	}

	name := fmt.Sprintf("elasticache-report-%s.%s",
		time.Now().Format("20060102-150405"), format.Extension())
	return filepath.Join(path, name), nil
}

// Close releases the underlying file handle, if any. Safe to call on
// stdout-backed writers.
func (w *Writer) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Write renders the report. The context is accepted for interface
// consistency; file and stdout writes are fast and blocking.
func (w *Writer) Write(ctx context.Context, report *inventory.Report, fields []inventory.Field) error {
	if len(fields) == 0 {
		fields = inventory.AllFields()
	}

	switch w.format {
	case FormatCSV:
		return writeCSV(w.output, report.Records, fields)
	case FormatMarkdown:
		return writeMarkdown(w.output, report.Records, fields)
	case FormatJSON:
		return w.writeJSON(report)
	case FormatYAML:
		return w.writeYAML(report)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) writeJSON(report *inventory.Report) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (w *Writer) writeYAML(report *inventory.Report) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return nil
}
