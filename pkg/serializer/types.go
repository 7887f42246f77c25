// Package serializer renders inventory reports to the supported output
// formats.
//
// CSV and Markdown are row-oriented: they honor the caller's column
// selection and ordering, with title-cased headers and right-aligned
// numeric columns in the Markdown table. JSON and YAML emit the full
// report envelope including run metadata and the per-region failure
// summary.
//
// Usage:
//
//	writer, err := serializer.NewFileWriterOrStdout(serializer.FormatCSV, path)
//	if err != nil {
//		return err
//	}
//	defer writer.Close()
//	return writer.Write(ctx, report, fields)
package serializer

import (
	"context"

	"github.com/cacheops/ecinv/pkg/inventory"
)

// Format represents the output format type.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// IsUnknown reports whether the format is outside the supported set.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatCSV, FormatMarkdown, FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "csv"
	}
}

// SupportedFormats returns a list of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatCSV),
		string(FormatMarkdown),
		string(FormatJSON),
		string(FormatYAML),
	}
}

// Serializer is the interface report renderers implement.
type Serializer interface {
	Write(ctx context.Context, report *inventory.Report, fields []inventory.Field) error
}

// Closer is an optional interface Serializers implement when they hold
// resources such as file handles.
type Closer interface {
	Close() error
}
