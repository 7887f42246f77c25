package serializer

import (
	"fmt"
	"io"
	"strings"

	"github.com/cacheops/ecinv/pkg/inventory"
)

// writeMarkdown renders the records as a pipe-delimited table. Numeric
// columns get a right-alignment marker in the separator row.
func writeMarkdown(out io.Writer, records []inventory.Record, fields []inventory.Field) error {
	header := make([]string, 0, len(fields))
	separators := make([]string, 0, len(fields))
	for _, field := range fields {
		header = append(header, field.Title())
		if field.Numeric() {
			separators = append(separators, "---:")
		} else {
			separators = append(separators, "---")
		}
	}

	if err := writeRow(out, header); err != nil {
		return err
	}
	if err := writeRow(out, separators); err != nil {
		return err
	}

	cells := make([]string, len(fields))
	for i := range records {
		for j, field := range fields {
			cells[j] = field.Value(&records[i])
		}
		if err := writeRow(out, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(out io.Writer, cells []string) error {
	if _, err := fmt.Fprintf(out, "| %s |\n", strings.Join(cells, " | ")); err != nil {
		return fmt.Errorf("failed to write markdown row: %w", err)
	}
	return nil
}
