package serializer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cacheops/ecinv/pkg/inventory"
)

// writeCSV renders the records as comma-delimited rows with a
// title-cased header.
func writeCSV(out io.Writer, records []inventory.Record, fields []inventory.Field) error {
	writer := csv.NewWriter(out)

	header := make([]string, 0, len(fields))
	for _, field := range fields {
		header = append(header, field.Title())
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(fields))
	for i := range records {
		for j, field := range fields {
			row[j] = field.Value(&records[i])
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
