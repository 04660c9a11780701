package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DecodeCSV reads a delimited file whose first row is the header. Every cell
// becomes Text; cells missing from short rows stay absent.
func DecodeCSV(b []byte, delim rune) (Dataset, error) {
	r := csv.NewReader(bytes.NewReader(b))
	r.FieldsPerRecord = -1
	r.Comma = delim

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	ds := Dataset{}
	for {
		row, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(ds)+1, err)
		}
		var rec Record
		for i, name := range names {
			if i >= len(row) {
				break
			}
			rec.Set(name, Text(row[i]))
		}
		ds = append(ds, rec)
	}
	return ds, nil
}
