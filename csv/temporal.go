// Package csv loads temporal topic-distribution tables from CSV files.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/topiclab/topicviz"
)

// LoadTable reads a temporal distribution CSV file into a TemporalTable.
func LoadTable(path string) (*topicviz.TemporalTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return table, nil
}

// ReadTable parses CSV into a TemporalTable, preserving header column order.
func ReadTable(r io.Reader) (*topicviz.TemporalTable, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing temporal CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, topicviz.Errorf(topicviz.ENODATA, "temporal CSV has no header row")
	}

	header := records[0]
	table := &topicviz.TemporalTable{Columns: header}

	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
