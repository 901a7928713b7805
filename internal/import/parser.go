// Package importutil loads expenses from CSV and JSON files.
package importutil

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyFile         = errors.New("file contains no records")
)

// ParsedData represents the raw data extracted from a file.
type ParsedData struct {
	Headers []string   // Column headers/field names
	Rows    [][]string // Data rows (all values as strings)
	Format  string     // File format (csv or json)
}

// ParseFile parses a CSV or JSON file and extracts headers and rows
// without making assumptions about structure or field mapping.
func ParseFile(filename string, reader io.Reader) (*ParsedData, error) {
	fileFormat := strings.ToLower(path.Ext(filename))

	switch fileFormat {
	case ".csv":
		return parseCSV(reader)
	case ".json":
		return parseJSON(reader)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileFormat)
	}
}

func parseCSV(reader io.Reader) (*ParsedData, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	// First row is headers
	headers := records[0]
	rows := records[1:]

	return &ParsedData{
		Headers: headers,
		Rows:    rows,
		Format:  "csv",
	}, nil
}

// parseJSON expects an array of objects. Headers are the union of the keys
// of every object, sorted, and numbers keep their literal text.
func parseJSON(reader io.Reader) (*ParsedData, error) {
	var data []map[string]any

	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}

	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	seen := map[string]bool{}
	headers := []string{}
	for _, record := range data {
		for key := range record {
			if !seen[key] {
				seen[key] = true
				headers = append(headers, key)
			}
		}
	}
	slices.Sort(headers)

	rows := make([][]string, 0, len(data))
	for _, record := range data {
		row := make([]string, len(headers))
		for i, header := range headers {
			if val, ok := record[header]; ok && val != nil {
				row[i] = fmt.Sprintf("%v", val)
			}
		}
		rows = append(rows, row)
	}

	return &ParsedData{
		Headers: headers,
		Rows:    rows,
		Format:  "json",
	}, nil
}

// TotalRows returns the total number of data rows.
func (p *ParsedData) TotalRows() int {
	return len(p.Rows)
}
