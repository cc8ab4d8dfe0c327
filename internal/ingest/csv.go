// Package ingest reads return series from CSV files.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/wonny/quantanalysis/internal/series"
)

// LoadCSV reads a two-column (date, return) CSV file into raw points.
// A header row is detected and skipped; empty value cells become NaN so
// the series preparation step drops them.
func LoadCSV(path string) ([]series.RawPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	points, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	return points, nil
}

// ReadCSV parses (date, return) rows from r.
func ReadCSV(r io.Reader) ([]series.RawPoint, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var points []series.RawPoint
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 2 {
			continue
		}

		key := strings.TrimSpace(record[0])
		raw := strings.TrimSpace(record[1])

		if first {
			first = false
			if isHeader(raw) {
				continue
			}
		}

		value := math.NaN()
		if raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("parse value %q for %q: %w", raw, key, err)
			}
			value = v
		}

		points = append(points, series.RawPoint{Key: key, Value: value})
	}

	return points, nil
}

// isHeader reports whether the value cell of the first row is non-numeric,
// which marks the row as a header.
func isHeader(value string) bool {
	if value == "" {
		return false
	}
	_, err := strconv.ParseFloat(value, 64)
	return err != nil
}
