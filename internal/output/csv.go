// Package output serializes hazard grids. The column list below is the
// single source of truth for the CSV layout.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"hazgrid/internal/hazard"
)

// Columns is the header row, in order.
var Columns = []string{
	"location_id", "latitude", "longitude",
	"period_1_intensity_m", "period_1_variance",
	"period_2_intensity_m", "period_2_variance",
	"period_3_intensity_m", "period_3_variance",
	"hazard_type", "unit",
}

// Row renders a record in Columns order.
func Row(rec hazard.Record) []string {
	row := make([]string, 0, len(Columns))
	row = append(row, rec.LocationID, formatFloat(rec.Latitude), formatFloat(rec.Longitude))
	for _, p := range rec.Periods {
		row = append(row, formatFloat(p.Intensity), formatFloat(p.Variance))
	}
	return append(row, rec.HazardType, rec.Unit)
}

// WriteCSV writes the header and one row per record.
func WriteCSV(w io.Writer, records []hazard.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(Row(rec)); err != nil {
			return fmt.Errorf("write %s: %w", rec.LocationID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile creates dir if needed and writes records to dir/name. It
// returns the full path written.
func WriteCSVFile(dir, name string, records []hazard.Record) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
