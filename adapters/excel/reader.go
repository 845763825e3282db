package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"bikerental/domain/core"
	"bikerental/domain/rental"
	"bikerental/ports"
)

// Canonical column names of the raw rental table.
const (
	ColDate        = "date"
	ColRentedCount = "rented_bike_count"
	ColHour        = "hour"
	ColTemp        = "temp"
	ColHumidity    = "humidity"
	ColWindSpeed   = "wind_speed"
	ColVisibility  = "visibility"
	ColSolarRad    = "solar_rad"
	ColRainfall    = "rainfall"
	ColSnowfall    = "snowfall"
	ColSeasons     = "seasons"
	ColHoliday     = "holiday"
)

// requiredColumns must be present in the header row; the rest are covariates
// carried through when available.
var requiredColumns = []string{ColDate, ColRentedCount, ColHour}

// DataReader reads the raw rental table from an Excel or CSV file and acts
// as the file-backed record source.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

var _ ports.RecordSource = (*DataReader)(nil)

// NewDataReader creates a reader that handles both Excel and CSV files,
// picking the format from the file extension.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Name identifies the source for logs and error messages.
func (r *DataReader) Name() string {
	return r.filePath
}

// Load reads the backing file into raw records. Dates stay textual; the
// enricher owns date parsing.
func (r *DataReader) Load(ctx context.Context) ([]rental.Record, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		return nil, core.NewSourceUnavailableError(r.filePath, err)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		err = fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, core.NewSourceUnavailableError(r.filePath, err)
	}

	if len(rows) < 2 {
		return nil, core.NewEmptyDatasetError(r.filePath)
	}
	return r.processRows(ctx, rows)
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// The raw table always lives on Sheet1
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	return rows, nil
}

// processRows converts raw string rows into records, validating the header
// and the per-row numeric fields.
func (r *DataReader) processRows(ctx context.Context, rows [][]string) ([]rental.Record, error) {
	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, core.NewSourceUnavailableError(r.filePath, err)
	}

	records := make([]rental.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := parseRecord(columns, row)
		if err != nil {
			return nil, core.NewSourceUnavailableError(r.filePath, fmt.Errorf("row %d: %w", i+2, err))
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, core.NewEmptyDatasetError(r.filePath)
	}
	return records, nil
}

// mapColumns builds a header-name to index map, normalizing header casing.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	return columns, nil
}

func parseRecord(columns map[string]int, row []string) (rental.Record, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	count, err := strconv.Atoi(cell(ColRentedCount))
	if err != nil {
		return rental.Record{}, fmt.Errorf("invalid %s %q", ColRentedCount, cell(ColRentedCount))
	}
	if count < 0 {
		return rental.Record{}, fmt.Errorf("negative %s %d", ColRentedCount, count)
	}

	hour, err := strconv.Atoi(cell(ColHour))
	if err != nil {
		return rental.Record{}, fmt.Errorf("invalid %s %q", ColHour, cell(ColHour))
	}
	if hour < 0 || hour > 23 {
		return rental.Record{}, fmt.Errorf("%s %d out of range", ColHour, hour)
	}

	rec := rental.Record{
		DateText: cell(ColDate),
		Observation: rental.Observation{
			Hour:        hour,
			RentedCount: count,
			Season:      cell(ColSeasons),
			Holiday:     cell(ColHoliday),
		},
	}

	for _, field := range []struct {
		name string
		dst  *float64
	}{
		{ColTemp, &rec.Temperature},
		{ColHumidity, &rec.Humidity},
		{ColWindSpeed, &rec.WindSpeed},
		{ColVisibility, &rec.Visibility},
		{ColSolarRad, &rec.SolarRadiation},
		{ColRainfall, &rec.Rainfall},
		{ColSnowfall, &rec.Snowfall},
	} {
		raw := cell(field.name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rental.Record{}, fmt.Errorf("invalid %s %q", field.name, raw)
		}
		*field.dst = value
	}

	return rec, nil
}
