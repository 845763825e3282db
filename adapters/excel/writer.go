package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"bikerental/domain/rental"
	"bikerental/ports"
)

// csvHeader is the canonical column order written by the ingestion tool and
// read back by DataReader.
var csvHeader = []string{
	ColDate, ColRentedCount, ColHour,
	ColTemp, ColHumidity, ColWindSpeed, ColVisibility,
	ColSolarRad, ColRainfall, ColSnowfall,
	ColSeasons, ColHoliday,
}

// dateLayout is the day-first textual format the dashboard parses.
const dateLayout = "02/01/2006"

// CSVWriter persists raw records as the CSV file the dashboard loads.
type CSVWriter struct {
	filePath string
}

var _ ports.RecordSink = (*CSVWriter)(nil)

// NewCSVWriter creates a writer targeting the given path. Parent directories
// are created on Save.
func NewCSVWriter(filePath string) *CSVWriter {
	return &CSVWriter{filePath: filePath}
}

// Save writes all records, replacing any existing file.
func (w *CSVWriter) Save(ctx context.Context, records []rental.Record) error {
	if dir := filepath.Dir(w.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		dateText := rec.DateText
		if dateText == "" {
			dateText = rec.Date.Format(dateLayout)
		}
		row := []string{
			dateText,
			strconv.Itoa(rec.RentedCount),
			strconv.Itoa(rec.Hour),
			formatFloat(rec.Temperature),
			formatFloat(rec.Humidity),
			formatFloat(rec.WindSpeed),
			formatFloat(rec.Visibility),
			formatFloat(rec.SolarRadiation),
			formatFloat(rec.Rainfall),
			formatFloat(rec.Snowfall),
			rec.Season,
			rec.Holiday,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
