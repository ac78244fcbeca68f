package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"weatherdesk/weather-request-service/internal/db/weatherrequest"
)

// ErrUnsupportedFormat marks an export format outside {json, csv}.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// csvColumns is the fixed export column set, in order. raw_json is
// deliberately excluded.
var csvColumns = []string{
	"timestamp",
	"temp",
	"feels_like",
	"humidity",
	"pressure",
	"weather_main",
	"weather_description",
	"wind_speed",
}

type ExportResult struct {
	Format   string
	Record   *weatherrequest.WeatherRequest
	CSV      []byte
	Filename string
}

// Export returns the stored record either as-is for JSON or with its
// readings flattened into CSV rows.
func (s *requestService) Export(ctx context.Context, id uuid.UUID, format string) (*ExportResult, error) {
	format = strings.ToLower(format)
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{Format: format, Record: record}

	if format == "csv" {
		readings, err := record.DecodeReadings()
		if err != nil {
			return nil, err
		}

		data, err := readingsToCSV(readings)
		if err != nil {
			return nil, err
		}

		result.CSV = data
		result.Filename = id.String() + ".csv"
	}

	return result, nil
}

func readingsToCSV(readings []weatherrequest.Reading) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvColumns); err != nil {
		return nil, err
	}

	for _, r := range readings {
		row := []string{
			r.Timestamp.Format(time.RFC3339),
			formatOptionalFloat(r.Temp),
			formatOptionalFloat(r.FeelsLike),
			formatOptionalFloat(r.Humidity),
			formatOptionalFloat(r.Pressure),
			r.WeatherMain,
			r.WeatherDescription,
			formatOptionalFloat(r.WindSpeed),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
