package service

import (
	"fmt"
	"time"

	"weatherdesk/weather-request-service/internal/db/weatherrequest"
	"weatherdesk/weather-request-service/internal/providers"
)

// Accepted request date layouts. Anything else falls back to "now".
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseDateOr returns the parsed date, or the fallback when the input
// is absent or unparsable. Bad dates are not an error by contract.
func parseDateOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	if t, ok := parseDate(s); ok {
		return t
	}
	return fallback
}

func validateRange(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%w: start_date must be on or before end_date", ErrInvalidRange)
	}
	if calendarDays(start, end) > maxRangeDays {
		return fmt.Errorf("%w: date range too large, max %d days (forecast coverage)", ErrInvalidRange, maxRangeDays)
	}
	return nil
}

// calendarDays counts whole calendar days between the two instants,
// ignoring the time of day on either side.
func calendarDays(start, end time.Time) int {
	s := dateOnly(start)
	e := dateOnly(end)
	return int(e.Sub(s).Hours() / 24)
}

// dateOnly rebuilds the instant's date components at UTC midnight so
// day arithmetic is immune to zone offsets.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// composeReadings normalizes the two provider payload shapes into one
// uniform list: the current snapshot first, stamped "now", then one
// reading per forecast item inside the inclusive day window, in
// provider order.
func composeReadings(
	current *providers.CurrentConditions,
	forecast *providers.Forecast,
	start, end, now time.Time,
) []weatherrequest.Reading {
	readings := []weatherrequest.Reading{}

	if current != nil {
		reading := newReading(now, current.Main, current.Weather, current.Wind)
		reading.RawJSON = current.Raw
		readings = append(readings, reading)
	}

	if forecast != nil {
		windowStart := startOfDay(start)
		windowEnd := endOfDay(end)

		for _, item := range forecast.List {
			ts := time.Unix(item.Dt, 0)
			if ts.Before(windowStart) || ts.After(windowEnd) {
				continue
			}
			reading := newReading(ts, item.Main, item.Weather, item.Wind)
			reading.RawJSON = item.Raw
			readings = append(readings, reading)
		}
	}

	return readings
}

func newReading(ts time.Time, main providers.MainMetrics, weather []providers.WeatherInfo, wind *providers.WindInfo) weatherrequest.Reading {
	reading := weatherrequest.Reading{
		Timestamp: ts,
		Temp:      main.Temp,
		FeelsLike: main.FeelsLike,
		Humidity:  main.Humidity,
		Pressure:  main.Pressure,
	}

	if len(weather) > 0 {
		reading.WeatherMain = weather[0].Main
		reading.WeatherDescription = weather[0].Description
	}
	if wind != nil {
		reading.WindSpeed = wind.Speed
	}

	return reading
}
