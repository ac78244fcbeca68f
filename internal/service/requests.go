package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"weatherdesk/weather-request-service/internal/db/weatherrequest"
	"weatherdesk/weather-request-service/internal/providers"
)

var (
	// ErrValidation marks malformed client input.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidRange marks a start/end pair that is reversed or
	// wider than the forecast provider covers.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrRequestNotFound means no stored record exists at the id.
	ErrRequestNotFound = errors.New("request not found")
)

// The forecast provider only covers a fixed short horizon, so the
// inclusive calendar-day span of a request is capped.
const maxRangeDays = 6

const listLimit = 100

type CreateParams struct {
	Location  string
	Unit      string
	StartDate string
	EndDate   string
}

type UpdateParams struct {
	Location  *string
	Unit      *string
	StartDate *string
	EndDate   *string
}

// RequestService is the shared workflow behind both the create
// endpoint and lookup-by-location.
type RequestService interface {
	Create(ctx context.Context, params CreateParams) (*weatherrequest.WeatherRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*weatherrequest.WeatherRequest, error)
	List(ctx context.Context) ([]weatherrequest.WeatherRequest, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*weatherrequest.WeatherRequest, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, location string) (*weatherrequest.WeatherRequest, bool, error)
	Export(ctx context.Context, id uuid.UUID, format string) (*ExportResult, error)
}

type requestService struct {
	geocoder providers.Geocoder
	weather  providers.WeatherClient
	repo     weatherrequest.Repository
}

func NewRequestService(
	geocoder providers.Geocoder,
	weather providers.WeatherClient,
	repo weatherrequest.Repository,
) RequestService {
	return &requestService{
		geocoder: geocoder,
		weather:  weather,
		repo:     repo,
	}
}

func (s *requestService) Create(ctx context.Context, params CreateParams) (*weatherrequest.WeatherRequest, error) {
	if params.Location == "" {
		return nil, fmt.Errorf("%w: location is required", ErrValidation)
	}

	unit := params.Unit
	if unit == "" {
		unit = "metric"
	}

	now := time.Now()
	start := parseDateOr(params.StartDate, now)
	end := parseDateOr(params.EndDate, now)

	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	geo, err := s.geocoder.Geocode(ctx, params.Location)
	if err != nil {
		return nil, err
	}

	current, forecast := s.fetchWeather(ctx, geo.Lat, geo.Lon, unit)

	readings := composeReadings(current, forecast, start, end, now)

	record := &weatherrequest.WeatherRequest{
		LocationName:   params.Location,
		NormalizedName: geo.DisplayName,
		Lat:            geo.Lat,
		Lon:            geo.Lon,
		Unit:           unit,
		StartDate:      start,
		EndDate:        end,
	}
	if err := record.SetReadings(readings); err != nil {
		return nil, err
	}

	if err := s.repo.Create(record); err != nil {
		return nil, err
	}

	return record, nil
}

type currentResult struct {
	payload *providers.CurrentConditions
	err     error
}

type forecastResult struct {
	payload *providers.Forecast
	err     error
}

// fetchWeather issues both provider calls concurrently and joins them.
// A failed sub-fetch is a valid outcome, not an error: it simply
// contributes no readings.
func (s *requestService) fetchWeather(ctx context.Context, lat, lon float64, unit string) (*providers.CurrentConditions, *providers.Forecast) {
	currentCh := make(chan currentResult, 1)
	forecastCh := make(chan forecastResult, 1)

	go func() {
		payload, err := s.weather.FetchCurrent(ctx, lat, lon, unit)
		currentCh <- currentResult{payload, err}
	}()

	go func() {
		payload, err := s.weather.FetchForecast(ctx, lat, lon, unit)
		forecastCh <- forecastResult{payload, err}
	}()

	current := <-currentCh
	forecast := <-forecastCh

	if current.err != nil {
		log.Warn().Err(current.err).Msg("current conditions fetch failed, continuing without it")
		current.payload = nil
	}
	if forecast.err != nil {
		log.Warn().Err(forecast.err).Msg("forecast fetch failed, continuing without it")
		forecast.payload = nil
	}

	return current.payload, forecast.payload
}

func (s *requestService) Get(ctx context.Context, id uuid.UUID) (*weatherrequest.WeatherRequest, error) {
	record, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return record, nil
}

func (s *requestService) List(ctx context.Context) ([]weatherrequest.WeatherRequest, error) {
	return s.repo.ListRecent(listLimit)
}

// Update applies a partial field set. A new location triggers a fresh
// geocode; stored readings are never recomputed. Unparsable dates are
// left untouched.
func (s *requestService) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*weatherrequest.WeatherRequest, error) {
	fields := map[string]interface{}{}

	if params.Location != nil && *params.Location != "" {
		geo, err := s.geocoder.Geocode(ctx, *params.Location)
		if err != nil {
			return nil, err
		}
		fields["location_name"] = *params.Location
		fields["normalized_name"] = geo.DisplayName
		fields["lat"] = geo.Lat
		fields["lon"] = geo.Lon
	}

	if params.Unit != nil && *params.Unit != "" {
		fields["unit"] = *params.Unit
	}

	if params.StartDate != nil {
		if t, ok := parseDate(*params.StartDate); ok {
			fields["start_date"] = t
		}
	}
	if params.EndDate != nil {
		if t, ok := parseDate(*params.EndDate); ok {
			fields["end_date"] = t
		}
	}

	record, err := s.repo.Updates(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return record, nil
}

func (s *requestService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteByID(id)
}

// Search returns the stored record whose location_name matches the
// query exactly, creating one with default unit and date range on a
// miss. The returned bool reports whether a record was created. This
// is a read-through lookup, not a cache: a record of any age
// satisfies it, and two racing misses may both create one.
func (s *requestService) Search(ctx context.Context, location string) (*weatherrequest.WeatherRequest, bool, error) {
	if location == "" {
		return nil, false, fmt.Errorf("%w: location is required", ErrValidation)
	}

	record, err := s.repo.FindByLocationName(location)
	if err == nil {
		return record, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	created, err := s.Create(ctx, CreateParams{Location: location})
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}
