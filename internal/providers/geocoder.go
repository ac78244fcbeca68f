package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrLocationNotFound means the geocoding provider returned zero
// results for the query. Distinct from transport or provider outages.
var ErrLocationNotFound = errors.New("location not found")

const nominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// A signed decimal pair like "12.97,77.59", with optional whitespace
// around the comma. Such input is parsed locally, never geocoded.
var latLonPattern = regexp.MustCompile(`^\s*-?\d+(\.\d+)?\s*,\s*-?\d+(\.\d+)?\s*$`)

type GeoResult struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

type Geocoder interface {
	Geocode(ctx context.Context, query string) (*GeoResult, error)
}

type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewNominatimGeocoder(userAgent string) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   nominatimBaseURL,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (*GeoResult, error) {
	if latLonPattern.MatchString(query) {
		return parseLatLon(query)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "0")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding provider returned status code: %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocoding provider returned malformed JSON: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrLocationNotFound
	}

	top := results[0]

	lat, err := strconv.ParseFloat(top.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding provider returned invalid latitude %q: %w", top.Lat, err)
	}
	lon, err := strconv.ParseFloat(top.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding provider returned invalid longitude %q: %w", top.Lon, err)
	}

	return &GeoResult{
		Lat:         lat,
		Lon:         lon,
		DisplayName: top.DisplayName,
	}, nil
}

func parseLatLon(query string) (*GeoResult, error) {
	parts := strings.SplitN(query, ",", 2)
	latStr := strings.TrimSpace(parts[0])
	lonStr := strings.TrimSpace(parts[1])

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", latStr, err)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", lonStr, err)
	}

	return &GeoResult{
		Lat:         lat,
		Lon:         lon,
		DisplayName: fmt.Sprintf("lat:%s,lon:%s", latStr, lonStr),
	}, nil
}

func (g *NominatimGeocoder) HTTPClient() *http.Client {
	return g.client
}
