package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// WeatherClient fetches current conditions and the multi-day forecast
// for a coordinate pair. The two calls fail independently; neither
// retries.
type WeatherClient interface {
	FetchCurrent(ctx context.Context, lat, lon float64, unit string) (*CurrentConditions, error)
	FetchForecast(ctx context.Context, lat, lon float64, unit string) (*Forecast, error)
}

type OpenWeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenWeatherClient(apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: openWeatherBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type WeatherInfo struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type MainMetrics struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  *float64 `json:"humidity"`
	Pressure  *float64 `json:"pressure"`
}

type WindInfo struct {
	Speed *float64 `json:"speed"`
}

// CurrentConditions is the /weather payload. Raw carries the exact
// provider body for the stored reading's raw_json field.
type CurrentConditions struct {
	Dt      int64           `json:"dt"`
	Main    MainMetrics     `json:"main"`
	Weather []WeatherInfo   `json:"weather"`
	Wind    *WindInfo       `json:"wind"`
	Raw     json.RawMessage `json:"-"`
}

// ForecastItem is one 3-hour step of the /forecast list.
type ForecastItem struct {
	Dt      int64           `json:"dt"`
	Main    MainMetrics     `json:"main"`
	Weather []WeatherInfo   `json:"weather"`
	Wind    *WindInfo       `json:"wind"`
	Raw     json.RawMessage `json:"-"`
}

type Forecast struct {
	List []ForecastItem
}

func (c *OpenWeatherClient) FetchCurrent(ctx context.Context, lat, lon float64, unit string) (*CurrentConditions, error) {
	body, err := c.get(ctx, "/weather", lat, lon, unit)
	if err != nil {
		return nil, err
	}

	var current CurrentConditions
	if err := json.Unmarshal(body, &current); err != nil {
		return nil, fmt.Errorf("current conditions response malformed: %w", err)
	}
	current.Raw = body

	return &current, nil
}

func (c *OpenWeatherClient) FetchForecast(ctx context.Context, lat, lon float64, unit string) (*Forecast, error) {
	body, err := c.get(ctx, "/forecast", lat, lon, unit)
	if err != nil {
		return nil, err
	}

	// The list is decoded item by item so each reading can keep its
	// own slice of the provider payload.
	var envelope struct {
		List []json.RawMessage `json:"list"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("forecast response malformed: %w", err)
	}

	forecast := &Forecast{List: make([]ForecastItem, 0, len(envelope.List))}
	for _, raw := range envelope.List {
		var item ForecastItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("forecast list item malformed: %w", err)
		}
		item.Raw = raw
		forecast.List = append(forecast.List, item)
	}

	return forecast, nil
}

func (c *OpenWeatherClient) get(ctx context.Context, path string, lat, lon float64, unit string) ([]byte, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("units", unit)
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading weather response failed: %w", err)
	}

	return body, nil
}

func (c *OpenWeatherClient) HTTPClient() *http.Client {
	return c.client
}
