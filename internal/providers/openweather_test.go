package providers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"weatherdesk/weather-request-service/internal/providers"
)

const currentPayload = `{
	"dt": 1726000000,
	"main": {"temp": 25.5, "feels_like": 26.1, "humidity": 60, "pressure": 1012},
	"weather": [{"main": "Clouds", "description": "scattered clouds"}],
	"wind": {"speed": 3.6}
}`

const currentPayloadNoWind = `{
	"dt": 1726000000,
	"main": {"temp": 25.5, "feels_like": 26.1, "humidity": 60, "pressure": 1012},
	"weather": [{"main": "Clear", "description": "clear sky"}]
}`

const forecastPayload = `{
	"list": [
		{
			"dt": 1726012800,
			"main": {"temp": 21.0, "feels_like": 20.5, "humidity": 70, "pressure": 1010},
			"weather": [{"main": "Rain", "description": "light rain"}],
			"wind": {"speed": 5.1}
		},
		{
			"dt": 1726023600,
			"main": {"temp": 19.5, "feels_like": 19.0, "humidity": 75, "pressure": 1009},
			"weather": [{"main": "Rain", "description": "moderate rain"}],
			"wind": {"speed": 4.8}
		}
	]
}`

type OpenWeatherClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *providers.OpenWeatherClient
}

func (s *OpenWeatherClientTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch {
		case r.URL.Path == "/weather" && r.URL.Query().Get("lat") == "41.0082":
			w.Write([]byte(currentPayload))
		case r.URL.Path == "/weather" && r.URL.Query().Get("lat") == "48.8566":
			w.Write([]byte(currentPayloadNoWind))
		case r.URL.Path == "/weather":
			w.Write([]byte("{malformed json"))
		case r.URL.Path == "/forecast" && r.URL.Query().Get("lat") == "41.0082":
			w.Write([]byte(forecastPayload))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	s.client = providers.NewOpenWeatherClient("test_api_key")
	s.client.HTTPClient().Transport = &rewriteTransport{target: s.server.URL}
}

func (s *OpenWeatherClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *OpenWeatherClientTestSuite) TestFetchCurrent() {
	current, err := s.client.FetchCurrent(context.Background(), 41.0082, 28.9784, "metric")

	s.NoError(err)
	s.Equal(int64(1726000000), current.Dt)
	s.Equal(25.5, *current.Main.Temp)
	s.Equal(26.1, *current.Main.FeelsLike)
	s.Equal(60.0, *current.Main.Humidity)
	s.Equal(1012.0, *current.Main.Pressure)
	s.Equal("Clouds", current.Weather[0].Main)
	s.Equal("scattered clouds", current.Weather[0].Description)
	s.Equal(3.6, *current.Wind.Speed)
	s.JSONEq(currentPayload, string(current.Raw))
}

func (s *OpenWeatherClientTestSuite) TestFetchCurrentWithoutWind() {
	current, err := s.client.FetchCurrent(context.Background(), 48.8566, 2.3522, "metric")

	s.NoError(err)
	s.Nil(current.Wind)
	s.Equal("Clear", current.Weather[0].Main)
}

func (s *OpenWeatherClientTestSuite) TestFetchCurrentMalformedJSON() {
	current, err := s.client.FetchCurrent(context.Background(), 1.0, 1.0, "metric")

	s.Error(err)
	s.Contains(err.Error(), "malformed")
	s.Nil(current)
}

func (s *OpenWeatherClientTestSuite) TestFetchForecast() {
	forecast, err := s.client.FetchForecast(context.Background(), 41.0082, 28.9784, "metric")

	s.NoError(err)
	s.Len(forecast.List, 2)
	s.Equal(int64(1726012800), forecast.List[0].Dt)
	s.Equal(21.0, *forecast.List[0].Main.Temp)
	s.Equal("light rain", forecast.List[0].Weather[0].Description)
	s.Equal(int64(1726023600), forecast.List[1].Dt)
	s.NotEmpty(forecast.List[0].Raw)
	s.NotEmpty(forecast.List[1].Raw)
	s.NotEqual(string(forecast.List[0].Raw), string(forecast.List[1].Raw))
}

func (s *OpenWeatherClientTestSuite) TestFetchForecastProviderError() {
	forecast, err := s.client.FetchForecast(context.Background(), 0, 0, "metric")

	s.Error(err)
	s.Contains(err.Error(), "status code: 404")
	s.Nil(forecast)
}

func (s *OpenWeatherClientTestSuite) TestMissingAPIKeyFailsDownstream() {
	client := providers.NewOpenWeatherClient("")
	client.HTTPClient().Transport = &rewriteTransport{target: s.server.URL}

	current, err := client.FetchCurrent(context.Background(), 41.0082, 28.9784, "metric")

	s.Error(err)
	s.Contains(err.Error(), "status code: 401")
	s.Nil(current)
}

type rewriteTransport struct {
	target string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	newURL := *req.URL
	newURL.Scheme = "http"
	newURL.Host = t.target[7:] // Remove "http://"
	newURL.Path = req.URL.Path[len("/data/2.5"):]
	req.URL = &newURL
	return http.DefaultTransport.RoundTrip(req)
}

func TestOpenWeatherClientSuite(t *testing.T) {
	suite.Run(t, new(OpenWeatherClientTestSuite))
}
