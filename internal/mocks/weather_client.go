package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"weatherdesk/weather-request-service/internal/providers"
)

type MockWeatherClient struct {
	mock.Mock
}

func NewMockWeatherClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWeatherClient {
	m := &MockWeatherClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockWeatherClient) FetchCurrent(ctx context.Context, lat, lon float64, unit string) (*providers.CurrentConditions, error) {
	ret := _m.Called(ctx, lat, lon, unit)

	var r0 *providers.CurrentConditions
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*providers.CurrentConditions)
	}

	return r0, ret.Error(1)
}

func (_m *MockWeatherClient) FetchForecast(ctx context.Context, lat, lon float64, unit string) (*providers.Forecast, error) {
	ret := _m.Called(ctx, lat, lon, unit)

	var r0 *providers.Forecast
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*providers.Forecast)
	}

	return r0, ret.Error(1)
}
