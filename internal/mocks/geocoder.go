package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"weatherdesk/weather-request-service/internal/providers"
)

type MockGeocoder struct {
	mock.Mock
}

func NewMockGeocoder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGeocoder {
	m := &MockGeocoder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockGeocoder) Geocode(ctx context.Context, query string) (*providers.GeoResult, error) {
	ret := _m.Called(ctx, query)

	var r0 *providers.GeoResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*providers.GeoResult)
	}

	return r0, ret.Error(1)
}
