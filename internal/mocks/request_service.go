package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"weatherdesk/weather-request-service/internal/db/weatherrequest"
	"weatherdesk/weather-request-service/internal/service"
)

type MockRequestService struct {
	mock.Mock
}

func NewMockRequestService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRequestService {
	m := &MockRequestService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockRequestService) Create(ctx context.Context, params service.CreateParams) (*weatherrequest.WeatherRequest, error) {
	ret := _m.Called(ctx, params)

	var r0 *weatherrequest.WeatherRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*weatherrequest.WeatherRequest)
	}

	return r0, ret.Error(1)
}

func (_m *MockRequestService) Get(ctx context.Context, id uuid.UUID) (*weatherrequest.WeatherRequest, error) {
	ret := _m.Called(ctx, id)

	var r0 *weatherrequest.WeatherRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*weatherrequest.WeatherRequest)
	}

	return r0, ret.Error(1)
}

func (_m *MockRequestService) List(ctx context.Context) ([]weatherrequest.WeatherRequest, error) {
	ret := _m.Called(ctx)

	var r0 []weatherrequest.WeatherRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]weatherrequest.WeatherRequest)
	}

	return r0, ret.Error(1)
}

func (_m *MockRequestService) Update(ctx context.Context, id uuid.UUID, params service.UpdateParams) (*weatherrequest.WeatherRequest, error) {
	ret := _m.Called(ctx, id, params)

	var r0 *weatherrequest.WeatherRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*weatherrequest.WeatherRequest)
	}

	return r0, ret.Error(1)
}

func (_m *MockRequestService) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *MockRequestService) Search(ctx context.Context, location string) (*weatherrequest.WeatherRequest, bool, error) {
	ret := _m.Called(ctx, location)

	var r0 *weatherrequest.WeatherRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*weatherrequest.WeatherRequest)
	}

	return r0, ret.Get(1).(bool), ret.Error(2)
}

func (_m *MockRequestService) Export(ctx context.Context, id uuid.UUID, format string) (*service.ExportResult, error) {
	ret := _m.Called(ctx, id, format)

	var r0 *service.ExportResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.ExportResult)
	}

	return r0, ret.Error(1)
}
