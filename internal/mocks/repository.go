package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"weatherdesk/weather-request-service/internal/db/weatherrequest"
)

type MockRepository struct {
	mock.Mock
}

func NewMockRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepository {
	m := &MockRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockRepository) Create(request *weatherrequest.WeatherRequest) error {
	ret := _m.Called(request)
	return ret.Error(0)
}

func (_m *MockRepository) FindByID(id uuid.UUID) (*weatherrequest.WeatherRequest, error) {
	ret := _m.Called(id)

	var r0 *weatherrequest.WeatherRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*weatherrequest.WeatherRequest)
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByLocationName(location string) (*weatherrequest.WeatherRequest, error) {
	ret := _m.Called(location)

	var r0 *weatherrequest.WeatherRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*weatherrequest.WeatherRequest)
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) Updates(id uuid.UUID, fields map[string]interface{}) (*weatherrequest.WeatherRequest, error) {
	ret := _m.Called(id, fields)

	var r0 *weatherrequest.WeatherRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*weatherrequest.WeatherRequest)
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) DeleteByID(id uuid.UUID) error {
	ret := _m.Called(id)
	return ret.Error(0)
}

func (_m *MockRepository) ListRecent(limit int) ([]weatherrequest.WeatherRequest, error) {
	ret := _m.Called(limit)

	var r0 []weatherrequest.WeatherRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]weatherrequest.WeatherRequest)
	}

	return r0, ret.Error(1)
}
