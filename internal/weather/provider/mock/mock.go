// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package mock

import (
	"context"

	"github.com/wneessen/weatherdash/internal/schema"
)

const (
	name = "mock"

	CurrentTemperature  = 25
	CurrentCondition    = "Sunny"
	ForecastTemperature = 22
	ForecastCondition   = "Partly Cloudy"
	Humidity            = 60
)

// Mock returns fixed weather data without touching the network.
type Mock struct{}

func New() *Mock {
	return &Mock{}
}

func (m *Mock) Name() string {
	return name
}

func (m *Mock) CurrentWeather(ctx context.Context, region string) (schema.WeatherInfo, error) {
	if err := ctx.Err(); err != nil {
		return schema.WeatherInfo{}, err
	}
	return schema.NewWeatherInfo(region, CurrentTemperature, CurrentCondition, Humidity), nil
}

func (m *Mock) Forecast(ctx context.Context, region string, days int) (schema.WeatherForecast, error) {
	if err := ctx.Err(); err != nil {
		return schema.WeatherForecast{}, err
	}
	info := schema.NewWeatherInfo(region, ForecastTemperature, ForecastCondition, Humidity)
	return schema.NewWeatherForecast(info, days), nil
}
