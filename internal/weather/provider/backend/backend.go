// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/wneessen/weatherdash/internal/backend"
	"github.com/wneessen/weatherdash/internal/schema"
)

const name = "backend"

// Backend fetches weather data from the remote weather API.
type Backend struct {
	client *backend.Client
}

func New(client *backend.Client) (*Backend, error) {
	if client == nil {
		return nil, fmt.Errorf("backend client is required")
	}
	return &Backend{client: client}, nil
}

func (b *Backend) Name() string {
	return name
}

// CurrentWeather requests GET {baseURL}/weather/{region}.
func (b *Backend) CurrentWeather(ctx context.Context, region string) (schema.WeatherInfo, error) {
	var info schema.WeatherInfo
	if err := b.client.Get(ctx, &info, nil, "weather", region); err != nil {
		return info, fmt.Errorf("failed to fetch current weather for %q: %w", region, err)
	}
	return info, nil
}

// Forecast requests GET {baseURL}/weather/forecast/{region}?day={days}.
func (b *Backend) Forecast(ctx context.Context, region string, days int) (schema.WeatherForecast, error) {
	var forecast schema.WeatherForecast
	query := url.Values{}
	query.Set("day", strconv.Itoa(days))
	if err := b.client.Get(ctx, &forecast, query, "weather", "forecast", region); err != nil {
		return forecast, fmt.Errorf("failed to fetch weather forecast for %q: %w", region, err)
	}
	return forecast, nil
}
