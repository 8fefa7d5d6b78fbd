// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package display

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wneessen/weatherdash/internal/logger"
	"github.com/wneessen/weatherdash/internal/schema"
	"github.com/wneessen/weatherdash/internal/weather"
)

// Weather is the data shown by the weather panel.
type Weather struct {
	Current  schema.WeatherInfo
	Forecast schema.WeatherForecast
	Days     int
}

// WeatherDisplay shows current weather and forecast for a region name.
type WeatherDisplay = Display[string, Weather]

// NewWeather returns a display that requests current weather and the forecast for the given
// number of days concurrently, and only becomes ready once both succeeded.
func NewWeather(service weather.Service, days int, log *logger.Logger) *WeatherDisplay {
	fetch := func(ctx context.Context, region string) (Weather, error) {
		result := Weather{Days: days}
		eg, ctx := errgroup.WithContext(ctx)
		eg.Go(func() error {
			current, err := service.CurrentWeather(ctx, region)
			if err != nil {
				return fmt.Errorf("failed to get current weather: %w", err)
			}
			result.Current = current
			return nil
		})
		eg.Go(func() error {
			forecast, err := service.Forecast(ctx, region, days)
			if err != nil {
				return fmt.Errorf("failed to get weather forecast: %w", err)
			}
			result.Forecast = forecast
			return nil
		})
		if err := eg.Wait(); err != nil {
			return Weather{}, err
		}
		return result, nil
	}
	return New[string, Weather]("weather", fetch, log)
}
