// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/hectormalot/omgo"
	"github.com/nathan-osman/go-sunrise"

	"github.com/wneessen/weatherdash/internal/backend"
	"github.com/wneessen/weatherdash/internal/geocode"
	"github.com/wneessen/weatherdash/internal/http"
	"github.com/wneessen/weatherdash/internal/logger"
	"github.com/wneessen/weatherdash/internal/schema"
	"github.com/wneessen/weatherdash/internal/weather"
)

const (
	name = "open-meteo"

	// MaxForecastDays is the furthest day offset covered by the default Open-Meteo forecast range.
	MaxForecastDays = 6

	metricTemperature = "temperature_2m"
	metricHumidity    = "relative_humidity_2m"
	metricWeatherCode = "weather_code"
)

var hourlyMetrics = []string{metricTemperature, metricHumidity, metricWeatherCode}

type OpenMeteo struct {
	client omgo.Client
	coder  geocode.Geocoder
	log    *logger.Logger
	now    func() time.Time
}

func New(http *http.Client, coder geocode.Geocoder, log *logger.Logger) (*OpenMeteo, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if coder == nil {
		return nil, fmt.Errorf("geocoder is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	client, err := omgo.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo client: %w", err)
	}
	client.Client = http.Client

	return &OpenMeteo{client: client, coder: coder, log: log, now: time.Now}, nil
}

func (o *OpenMeteo) Name() string {
	return name
}

// CurrentWeather reports the current conditions and the humidity of the current hour.
func (o *OpenMeteo) CurrentWeather(ctx context.Context, region string) (schema.WeatherInfo, error) {
	forecast, coords, err := o.forecast(ctx, region)
	if err != nil {
		return schema.WeatherInfo{}, err
	}

	now := o.now().UTC()
	hour := weather.NewDayHour(now)
	idx, err := hourIndex(forecast, hour)
	if err != nil {
		return schema.WeatherInfo{}, err
	}
	humidity := forecast.HourlyMetrics[metricHumidity][idx]

	info := schema.NewWeatherInfo(region, forecast.CurrentWeather.Temperature,
		ConditionText(forecast.CurrentWeather.WeatherCode), humidity)
	info.Daytime = daytime(coords, now)
	if err = schema.Validate(info); err != nil {
		return schema.WeatherInfo{}, fmt.Errorf("%w: %w", backend.ErrMalformedResponse, err)
	}
	return info, nil
}

// Forecast reports the hourly values at the same time of day, the given number of days ahead.
func (o *OpenMeteo) Forecast(ctx context.Context, region string, days int) (schema.WeatherForecast, error) {
	if days < 0 || days > MaxForecastDays {
		return schema.WeatherForecast{}, fmt.Errorf("%w: forecast day %d out of range", backend.ErrRequestFailed, days)
	}
	forecast, coords, err := o.forecast(ctx, region)
	if err != nil {
		return schema.WeatherForecast{}, err
	}

	hour := weather.ForecastHour(o.now().UTC(), days)
	idx, err := hourIndex(forecast, hour)
	if err != nil {
		return schema.WeatherForecast{}, err
	}

	info := schema.NewWeatherInfo(region, forecast.HourlyMetrics[metricTemperature][idx],
		ConditionText(forecast.HourlyMetrics[metricWeatherCode][idx]), forecast.HourlyMetrics[metricHumidity][idx])
	info.Daytime = daytime(coords, hour.Time())
	result := schema.NewWeatherForecast(info, days)
	if err = schema.Validate(result); err != nil {
		return schema.WeatherForecast{}, fmt.Errorf("%w: %w", backend.ErrMalformedResponse, err)
	}
	return result, nil
}

func (o *OpenMeteo) forecast(ctx context.Context, region string) (*omgo.Forecast, geocode.Coordinate, error) {
	coords, err := o.coder.Search(ctx, region)
	if err != nil {
		return nil, coords, fmt.Errorf("%w: failed to geocode region %q: %w", backend.ErrRequestFailed, region, err)
	}
	o.log.Debug("region resolved", slog.String("region", region), slog.String("place", coords.DisplayName),
		slog.Float64("lat", coords.Lat), slog.Float64("lon", coords.Lon))

	location, err := omgo.NewLocation(coords.Lat, coords.Lon)
	if err != nil {
		return nil, coords, fmt.Errorf("%w: failed create Open-Meteo location from coordinates: %w",
			backend.ErrRequestFailed, err)
	}

	opts := &omgo.Options{
		Timezone:        "UTC",
		TemperatureUnit: "celsius",
		HourlyMetrics:   hourlyMetrics,
	}
	forecast, err := o.client.Forecast(ctx, location, opts)
	if err != nil {
		return nil, coords, fmt.Errorf("%w: failed to retrieve weather data from Open-Meteo API: %w",
			backend.ErrRequestFailed, err)
	}
	return forecast, coords, nil
}

// daytime reports whether t lies between sunrise and sunset at the given coordinates.
func daytime(coords geocode.Coordinate, t time.Time) *bool {
	rise, set := sunrise.SunriseSunset(coords.Lat, coords.Lon, t.Year(), t.Month(), t.Day())
	isDay := t.After(rise) && t.Before(set)
	return &isDay
}

// hourIndex returns the position of hour in the hourly series of the forecast.
func hourIndex(forecast *omgo.Forecast, hour weather.DayHour) (int, error) {
	for _, metric := range hourlyMetrics {
		if len(forecast.HourlyMetrics[metric]) != len(forecast.HourlyTimes) {
			return -1, fmt.Errorf("%w: hourly series %q is incomplete", backend.ErrMalformedResponse, metric)
		}
	}
	for i, t := range forecast.HourlyTimes {
		if t.Equal(hour.Time()) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: no hourly data for %s", backend.ErrMalformedResponse,
		hour.Time().UTC().Format(time.RFC3339))
}

// ConditionText returns the English description of a WMO weather code.
func ConditionText(code float64) string {
	if text, ok := WMOWeatherCodes[int(math.Round(code))]; ok {
		return text
	}
	return "Unknown"
}
