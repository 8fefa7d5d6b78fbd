// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package display

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/wneessen/weatherdash/internal/backend"
	"github.com/wneessen/weatherdash/internal/schema"
	"github.com/wneessen/weatherdash/internal/weather/provider/mock"
)

type countingWeather struct {
	current     atomic.Int32
	forecast    atomic.Int32
	lastDays    atomic.Int32
	failCurrent error
	failFcast   error
}

func (c *countingWeather) Name() string { return "counting" }

func (c *countingWeather) CurrentWeather(_ context.Context, region string) (schema.WeatherInfo, error) {
	c.current.Add(1)
	if c.failCurrent != nil {
		return schema.WeatherInfo{}, c.failCurrent
	}
	return schema.NewWeatherInfo(region, 21.5, "Sunny", 40), nil
}

func (c *countingWeather) Forecast(_ context.Context, region string, days int) (schema.WeatherForecast, error) {
	c.forecast.Add(1)
	c.lastDays.Store(int32(days)) //nolint:gosec
	if c.failFcast != nil {
		return schema.WeatherForecast{}, c.failFcast
	}
	return schema.NewWeatherForecast(schema.NewWeatherInfo(region, 18, "Rain", 90), days), nil
}

func TestNewWeather(t *testing.T) {
	t.Run("changing the region issues exactly two requests", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			service := &countingWeather{}
			d := NewWeather(service, 5, testLogger())
			defer d.Close()

			d.Set("Paris")
			synctest.Wait()
			if service.current.Load() != 1 || service.forecast.Load() != 1 {
				t.Fatalf("expected 1 current and 1 forecast request, got %d and %d", service.current.Load(),
					service.forecast.Load())
			}

			d.Set("Lyon")
			synctest.Wait()
			if service.current.Load() != 2 || service.forecast.Load() != 2 {
				t.Errorf("expected 2 current and 2 forecast requests, got %d and %d", service.current.Load(),
					service.forecast.Load())
			}
			if service.lastDays.Load() != 5 {
				t.Errorf("expected forecast for 5 days, got %d", service.lastDays.Load())
			}

			state := d.State()
			if state.Status != StatusReady {
				t.Fatalf("expected status to be %s, got %s", StatusReady, state.Status)
			}
			if state.Data.Current.Region != "Lyon" || state.Data.Forecast.Region != "Lyon" {
				t.Errorf("expected data for Lyon, got %q/%q", state.Data.Current.Region, state.Data.Forecast.Region)
			}
			if state.Data.Days != 5 {
				t.Errorf("expected days to be 5, got %d", state.Data.Days)
			}
		})
	})
	t.Run("either request failing ends in the error state", func(t *testing.T) {
		tests := []struct {
			name    string
			service *countingWeather
			wantErr error
		}{
			{"current fails", &countingWeather{failCurrent: backend.ErrRequestFailed}, backend.ErrRequestFailed},
			{"forecast fails", &countingWeather{failFcast: backend.ErrMalformedResponse}, backend.ErrMalformedResponse},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				synctest.Test(t, func(t *testing.T) {
					d := NewWeather(tc.service, 5, testLogger())
					defer d.Close()

					d.Set("Paris")
					synctest.Wait()
					state := d.State()
					if state.Status != StatusError {
						t.Fatalf("expected status to be %s, got %s", StatusError, state.Status)
					}
					if !errors.Is(state.Err, tc.wantErr) {
						t.Errorf("expected error to wrap %s, got %v", tc.wantErr, state.Err)
					}
				})
			})
		}
	})
	t.Run("mock service renders fixed values", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			d := NewWeather(mock.New(), 3, testLogger())
			defer d.Close()

			d.Set("Nantes")
			synctest.Wait()
			state := d.State()
			if state.Status != StatusReady {
				t.Fatalf("expected status to be %s, got %s", StatusReady, state.Status)
			}
			if state.Data.Current.Condition != mock.CurrentCondition {
				t.Errorf("expected condition to be %q, got %q", mock.CurrentCondition, state.Data.Current.Condition)
			}
			if state.Data.Forecast.Day.Offset != 3 {
				t.Errorf("expected forecast day to be 3, got %d", state.Data.Forecast.Day.Offset)
			}
		})
	})
}
