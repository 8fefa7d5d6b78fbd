// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"context"
	"time"

	"github.com/wneessen/weatherdash/internal/schema"
)

// Service is implemented by each weather data source.
type Service interface {
	Name() string
	CurrentWeather(ctx context.Context, region string) (schema.WeatherInfo, error)
	Forecast(ctx context.Context, region string, days int) (schema.WeatherForecast, error)
}

// DayHour is a point in time truncated to the full hour, used to look up hourly series.
type DayHour int64

func NewDayHour(t time.Time) DayHour {
	return DayHour(t.Truncate(time.Hour).Unix())
}

// ForecastHour returns the hour that lies the given number of days after t.
func ForecastHour(t time.Time, days int) DayHour {
	return NewDayHour(t.Add(time.Duration(days) * 24 * time.Hour))
}

func (t DayHour) Time() time.Time {
	return time.Unix(int64(t), 0)
}
