// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package schema holds the data shapes exchanged with the weather and region API.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// WeatherInfo is the current weather for a region as returned by the API.
type WeatherInfo struct {
	Region      string   `json:"region" validate:"required"`
	Temperature *float64 `json:"temperature" validate:"required"`
	Condition   string   `json:"condition" validate:"required"`
	Humidity    *float64 `json:"humidity" validate:"required,min=0,max=100"`
	// Daytime is only known for sources that resolve coordinates; nil means unknown.
	Daytime *bool `json:"is_day,omitempty"`
}

// WeatherForecast is a forecast for a region a number of days ahead.
type WeatherForecast struct {
	WeatherInfo
	Day *ForecastDay `json:"day" validate:"required"`
}

// RegionInfo holds demographic information about a region.
type RegionInfo struct {
	ID          int    `json:"id" validate:"min=1"`
	Name        string `json:"name" validate:"required"`
	NbHabitants *int64 `json:"nb_habitants" validate:"required,min=0"`
	Language    string `json:"language" validate:"required"`
}

// ForecastDay is the day of a forecast. The API sends either an integer offset or a
// human-readable label like "Demain".
type ForecastDay struct {
	Offset int
	Label  string
}

// NewWeatherInfo returns a WeatherInfo with all fields set.
func NewWeatherInfo(region string, temperature float64, condition string, humidity float64) WeatherInfo {
	return WeatherInfo{
		Region:      region,
		Temperature: &temperature,
		Condition:   condition,
		Humidity:    &humidity,
	}
}

// NewWeatherForecast returns a WeatherForecast for the given day offset.
func NewWeatherForecast(info WeatherInfo, day int) WeatherForecast {
	return WeatherForecast{
		WeatherInfo: info,
		Day:         &ForecastDay{Offset: day, Label: strconv.Itoa(day)},
	}
}

// NewRegionInfo returns a RegionInfo with all fields set.
func NewRegionInfo(id int, name string, population int64, language string) RegionInfo {
	return RegionInfo{
		ID:          id,
		Name:        name,
		NbHabitants: &population,
		Language:    language,
	}
}

// TemperatureValue returns the temperature or 0 if it is not set.
func (w WeatherInfo) TemperatureValue() float64 {
	if w.Temperature == nil {
		return 0
	}
	return *w.Temperature
}

// HumidityValue returns the humidity or 0 if it is not set.
func (w WeatherInfo) HumidityValue() float64 {
	if w.Humidity == nil {
		return 0
	}
	return *w.Humidity
}

// IsNight reports whether the conditions are known to be at night.
func (w WeatherInfo) IsNight() bool {
	return w.Daytime != nil && !*w.Daytime
}

// Population returns the number of inhabitants or 0 if it is not set.
func (r RegionInfo) Population() int64 {
	if r.NbHabitants == nil {
		return 0
	}
	return *r.NbHabitants
}

// Validate checks that all fields of a decoded API response are present and within range.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func (d ForecastDay) String() string {
	return d.Label
}

func (d ForecastDay) MarshalJSON() ([]byte, error) {
	if d.Label != "" && d.Label != strconv.Itoa(d.Offset) {
		return json.Marshal(d.Label)
	}
	return json.Marshal(d.Offset)
}

func (d *ForecastDay) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("empty forecast day")
	}
	if b[0] == '"' {
		var label string
		if err := json.Unmarshal(b, &label); err != nil {
			return fmt.Errorf("failed to parse forecast day: %w", err)
		}
		if label == "" {
			return fmt.Errorf("empty forecast day")
		}
		d.Label = label
		if offset, err := strconv.Atoi(label); err == nil {
			d.Offset = offset
		}
		return nil
	}

	offset, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("invalid forecast day: %s", string(b))
	}
	d.Offset = offset
	d.Label = strconv.Itoa(offset)
	return nil
}
