// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/wneessen/weatherdash/internal/backend"
	"github.com/wneessen/weatherdash/internal/display"
	"github.com/wneessen/weatherdash/internal/schema"
)

var (
	now      = time.Date(2026, 1, 18, 14, 30, 0, 0, time.UTC)
	current  = schema.NewWeatherInfo("Paris", 22.4, "Partly Cloudy", 65)
	forecast = schema.NewWeatherForecast(schema.NewWeatherInfo("Paris", 19, "Rain", 82), 5)
)

func TestNew(t *testing.T) {
	t.Run("creating a new presenter succeeds", func(t *testing.T) {
		pres, err := New()
		if err != nil {
			t.Fatalf("failed to create presenter: %s", err)
		}
		if pres == nil {
			t.Fatal("expected presenter to be non-nil")
		}
	})
}

func TestPresenter_Weather(t *testing.T) {
	t.Run("ready state renders all fields verbatim", func(t *testing.T) {
		pres := testPresenter(t)
		state := display.State[string, display.Weather]{
			Key:       "Paris",
			Status:    display.StatusReady,
			Data:      display.Weather{Current: current, Forecast: forecast, Days: 5},
			UpdatedAt: now,
		}
		view := pres.Weather(state, language.English)
		if !view.Ready() || view.Loading() || view.Failed() {
			t.Fatalf("expected ready view, got status %q", view.Status)
		}
		if view.Region != "Paris" {
			t.Errorf("expected region to be %q, got %q", "Paris", view.Region)
		}
		if view.Current.Temperature != "22.4" {
			t.Errorf("expected temperature to be %q, got %q", "22.4", view.Current.Temperature)
		}
		if view.Current.Condition != "Partly Cloudy" {
			t.Errorf("expected condition to be %q, got %q", "Partly Cloudy", view.Current.Condition)
		}
		if view.Current.Humidity != "65" {
			t.Errorf("expected humidity to be %q, got %q", "65", view.Current.Humidity)
		}
		if view.Forecast.Temperature != "19" {
			t.Errorf("expected forecast temperature to be %q, got %q", "19", view.Forecast.Temperature)
		}
		if view.Forecast.Day != "5" {
			t.Errorf("expected forecast day to be %q, got %q", "5", view.Forecast.Day)
		}
		if !strings.HasPrefix(view.Current.ConditionIcon, "⛅") {
			t.Errorf("expected partly cloudy icon, got %q", view.Current.ConditionIcon)
		}
		if view.MoonPhase == "" || view.MoonPhaseIcon == "" {
			t.Error("expected moon phase to be set")
		}
		if view.UpdatedAt == "" {
			t.Error("expected update time to be set")
		}
		if view.Message != "" {
			t.Errorf("expected no message, got %q", view.Message)
		}
	})
	t.Run("forecast day label is kept", func(t *testing.T) {
		pres := testPresenter(t)
		labelled := forecast
		labelled.Day = &schema.ForecastDay{Label: "Demain"}
		state := display.State[string, display.Weather]{
			Key:    "Paris",
			Status: display.StatusReady,
			Data:   display.Weather{Current: current, Forecast: labelled},
		}
		if view := pres.Weather(state, language.French); view.Forecast.Day != "Demain" {
			t.Errorf("expected forecast day to be %q, got %q", "Demain", view.Forecast.Day)
		}
	})
	t.Run("night conditions use night icons", func(t *testing.T) {
		pres := testPresenter(t)
		night, day := false, true
		dark := schema.NewWeatherInfo("Paris", 12, "Clear sky", 70)
		dark.Daytime = &night
		bright := schema.NewWeatherInfo("Paris", 24, "Clear sky", 40)
		bright.Daytime = &day
		state := display.State[string, display.Weather]{
			Key:    "Paris",
			Status: display.StatusReady,
			Data:   display.Weather{Current: dark, Forecast: schema.NewWeatherForecast(bright, 1)},
		}
		view := pres.Weather(state, language.English)
		if !strings.HasPrefix(view.Current.ConditionIcon, "🌙") {
			t.Errorf("expected night icon, got %q", view.Current.ConditionIcon)
		}
		if !strings.HasPrefix(view.Forecast.ConditionIcon, "☀️") {
			t.Errorf("expected day icon, got %q", view.Forecast.ConditionIcon)
		}
	})
	t.Run("loading state shows no data", func(t *testing.T) {
		pres := testPresenter(t)
		view := pres.Weather(display.State[string, display.Weather]{Key: "Lyon", Status: display.StatusLoading},
			language.English)
		if !view.Loading() {
			t.Errorf("expected loading view, got status %q", view.Status)
		}
		if view.Message != MsgLoading {
			t.Errorf("expected message to be %q, got %q", MsgLoading, view.Message)
		}
		if view.Current.Temperature != "" {
			t.Errorf("expected no temperature while loading, got %q", view.Current.Temperature)
		}
	})
	t.Run("error states map to messages by error kind", func(t *testing.T) {
		pres := testPresenter(t)
		tests := []struct {
			name string
			err  error
			want string
		}{
			{"request failed", fmt.Errorf("fetch: %w", backend.ErrRequestFailed), MsgWeatherFailed},
			{"malformed response", fmt.Errorf("fetch: %w", backend.ErrMalformedResponse), MsgInvalidResponse},
			{"unknown error", errors.New("boom"), MsgWeatherFailed},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				state := display.State[string, display.Weather]{Key: "Lyon", Status: display.StatusError, Err: tc.err}
				view := pres.Weather(state, language.English)
				if !view.Failed() {
					t.Fatalf("expected error view, got status %q", view.Status)
				}
				if view.Message != tc.want {
					t.Errorf("expected message to be %q, got %q", tc.want, view.Message)
				}
				if view.Current.Condition != "" {
					t.Errorf("expected no data in error view, got %q", view.Current.Condition)
				}
			})
		}
	})
}

func TestPresenter_Region(t *testing.T) {
	t.Run("ready state renders all fields verbatim", func(t *testing.T) {
		pres := testPresenter(t)
		state := display.State[int, schema.RegionInfo]{
			Key:       10,
			Status:    display.StatusReady,
			Data:      schema.NewRegionInfo(10, "Normandie", 3325032, "French"),
			UpdatedAt: now,
		}
		view := pres.Region(state, language.English)
		if view.ID != "10" {
			t.Errorf("expected id to be %q, got %q", "10", view.ID)
		}
		if view.Name != "Normandie" {
			t.Errorf("expected name to be %q, got %q", "Normandie", view.Name)
		}
		if view.Population != "3325032" {
			t.Errorf("expected population to be %q, got %q", "3325032", view.Population)
		}
		if view.PopulationWords == "" || !strings.Contains(view.PopulationWords, "million") {
			t.Errorf("expected population in words, got %q", view.PopulationWords)
		}
		if view.Language != "French" {
			t.Errorf("expected language to be %q, got %q", "French", view.Language)
		}
	})
	t.Run("small population has no words", func(t *testing.T) {
		pres := testPresenter(t)
		state := display.State[int, schema.RegionInfo]{
			Key:    3,
			Status: display.StatusReady,
			Data:   schema.NewRegionInfo(3, "Tiny", 950, "French"),
		}
		view := pres.Region(state, language.English)
		if view.Population != "950" {
			t.Errorf("expected population to be %q, got %q", "950", view.Population)
		}
		if view.PopulationWords != "" {
			t.Errorf("expected no population words, got %q", view.PopulationWords)
		}
	})
	t.Run("error state shows the region message", func(t *testing.T) {
		pres := testPresenter(t)
		state := display.State[int, schema.RegionInfo]{Key: 3, Status: display.StatusError, Err: backend.ErrRequestFailed}
		view := pres.Region(state, language.English)
		if view.Message != MsgRegionFailed {
			t.Errorf("expected message to be %q, got %q", MsgRegionFailed, view.Message)
		}
		if view.Name != "" {
			t.Errorf("expected no data in error view, got %q", view.Name)
		}
	})
}

func TestConditionIcon(t *testing.T) {
	tests := []struct {
		condition string
		want      string
	}{
		{"Sunny", "☀️"},
		{"Clear sky", "☀️"},
		{"Mainly clear", "🌤️"},
		{"Partly Cloudy", "⛅"},
		{"Overcast", "☁️"},
		{"Slight rain", "🌧️"},
		{"Moderate rain showers", "🌦️"},
		{"Heavy snow fall", "🌨️"},
		{"Thunderstorm with slight hail", "⛈️"},
		{"Fog", "🌫️"},
		{"Volcanic ash", unknownConditionIcon},
	}
	for _, tc := range tests {
		if got := ConditionIcon(tc.condition); got != tc.want {
			t.Errorf("expected icon for %q to be %q, got %q", tc.condition, tc.want, got)
		}
	}
}

func TestNightConditionIcon(t *testing.T) {
	tests := []struct {
		condition string
		want      string
	}{
		{"Clear sky", "🌙"},
		{"Mainly clear", "🌙"},
		{"Partly cloudy", "☁️"},
		{"Light drizzle", "🌧️"},
		{"Overcast", "☁️"},
		{"Fog", "🌫️"},
		{"Volcanic ash", unknownConditionIcon},
	}
	for _, tc := range tests {
		if got := NightConditionIcon(tc.condition); got != tc.want {
			t.Errorf("expected night icon for %q to be %q, got %q", tc.condition, tc.want, got)
		}
	}
}

func TestEmojiWithSpace(t *testing.T) {
	got := EmojiWithSpace("⛅")
	if !strings.HasPrefix(got, "⛅") || !strings.HasSuffix(got, " ") {
		t.Errorf("expected padded emoji, got %q", got)
	}
}

func testPresenter(t *testing.T) *Presenter {
	t.Helper()
	pres, err := New()
	if err != nil {
		t.Fatalf("failed to create presenter: %s", err)
	}
	pres.now = func() time.Time { return now }
	return pres
}
