// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "WEATHERDASH"

	DefaultRegion    = "Paris"
	DefaultRegionID  = 1
	MaxForecastDays  = 16
	MaxOpenMeteoDays = 6
	ServiceBackend   = "backend"
	ServiceMock      = "mock"
	ServiceOpenMeteo = "open-meteo"
)

// DefaultWeatherPresets are the cities offered as buttons on the weather page.
var DefaultWeatherPresets = []string{"Paris", "Lyon", "Marseille", "Toulouse", "Nice", "Nantes"}

// DefaultRegionPresets are the regions offered as buttons on the region page.
var DefaultRegionPresets = []RegionPreset{
	{ID: 1, Name: "Île-de-France"},
	{ID: 2, Name: "Provence-Alpes-Côte d'Azur"},
	{ID: 3, Name: "Auvergne-Rhône-Alpes"},
	{ID: 4, Name: "Nouvelle-Aquitaine"},
	{ID: 5, Name: "Occitanie"},
	{ID: 10, Name: "Normandie"},
}

// RegionPreset is a region id with a display name.
type RegionPreset struct {
	ID   int    `fig:"id"`
	Name string `fig:"name"`
}

// Config represents the application's configuration structure.
type Config struct {
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Server struct {
		Listen            string        `fig:"listen" default:"127.0.0.1:3000"`
		ReadHeaderTimeout time.Duration `fig:"read_header_timeout" default:"5s"`
		ShutdownTimeout   time.Duration `fig:"shutdown_timeout" default:"10s"`
	} `fig:"server"`

	Backend struct {
		BaseURL string        `fig:"base_url" default:"http://localhost:8000/api/v1"`
		Timeout time.Duration `fig:"timeout" default:"10s"`
	} `fig:"backend"`

	Services struct {
		// Allowed values: backend, mock, open-meteo
		Weather string `fig:"weather" default:"backend"`
		// Allowed values: backend, mock
		Region string `fig:"region" default:"backend"`
	} `fig:"services"`

	Weather struct {
		// Allowed value: 1 to 16. Unset or 0 selects the default of 5.
		ForecastDays  uint     `fig:"forecast_days" default:"5"`
		DefaultRegion string   `fig:"default_region"`
		Presets       []string `fig:"presets"`
	} `fig:"weather"`

	Region struct {
		// Unset or 0 selects region 1; negative ids are rejected.
		DefaultID int            `fig:"default_id" default:"1"`
		Presets   []RegionPreset `fig:"presets"`
	} `fig:"region"`

	Session struct {
		IdleTimeout time.Duration `fig:"idle_timeout" default:"30m"`
		// Sessions beyond this number evict the longest idle one.
		MaxSessions int           `fig:"max_sessions" default:"1000"`
	} `fig:"session"`

	Intervals struct {
		SessionSweep time.Duration `fig:"session_sweep" default:"1m"`
	} `fig:"intervals"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Locale == "" {
		c.Locale = getLocale()
	}

	baseURL, err := url.Parse(c.Backend.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid backend base URL: %w", err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" || baseURL.Host == "" {
		return fmt.Errorf("invalid backend base URL: %s", c.Backend.BaseURL)
	}
	c.Backend.BaseURL = strings.TrimRight(c.Backend.BaseURL, "/")
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("invalid backend timeout: %s", c.Backend.Timeout)
	}

	c.Services.Weather = strings.ToLower(c.Services.Weather)
	switch c.Services.Weather {
	case ServiceBackend, ServiceMock, ServiceOpenMeteo:
	default:
		return fmt.Errorf("invalid weather service: %s", c.Services.Weather)
	}
	c.Services.Region = strings.ToLower(c.Services.Region)
	switch c.Services.Region {
	case ServiceBackend, ServiceMock:
	default:
		return fmt.Errorf("invalid region service: %s", c.Services.Region)
	}

	if c.Weather.ForecastDays < 1 || c.Weather.ForecastDays > MaxForecastDays {
		return fmt.Errorf("invalid forecast days: %d", c.Weather.ForecastDays)
	}
	if c.Services.Weather == ServiceOpenMeteo && c.Weather.ForecastDays > MaxOpenMeteoDays {
		return fmt.Errorf("open-meteo supports at most %d forecast days, got: %d", MaxOpenMeteoDays,
			c.Weather.ForecastDays)
	}
	c.Weather.DefaultRegion = strings.TrimSpace(c.Weather.DefaultRegion)
	if c.Weather.DefaultRegion == "" {
		c.Weather.DefaultRegion = DefaultRegion
	}
	if len(c.Weather.Presets) == 0 {
		c.Weather.Presets = DefaultWeatherPresets
	}

	if c.Region.DefaultID < 1 {
		return fmt.Errorf("invalid default region id: %d", c.Region.DefaultID)
	}
	if len(c.Region.Presets) == 0 {
		c.Region.Presets = DefaultRegionPresets
	}
	for _, preset := range c.Region.Presets {
		if preset.ID < 1 {
			return fmt.Errorf("invalid region preset id: %d", preset.ID)
		}
	}

	if c.Session.IdleTimeout <= 0 {
		return fmt.Errorf("invalid session idle timeout: %s", c.Session.IdleTimeout)
	}
	if c.Session.MaxSessions < 1 {
		return fmt.Errorf("invalid session limit: %d", c.Session.MaxSessions)
	}
	if c.Intervals.SessionSweep <= 0 {
		return fmt.Errorf("invalid session sweep interval: %s", c.Intervals.SessionSweep)
	}

	return nil
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
