// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package controller

import (
	"log/slog"
	"testing"

	"github.com/wneessen/weatherdash/internal/config"
	"github.com/wneessen/weatherdash/internal/http"
	"github.com/wneessen/weatherdash/internal/logger"
)

func TestNewWeatherService(t *testing.T) {
	tests := []struct {
		name     string
		service  string
		wantName string
		wantFail bool
	}{
		{"backend service", config.ServiceBackend, "backend", false},
		{"mock service", config.ServiceMock, "mock", false},
		{"mixed case name", "MOCK", "mock", false},
		{"open-meteo service", config.ServiceOpenMeteo, "open-meteo", false},
		{"unknown service", "carrier-pigeon", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conf := testConfig(t)
			conf.Services.Weather = tc.service
			log := logger.New(slog.LevelDebug)
			service, err := NewWeatherService(conf, http.New(log), log)
			if tc.wantFail {
				if err == nil {
					t.Error("expected service selection to fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("failed to create weather service: %s", err)
			}
			if service.Name() != tc.wantName {
				t.Errorf("expected service name to be %q, got %q", tc.wantName, service.Name())
			}
		})
	}
}

func TestNewRegionService(t *testing.T) {
	tests := []struct {
		name     string
		service  string
		wantName string
		wantFail bool
	}{
		{"backend service", config.ServiceBackend, "backend", false},
		{"mock service", config.ServiceMock, "mock", false},
		{"open-meteo has no region data", config.ServiceOpenMeteo, "", true},
		{"unknown service", "carrier-pigeon", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conf := testConfig(t)
			conf.Services.Region = tc.service
			log := logger.New(slog.LevelDebug)
			service, err := NewRegionService(conf, http.New(log), log)
			if tc.wantFail {
				if err == nil {
					t.Error("expected service selection to fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("failed to create region service: %s", err)
			}
			if service.Name() != tc.wantName {
				t.Errorf("expected service name to be %q, got %q", tc.wantName, service.Name())
			}
		})
	}
	t.Run("mock region service returns the requested id", func(t *testing.T) {
		conf := testConfig(t)
		conf.Services.Region = config.ServiceMock
		log := logger.New(slog.LevelDebug)
		service, err := NewRegionService(conf, http.New(log), log)
		if err != nil {
			t.Fatalf("failed to create region service: %s", err)
		}
		info, err := service.RegionInfo(t.Context(), 5)
		if err != nil {
			t.Fatalf("failed to fetch region info: %s", err)
		}
		if info.ID != 5 {
			t.Errorf("expected id to be %d, got %d", 5, info.ID)
		}
	})
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	conf, err := config.New()
	if err != nil {
		t.Fatalf("failed to load config: %s", err)
	}
	return conf
}
