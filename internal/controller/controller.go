// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package controller builds the weather and region services selected in the configuration.
package controller

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/wneessen/weatherdash/internal/backend"
	"github.com/wneessen/weatherdash/internal/config"
	nominatim "github.com/wneessen/weatherdash/internal/geocode/provider/osm-nominatim"
	"github.com/wneessen/weatherdash/internal/http"
	"github.com/wneessen/weatherdash/internal/logger"
	"github.com/wneessen/weatherdash/internal/region"
	regionbackend "github.com/wneessen/weatherdash/internal/region/provider/backend"
	regionmock "github.com/wneessen/weatherdash/internal/region/provider/mock"
	"github.com/wneessen/weatherdash/internal/weather"
	weatherbackend "github.com/wneessen/weatherdash/internal/weather/provider/backend"
	weathermock "github.com/wneessen/weatherdash/internal/weather/provider/mock"
	openmeteo "github.com/wneessen/weatherdash/internal/weather/provider/open-meteo"
)

// NewWeatherService returns the weather service named by services.weather.
func NewWeatherService(conf *config.Config, client *http.Client, log *logger.Logger) (service weather.Service, err error) {
	switch strings.ToLower(conf.Services.Weather) {
	case config.ServiceBackend:
		apiClient, err := backend.New(client, conf.Backend.BaseURL, conf.Backend.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create backend client: %w", err)
		}
		service, err = weatherbackend.New(apiClient)
		if err != nil {
			return nil, fmt.Errorf("failed to create backend weather service: %w", err)
		}
	case config.ServiceMock:
		service = weathermock.New()
	case config.ServiceOpenMeteo:
		lang := language.Make(conf.Locale)
		if lang == language.Und {
			lang = language.English
		}
		coder := nominatim.New(client, lang)
		service, err = openmeteo.New(client, coder, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create Open-Meteo weather service: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported weather service: %s", conf.Services.Weather)
	}

	log.Debug("weather service selected", "service", service.Name())
	return service, nil
}

// NewRegionService returns the region service named by services.region.
func NewRegionService(conf *config.Config, client *http.Client, log *logger.Logger) (service region.Service, err error) {
	switch strings.ToLower(conf.Services.Region) {
	case config.ServiceBackend:
		apiClient, err := backend.New(client, conf.Backend.BaseURL, conf.Backend.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create backend client: %w", err)
		}
		service, err = regionbackend.New(apiClient)
		if err != nil {
			return nil, fmt.Errorf("failed to create backend region service: %w", err)
		}
	case config.ServiceMock:
		service = regionmock.New()
	default:
		return nil, fmt.Errorf("unsupported region service: %s", conf.Services.Region)
	}

	log.Debug("region service selected", "service", service.Name())
	return service, nil
}
