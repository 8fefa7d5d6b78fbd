// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package template renders the dashboard pages and the panel fragments pushed to the browser.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/vorlif/spreak"

	"github.com/wneessen/weatherdash/internal/config"
	"github.com/wneessen/weatherdash/internal/presenter"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageLanding      = "landing"
	PageWeather      = "weather"
	PageRegions      = "regions"
	FragmentWeather  = "weather_panel"
	FragmentRegion   = "region_panel"
	contentTypeHTML  = "text/html; charset=utf-8"
	defaultTitleText = "Weather & Region Info App"
)

// LandingPage is the data of the landing page.
type LandingPage struct{}

// WeatherPage is the data of the weather page.
type WeatherPage struct {
	Presets      []string
	Selected     string
	CustomRegion string
	Panel        presenter.WeatherView
}

// RegionPage is the data of the region page.
type RegionPage struct {
	Presets        []config.RegionPreset
	SelectedID     int
	CustomRegionID string
	Panel          presenter.RegionView
}

type Templates struct {
	set *template.Template
}

// New parses the embedded template set.
func New() (*Templates, error) {
	set, err := template.New("weatherdash").Funcs(templateFuncMap(nil)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Templates{set: set}, nil
}

// Render executes the named template with data. Translatable text is looked up with loc.
func (t *Templates) Render(w io.Writer, name string, loc *spreak.Localizer, data any) error {
	tpl, err := t.set.Clone()
	if err != nil {
		return fmt.Errorf("failed to clone templates: %w", err)
	}
	if err = tpl.Funcs(templateFuncMap(loc)).ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return nil
}

// RenderString is like Render but returns the output.
func (t *Templates) RenderString(name string, loc *spreak.Localizer, data any) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := t.Render(buf, name, loc, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Page returns a renderer for the named page that can be handed to gin.
func (t *Templates) Page(name string, loc *spreak.Localizer, data any) Page {
	return Page{templates: t, name: name, localizer: loc, data: data}
}

// Page renders a full page as HTML response.
type Page struct {
	templates *Templates
	name      string
	localizer *spreak.Localizer
	data      any
}

func (p Page) Render(w http.ResponseWriter) error {
	p.WriteContentType(w)
	return p.templates.Render(w, p.name, p.localizer, p.data)
}

func (p Page) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{contentTypeHTML}
	}
}

func templateFuncMap(loc *spreak.Localizer) template.FuncMap {
	return template.FuncMap{
		"loc":   localize(loc),
		"lang":  language(loc),
		"title": func() string { return localize(loc)(defaultTitleText) },
		"lc":    strings.ToLower,
		"uc":    strings.ToUpper,
	}
}

func localize(loc *spreak.Localizer) func(string) string {
	return func(val string) string {
		if loc == nil {
			return val
		}
		return loc.Get(val)
	}
}

func language(loc *spreak.Localizer) func() string {
	return func() string {
		if loc == nil {
			return "en"
		}
		base, _ := loc.Language().Base()
		return base.String()
	}
}
