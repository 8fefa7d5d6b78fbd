// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/vorlif/humanize"
	"github.com/vorlif/humanize/locale/fr"
	"github.com/vorlif/spreak/localize"
	"github.com/wneessen/go-moonphase"
	"golang.org/x/text/language"

	"github.com/wneessen/weatherdash/internal/backend"
	"github.com/wneessen/weatherdash/internal/display"
	"github.com/wneessen/weatherdash/internal/schema"
)

const (
	MsgLoading         localize.MsgID = "Loading..."
	MsgWeatherFailed   localize.MsgID = "Failed to fetch weather data"
	MsgRegionFailed    localize.MsgID = "Failed to fetch region information."
	MsgInvalidResponse localize.MsgID = "Received an invalid response from the server"
)

// Panel is the part of a view every display has.
type Panel struct {
	Status    string
	Message   localize.MsgID
	UpdatedAt string
}

func (p Panel) Loading() bool { return p.Status == display.StatusLoading.String() }
func (p Panel) Failed() bool  { return p.Status == display.StatusError.String() }
func (p Panel) Ready() bool   { return p.Status == display.StatusReady.String() }

type ConditionView struct {
	Temperature   string
	Condition     string
	ConditionIcon string
	Humidity      string
}

type ForecastView struct {
	ConditionView
	Day string
}

type WeatherView struct {
	Panel
	Region        string
	Current       ConditionView
	Forecast      ForecastView
	MoonPhase     localize.MsgID
	MoonPhaseIcon string
}

type RegionView struct {
	Panel
	ID              string
	Name            string
	Population      string
	PopulationWords string
	Language        string
}

type Presenter struct {
	humanizers *humanize.Collection
	now        func() time.Time
}

func New() (*Presenter, error) {
	collection, err := humanize.New(humanize.WithLocale(fr.New()))
	if err != nil {
		return nil, fmt.Errorf("failed to create humanizer collection: %w", err)
	}
	return &Presenter{humanizers: collection, now: time.Now}, nil
}

// Weather builds the view of a weather display state.
func (p *Presenter) Weather(state display.State[string, display.Weather], lang language.Tag) WeatherView {
	humanizer := p.humanizers.CreateHumanizer(lang)
	view := WeatherView{
		Panel:  p.panel(humanizer, state.Status, state.Err, state.UpdatedAt, MsgWeatherFailed),
		Region: state.Key,
	}
	if state.Status != display.StatusReady {
		return view
	}

	phase := moonphase.New(p.now()).PhaseName()
	view.MoonPhase = moonPhaseNames[phase]
	view.MoonPhaseIcon = MoonPhaseIcon[phase]
	view.Current = conditionView(state.Data.Current)
	view.Forecast = ForecastView{ConditionView: conditionView(state.Data.Forecast.WeatherInfo)}
	if state.Data.Forecast.Day != nil {
		view.Forecast.Day = state.Data.Forecast.Day.String()
	}
	return view
}

// Region builds the view of a region display state.
func (p *Presenter) Region(state display.State[int, schema.RegionInfo], lang language.Tag) RegionView {
	humanizer := p.humanizers.CreateHumanizer(lang)
	view := RegionView{
		Panel: p.panel(humanizer, state.Status, state.Err, state.UpdatedAt, MsgRegionFailed),
	}
	if state.Status != display.StatusReady {
		return view
	}

	info := state.Data
	view.ID = strconv.Itoa(info.ID)
	view.Name = info.Name
	view.Population = strconv.FormatInt(info.Population(), 10)
	if words := humanizer.Intword(info.Population()); words != view.Population {
		view.PopulationWords = words
	}
	view.Language = info.Language
	return view
}

// ErrorMessage returns the message shown for a failed fetch. Malformed responses get their
// own message, every other failure shows fallback.
func ErrorMessage(err error, fallback localize.MsgID) localize.MsgID {
	if errors.Is(err, backend.ErrMalformedResponse) {
		return MsgInvalidResponse
	}
	return fallback
}

func (p *Presenter) panel(humanizer *humanize.Humanizer, status display.Status, err error, updated time.Time,
	failed localize.MsgID,
) Panel {
	panel := Panel{Status: status.String()}
	switch status {
	case display.StatusLoading:
		panel.Message = MsgLoading
	case display.StatusError:
		panel.Message = ErrorMessage(err, failed)
	case display.StatusReady:
		panel.UpdatedAt = localizedTime(humanizer, updated)
	}
	return panel
}

func conditionView(info schema.WeatherInfo) ConditionView {
	icon := ConditionIcon(info.Condition)
	if info.IsNight() {
		icon = NightConditionIcon(info.Condition)
	}
	return ConditionView{
		Temperature:   number(info.TemperatureValue()),
		Condition:     info.Condition,
		ConditionIcon: EmojiWithSpace(icon),
		Humidity:      number(info.HumidityValue()),
	}
}
