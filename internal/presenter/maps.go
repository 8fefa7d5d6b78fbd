// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import "github.com/vorlif/spreak/localize"

// MoonPhaseIcon is a map where moon phase names are keys and their corresponding emoji representations are values.
var MoonPhaseIcon = map[string]string{
	"New Moon":        "🌑",
	"Waxing Crescent": "🌒",
	"First Quarter":   "🌓",
	"Waxing Gibbous":  "🌔",
	"Full Moon":       "🌕",
	"Waning Gibbous":  "🌖",
	"Third Quarter":   "🌗",
	"Waning Crescent": "🌘",
}

// moonPhaseNames maps moon phase names to their translatable message IDs.
var moonPhaseNames = map[string]localize.MsgID{
	"New Moon":        "New moon",
	"Waxing Crescent": "Waxing crescent",
	"First Quarter":   "First quarter",
	"Waxing Gibbous":  "Waxing gibbous",
	"Full Moon":       "Full moon",
	"Waning Gibbous":  "Waning gibbous",
	"Third Quarter":   "Third quarter",
	"Waning Crescent": "Waning crescent",
}

// conditionIcons is checked in order; the first keyword contained in a lowercased condition
// text selects the icon.
var conditionIcons = []struct {
	keyword string
	icon    string
}{
	{"thunder", "⛈️"},
	{"hail", "⛈️"},
	{"snow", "🌨️"},
	{"sleet", "🌨️"},
	{"freezing", "🌨️"},
	{"drizzle", "🌦️"},
	{"shower", "🌦️"},
	{"rain", "🌧️"},
	{"fog", "🌫️"},
	{"mist", "🌫️"},
	{"partly", "⛅"},
	{"mainly clear", "🌤️"},
	{"overcast", "☁️"},
	{"cloud", "☁️"},
	{"sun", "☀️"},
	{"clear", "☀️"},
	{"wind", "💨"},
}

// nightConditionIcons replaces day icons that show the sun when it is dark.
var nightConditionIcons = map[string]string{
	"☀️": "🌙",
	"🌤️": "🌙",
	"⛅":  "☁️",
	"🌦️": "🌧️",
}

const unknownConditionIcon = "🌡️"
