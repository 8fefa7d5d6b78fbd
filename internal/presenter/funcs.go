// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/humanize"
)

// ConditionIcon returns the weather icon for a condition text.
func ConditionIcon(condition string) string {
	condition = strings.ToLower(condition)
	for _, entry := range conditionIcons {
		if strings.Contains(condition, entry.keyword) {
			return entry.icon
		}
	}
	return unknownConditionIcon
}

// NightConditionIcon returns the weather icon for a condition text observed after sunset.
func NightConditionIcon(condition string) string {
	icon := ConditionIcon(condition)
	if night, ok := nightConditionIcons[icon]; ok {
		return night
	}
	return icon
}

// EmojiWithSpace pads an emoji so that the following text lines up regardless of how wide the
// emoji renders.
func EmojiWithSpace(emoji string) string {
	width := runewidth.StringWidth(emoji)
	return fmt.Sprintf("%s%s", emoji, strings.Repeat(" ", width+1))
}

// number formats a float the way it was received, without padding or rounding.
func number(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func localizedTime(h *humanize.Humanizer, val time.Time) string {
	if val.IsZero() {
		return ""
	}
	return h.FormatTime(val, humanize.TimeFormat)
}
