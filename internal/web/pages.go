// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package web

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wneessen/weatherdash/internal/config"
	"github.com/wneessen/weatherdash/internal/template"
)

func (s *Server) weatherPage(c *gin.Context) {
	sess := sessionFrom(c)
	sess.MountWeather()
	s.render(c, template.PageWeather, template.WeatherPage{
		Presets:      s.config.Weather.Presets,
		Selected:     sess.Region(),
		CustomRegion: sess.CustomRegion(),
		Panel:        s.presenter.Weather(sess.WeatherPanel.State(), localizer(c).Language()),
	})
}

// weatherForm handles both forms of the weather page: a preset button or the custom region.
// Presets that are not configured are ignored.
func (s *Server) weatherForm(c *gin.Context) {
	sess := sessionFrom(c)
	if preset, ok := c.GetPostForm("preset"); ok {
		if slices.Contains(s.config.Weather.Presets, preset) {
			sess.SelectRegion(preset)
		}
	} else {
		sess.SubmitCustomRegion(c.PostForm("custom_region"))
	}
	c.Redirect(http.StatusSeeOther, "/weather")
}

func (s *Server) regionPage(c *gin.Context) {
	sess := sessionFrom(c)
	sess.MountRegion()
	s.render(c, template.PageRegions, template.RegionPage{
		Presets:        s.config.Region.Presets,
		SelectedID:     sess.RegionID(),
		CustomRegionID: sess.CustomRegionID(),
		Panel:          s.presenter.Region(sess.RegionPanel.State(), localizer(c).Language()),
	})
}

// regionForm handles both forms of the region page: a preset button or the custom region id.
// Preset ids that are not configured are ignored.
func (s *Server) regionForm(c *gin.Context) {
	sess := sessionFrom(c)
	if preset, ok := c.GetPostForm("preset_id"); ok {
		id, err := strconv.Atoi(preset)
		if err == nil && s.isRegionPreset(id) {
			sess.SelectRegionID(id)
		}
	} else {
		sess.SubmitCustomRegionID(c.PostForm("custom_region_id"))
	}
	c.Redirect(http.StatusSeeOther, "/regions")
}

func (s *Server) isRegionPreset(id int) bool {
	return slices.ContainsFunc(s.config.Region.Presets, func(preset config.RegionPreset) bool {
		return preset.ID == id
	})
}
