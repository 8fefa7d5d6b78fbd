// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package web

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wneessen/weatherdash/internal/display"
	"github.com/wneessen/weatherdash/internal/schema"
	"github.com/wneessen/weatherdash/internal/session"
	"github.com/wneessen/weatherdash/internal/template"
)

const eventUpdate = "update"

type fragment struct {
	HTML string `json:"html"`
}

func (s *Server) weatherEvents(c *gin.Context) {
	sess := sessionFrom(c)
	sess.WatchWeather()
	updates, unsubscribe := sess.WeatherPanel.Subscribe(subscriberBuffer)
	defer unsubscribe()

	loc := localizer(c)
	render := func(state display.State[string, display.Weather]) (string, error) {
		return s.templates.RenderString(template.FragmentWeather, loc, s.presenter.Weather(state, loc.Language()))
	}
	stream(c, s.keepAlive, touchSession(s.store, sess.ID), updates, render)
}

func (s *Server) regionEvents(c *gin.Context) {
	sess := sessionFrom(c)
	sess.WatchRegion()
	updates, unsubscribe := sess.RegionPanel.Subscribe(subscriberBuffer)
	defer unsubscribe()

	loc := localizer(c)
	render := func(state display.State[int, schema.RegionInfo]) (string, error) {
		return s.templates.RenderString(template.FragmentRegion, loc, s.presenter.Region(state, loc.Language()))
	}
	stream(c, s.keepAlive, touchSession(s.store, sess.ID), updates, render)
}

// stream sends every display update as rendered fragment until the client goes away or the
// display is closed. A keepalive comment is written when nothing happened for a while; it also
// keeps the session from expiring while the page stays open.
func stream[S any](c *gin.Context, keepAlive time.Duration, touch func() bool, updates <-chan S,
	render func(S) (string, error),
) {
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case state, ok := <-updates:
			if !ok {
				return false
			}
			html, err := render(state)
			if err != nil {
				_ = c.Error(fmt.Errorf("failed to render event: %w", err))
				return false
			}
			c.SSEvent(eventUpdate, fragment{HTML: html})
			return true
		case <-ticker.C:
			if !touch() {
				return false
			}
			if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
				return false
			}
			return true
		}
	})
}

func touchSession(store *session.Store, id string) func() bool {
	return func() bool {
		return store.Touch(id)
	}
}
