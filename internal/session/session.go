// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package session keeps the page state of every visitor of the dashboard.
package session

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/wneessen/weatherdash/internal/display"
)

// CookieName is the name of the cookie carrying the session id.
const CookieName = "weatherdash_session"

// Session is the page state of a single visitor: the region selected on the weather page, the
// region id selected on the region page, what was typed into the custom inputs and the two
// displays showing the selection.
type Session struct {
	ID           string
	WeatherPanel *display.WeatherDisplay
	RegionPanel  *display.RegionDisplay

	// mu is held while a selection is applied to its display, so the selection and the
	// display key change together.
	mu             sync.RWMutex
	region         string
	customRegion   string
	regionID       int
	customRegionID string
	lastSeen       time.Time
}

// Region returns the region selected on the weather page.
func (s *Session) Region() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.region
}

// CustomRegion returns the text last entered as custom region.
func (s *Session) CustomRegion() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customRegion
}

// SelectRegion selects a preset region and clears the custom region input. Blank names are
// ignored.
func (s *Session) SelectRegion(region string) {
	region = strings.TrimSpace(region)
	if region == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.region = region
	s.customRegion = ""
	s.WeatherPanel.Set(region)
}

// SubmitCustomRegion selects the trimmed input as region. Empty input is ignored. It reports
// whether the input was accepted.
func (s *Session) SubmitCustomRegion(input string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customRegion = input
	region := strings.TrimSpace(input)
	if region == "" {
		return false
	}
	s.region = region
	s.WeatherPanel.Set(region)
	return true
}

// RegionID returns the region id selected on the region page.
func (s *Session) RegionID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.regionID
}

// CustomRegionID returns the text last entered as custom region id.
func (s *Session) CustomRegionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customRegionID
}

// SelectRegionID selects a preset region id and clears the custom id input. Ids below 1 are
// ignored.
func (s *Session) SelectRegionID(id int) {
	if id < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regionID = id
	s.customRegionID = ""
	s.RegionPanel.Set(id)
}

// SubmitCustomRegionID selects the input as region id if it is a positive integer. Anything
// else is ignored. It reports whether the input was accepted.
func (s *Session) SubmitCustomRegionID(input string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customRegionID = input
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || id < 1 {
		return false
	}
	s.regionID = id
	s.RegionPanel.Set(id)
	return true
}

// MountWeather fetches the weather of the selected region, also when it is already shown.
func (s *Session) MountWeather() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.WeatherPanel.Refresh(s.region)
}

// MountRegion fetches the information of the selected region id, also when it is already shown.
func (s *Session) MountRegion() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.RegionPanel.Refresh(s.regionID)
}

// WatchWeather makes sure the weather display shows the selected region without fetching it
// again if it already does.
func (s *Session) WatchWeather() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.WeatherPanel.Set(s.region)
}

// WatchRegion is WatchWeather for the region display.
func (s *Session) WatchRegion() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.RegionPanel.Set(s.regionID)
}

// Close closes both displays.
func (s *Session) Close() {
	s.WeatherPanel.Close()
	s.RegionPanel.Close()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) seen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}
