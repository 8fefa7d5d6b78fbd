// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wneessen/weatherdash/internal/display"
	"github.com/wneessen/weatherdash/internal/logger"
	"github.com/wneessen/weatherdash/internal/region"
	"github.com/wneessen/weatherdash/internal/weather"
)

// Options are the defaults new sessions start with.
type Options struct {
	DefaultRegion   string
	DefaultRegionID int
	ForecastDays    int
	// MaxSessions caps the number of sessions; creating one more evicts the longest idle
	// session. Zero means no limit.
	MaxSessions int
}

// Store holds the sessions of all visitors in memory.
type Store struct {
	weather weather.Service
	region  region.Service
	opts    Options
	log     *logger.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore(weatherService weather.Service, regionService region.Service, opts Options,
	log *logger.Logger,
) *Store {
	return &Store{
		weather:  weatherService,
		region:   regionService,
		opts:     opts,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session with the given id and marks it as seen.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	sess.touch(s.now())
	return sess, true
}

// Touch marks the session with the given id as seen. It reports whether the session exists.
func (s *Store) Touch(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Create starts a new session with the default selection. Its displays are not mounted yet.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:           uuid.NewString(),
		WeatherPanel:display.NewWeather(s.weather, s.opts.ForecastDays, s.log),
		RegionPanel:  display.NewRegion(s.region, s.log),
		region:       s.opts.DefaultRegion,
		regionID:     s.opts.DefaultRegionID,
		lastSeen:     s.now(),
	}

	var evicted *Session
	s.mu.Lock()
	if s.opts.MaxSessions > 0 && len(s.sessions) >= s.opts.MaxSessions {
		evicted = s.oldest()
		delete(s.sessions, evicted.ID)
	}
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	if evicted != nil {
		evicted.Close()
		s.log.Debug("session evicted", slog.String("session", evicted.ID))
	}
	s.log.Debug("session created", slog.String("session", sess.ID))
	return sess
}

// oldest returns the session seen longest ago. It must be called with s.mu held and at least
// one session stored.
func (s *Store) oldest() *Session {
	var oldest *Session
	var oldestSeen time.Time
	for _, sess := range s.sessions {
		seen := sess.seen()
		if oldest == nil || seen.Before(oldestSeen) {
			oldest, oldestSeen = sess, seen
		}
	}
	return oldest
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes the sessions that have not been seen for longer than idle and closes their
// displays. It returns the number of removed sessions.
func (s *Store) Sweep(idle time.Duration) int {
	now := s.now()
	var expired []*Session

	s.mu.Lock()
	for id, sess := range s.sessions {
		if now.Sub(sess.seen()) > idle {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Close()
		s.log.Debug("session expired", slog.String("session", sess.ID))
	}
	return len(expired)
}

// Close removes all sessions and closes their displays.
func (s *Store) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
}
