// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/wneessen/weatherdash/internal/config"
	"github.com/wneessen/weatherdash/internal/controller"
	httpclient "github.com/wneessen/weatherdash/internal/http"
	"github.com/wneessen/weatherdash/internal/i18n"
	"github.com/wneessen/weatherdash/internal/logger"
	"github.com/wneessen/weatherdash/internal/presenter"
	"github.com/wneessen/weatherdash/internal/session"
	"github.com/wneessen/weatherdash/internal/template"
	"github.com/wneessen/weatherdash/internal/web"
)

const sweepJobName = "session_sweep_job"

type Service struct {
	config    *config.Config
	logger    *logger.Logger
	scheduler gocron.Scheduler
	store     *session.Store
	web       *web.Server
}

func New(conf *config.Config, log *logger.Logger, translator *i18n.Translator) (*Service, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	client := httpclient.New(log)
	weatherService, err := controller.NewWeatherService(conf, client, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather service: %w", err)
	}
	regionService, err := controller.NewRegionService(conf, client, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create region service: %w", err)
	}

	tpls, err := template.New()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	pres, err := presenter.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}

	store := session.NewStore(weatherService, regionService, session.Options{
		DefaultRegion:   conf.Weather.DefaultRegion,
		DefaultRegionID: conf.Region.DefaultID,
		ForecastDays:    int(conf.Weather.ForecastDays), //nolint:gosec
		MaxSessions:     conf.Session.MaxSessions,
	}, log)

	service := &Service{
		config:    conf,
		logger:    log,
		scheduler: scheduler,
		store:     store,
		web:       web.New(conf, log, store, tpls, pres, translator),
	}
	return service, nil
}

// Run starts the scheduled jobs and serves the dashboard on the configured address until ctx is
// cancelled.
func (s *Service) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Server.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Server.Listen, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is like Run but accepts connections on listener.
func (s *Service) Serve(ctx context.Context, listener net.Listener) error {
	if err := s.createScheduledJob(ctx, s.config.Intervals.SessionSweep, s.sweepSessions,
		sweepJobName); err != nil {
		return err
	}
	s.scheduler.Start()

	server := &http.Server{
		Handler:           s.web.Handler(),
		ReadHeaderTimeout: s.config.Server.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("serving dashboard", slog.String("address", listener.Addr().String()))
		serveErr <- server.Serve(listener)
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		s.logger.Error("failed to shut down HTTP server", logger.Err(shutdownErr))
	}
	s.store.Close()
	if schedErr := s.scheduler.Shutdown(); schedErr != nil {
		s.logger.Error("failed to shut down scheduler", logger.Err(schedErr))
	}
	if err != nil {
		return fmt.Errorf("failed to serve dashboard: %w", err)
	}
	return nil
}

func (s *Service) createScheduledJob(ctx context.Context, interval time.Duration, task func(context.Context),
	jobName string,
) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(jobName),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", jobName, err)
	}
	return nil
}

// sweepSessions closes the sessions that have been idle for longer than the configured timeout.
func (s *Service) sweepSessions(context.Context) {
	if removed := s.store.Sweep(s.config.Session.IdleTimeout); removed > 0 {
		s.logger.Debug("idle sessions removed", slog.Int("count", removed), slog.Int("active", s.store.Len()))
	}
}
