// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package web serves the dashboard pages and pushes display updates to the browser.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vorlif/spreak"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/wneessen/weatherdash/internal/config"
	"github.com/wneessen/weatherdash/internal/i18n"
	"github.com/wneessen/weatherdash/internal/logger"
	"github.com/wneessen/weatherdash/internal/presenter"
	"github.com/wneessen/weatherdash/internal/session"
	"github.com/wneessen/weatherdash/internal/template"
)

const (
	// DefaultKeepAlive is the interval of keepalive comments on event streams.
	DefaultKeepAlive = 30 * time.Second

	contextKeySession   = "session"
	contextKeyLocalizer = "localizer"
	subscriberBuffer    = 4
)

type Server struct {
	config     *config.Config
	log        *logger.Logger
	presenter  *presenter.Presenter
	store      *session.Store
	templates  *template.Templates
	translator *i18n.Translator
	keepAlive  time.Duration
	router     *gin.Engine
}

func New(conf *config.Config, log *logger.Logger, store *session.Store, tpls *template.Templates,
	pres *presenter.Presenter, translator *i18n.Translator,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	server := &Server{
		config:     conf,
		log:        log,
		presenter:  pres,
		store:      store,
		templates:  tpls,
		translator: translator,
		keepAlive:  DefaultKeepAlive,
	}
	server.router = server.routes()
	return server
}

// Handler returns the HTTP handler of the dashboard. Incoming requests are traced through the
// global OpenTelemetry provider.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.router, "weatherdash")
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.Use(gin.Recovery(), s.requestLogger(), s.localize())

	router.GET("/healthz", s.health)
	router.GET("/", s.landing)

	pages := router.Group("/", s.session())
	pages.GET("/weather", s.weatherPage)
	pages.POST("/weather", s.weatherForm)
	pages.GET("/regions", s.regionPage)
	pages.POST("/regions", s.regionForm)
	pages.GET("/events/weather", s.weatherEvents)
	pages.GET("/events/regions", s.regionEvents)

	router.NoRoute(s.landing)
	return router
}

// requestLogger logs every request once it has been served.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request served", slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path), slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(start)))
		for _, err := range c.Errors {
			s.log.Error("request failed", logger.Err(err.Err), slog.String("path", c.Request.URL.Path))
		}
	}
}

// localize picks the localizer for the languages the browser asks for.
func (s *Server) localize() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKeyLocalizer, s.translator.Localizer(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// session loads the visitor's session or starts a new one.
func (s *Server) session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(session.CookieName); err == nil {
			if sess, ok := s.store.Get(id); ok {
				c.Set(contextKeySession, sess)
				c.Next()
				return
			}
		}
		sess := s.store.Create()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(session.CookieName, sess.ID, 0, "/", "", false, true)
		c.Set(contextKeySession, sess)
		c.Next()
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) landing(c *gin.Context) {
	s.render(c, template.PageLanding, template.LandingPage{})
}

func (s *Server) render(c *gin.Context, name string, data any) {
	c.Render(http.StatusOK, s.templates.Page(name, localizer(c), data))
}

func sessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(contextKeySession).(*session.Session)
}

func localizer(c *gin.Context) *spreak.Localizer {
	return c.MustGet(contextKeyLocalizer).(*spreak.Localizer)
}
