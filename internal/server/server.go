// Package server exposes the discovery engine over a small HTTP/JSON API so
// the separately deployed bot process can call it. The conversational layer
// owns everything user-facing; this surface only moves typed requests and
// results.
package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Tw1zzzzz/CisBot2/internal/app"
	"github.com/Tw1zzzzz/CisBot2/internal/service/discovery"
)

type Server struct {
	appCtx     *app.AppContext
	httpServer *http.Server
	discovery  *discovery.Service
}

// NewServer wires the engine behind an echo router.
func NewServer(appCtx *app.AppContext) *Server {
	e := echo.New()
	e.HideBanner = true

	s := &Server{
		appCtx:    appCtx,
		discovery: discovery.NewService(appCtx),
		httpServer: &http.Server{
			Addr:    appCtx.Cfg.HTTP.Host + ":" + appCtx.Cfg.HTTP.Port,
			Handler: e,
		},
	}

	e.Use(s.requestID)
	s.RegisterRoutes(e)
	return s
}

// RegisterRoutes attaches all endpoints.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", s.handleHealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/users/:id/candidates", s.handleCandidates)
	v1.POST("/users/:id/likes", s.handleLike)
	v1.POST("/users/:id/skips", s.handleSkip)
	v1.GET("/users/:id/liked-you/count", s.handleLikedYouCount)
	v1.GET("/users/:id/matches", s.handleMatches)
}

// requestID tags every request with an id for log correlation.
func (s *Server) requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Response().Header().Set("X-Request-ID", id)
		c.Set("req_id", id)
		return next(c)
	}
}

func (s *Server) Start() error {
	s.appCtx.Logger.Info("starting http server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
