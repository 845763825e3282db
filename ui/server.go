package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bikerental/internal"
	"bikerental/internal/config"
	"bikerental/internal/snapshot"
)

// Server exposes the aggregated rental views as JSON for the charting layer.
type Server struct {
	router    *gin.Engine
	snap      *snapshot.Snapshot
	config    *config.Config
	logger    *internal.Logger
	aboutPage []byte
}

// NewServer creates the dashboard API server over an immutable snapshot.
func NewServer(cfg *config.Config, snap *snapshot.Snapshot, logger *internal.Logger) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:    gin.Default(),
		snap:      snap,
		config:    cfg,
		logger:    logger,
		aboutPage: renderAboutPage(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleAbout)

	api := s.router.Group("/api")
	{
		api.GET("/summary", s.handleSummary)
		api.GET("/overview", s.handleOverview)
		api.GET("/seasons", s.handleSeasons)
		api.GET("/climate", s.handleClimate)
		api.GET("/export", s.handleExport)

		views := api.Group("/views")
		{
			views.GET("/daily", s.handleDaily)
			views.GET("/monthly", s.handleMonthly)
			views.GET("/weekly", s.handleWeekly)
			views.GET("/hourly", s.handleHourly)
			views.GET("/day", s.handleDay)
			views.GET("/month", s.handleMonth)
		}
	}
}

// Handler returns the underlying HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server on the configured port and blocks.
func (s *Server) Run() error {
	addr := ":" + s.config.Server.Port
	s.logger.Info("dashboard API listening on %s (snapshot %s, %d rows)",
		addr, s.snap.ID(), len(s.snap.Rows()))
	return s.router.Run(addr)
}
