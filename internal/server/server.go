// Package server exposes the lookup pipeline over HTTP: a JSON schedule
// endpoint and a CSV download endpoint, shared by the standalone server
// binary and the CLI serve command.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/acadtools/timetable-viewer/internal/schedule"
)

// Server holds the handler dependencies.
type Server struct {
	svc    *schedule.Service
	logger *zap.Logger
}

// New creates a server around the lookup service.
func New(svc *schedule.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{svc: svc, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())
	r.GET("/schedule/:roll", s.handleGetSchedule)
	r.GET("/schedule/:roll/export", s.handleExportSchedule)
	return r
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	return s.Router().Run(addr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
