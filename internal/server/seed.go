package server

import (
	"net/http"

	"github.com/acmeboard/acmeboard/internal/seed"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) registerSeedRoute() {
	s.engine.GET("/seed", s.Seed)
}

// Seed loads the placeholder dataset. It exists for local development and
// refuses to run in production.
func (s *Server) Seed(c *gin.Context) {
	if s.cfg.IsProduction() {
		c.JSON(http.StatusForbidden, gin.H{"error": "seeding is disabled in production"})
		return
	}

	if err := seed.Run(c.Request.Context(), s.db); err != nil {
		s.log.Error("seed failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed database"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Database seeded successfully"})
}
