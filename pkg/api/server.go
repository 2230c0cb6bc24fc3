// Package api is the thin operator facade: onboarding, paginated listing,
// and customer status feedback.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vulnsentinel/vulnsentinel/pkg/database"
	"github.com/vulnsentinel/vulnsentinel/pkg/services"
)

// Server wires the HTTP handlers to the service layer.
type Server struct {
	db          *database.Client
	libraries   *services.LibraryService
	projects    *services.ProjectService
	vulns       *services.VulnService
	clientVulns *services.ClientVulnService
}

// NewServer creates the API server.
func NewServer(db *database.Client, libraries *services.LibraryService, projects *services.ProjectService, vulns *services.VulnService, clientVulns *services.ClientVulnService) *Server {
	return &Server{
		db:          db,
		libraries:   libraries,
		projects:    projects,
		vulns:       vulns,
		clientVulns: clientVulns,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/libraries", s.createLibrary)
		v1.GET("/libraries", s.listLibraries)
		v1.POST("/projects", s.createProject)
		v1.GET("/projects", s.listProjects)
		v1.POST("/projects/:id/dependencies", s.addDependency)
		v1.GET("/vulns", s.listVulns)
		v1.POST("/client-vulns/:id/status", s.updateClientVulnStatus)
	}
	return r
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
