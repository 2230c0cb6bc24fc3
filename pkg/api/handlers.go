package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vulnsentinel/vulnsentinel/ent/clientvuln"
	"github.com/vulnsentinel/vulnsentinel/pkg/cursor"
	"github.com/vulnsentinel/vulnsentinel/pkg/services"
)

const defaultPageSize = 50

// CreateLibraryRequest is the onboarding payload for a library.
type CreateLibraryRequest struct {
	Name          string `json:"name" binding:"required"`
	RepoURL       string `json:"repo_url" binding:"required"`
	Platform      string `json:"platform"`
	Ecosystem     string `json:"ecosystem"`
	DefaultBranch string `json:"default_branch"`
}

func (s *Server) createLibrary(c *gin.Context) {
	var req CreateLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lib, err := s.libraries.UpsertByName(c.Request.Context(), services.UpsertLibraryInput{
		Name:          req.Name,
		RepoURL:       req.RepoURL,
		Platform:      req.Platform,
		Ecosystem:     req.Ecosystem,
		DefaultBranch: req.DefaultBranch,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lib)
}

func (s *Server) listLibraries(c *gin.Context) {
	items, next, err := s.libraries.List(c.Request.Context(), c.Query("page_token"), pageSize(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "next_page_token": next})
}

// CreateProjectRequest is the onboarding payload for a project.
type CreateProjectRequest struct {
	Name          string `json:"name" binding:"required"`
	Organization  string `json:"organization"`
	RepoURL       string `json:"repo_url" binding:"required"`
	DefaultBranch string `json:"default_branch"`
	ContactEmail  string `json:"contact_email"`
	AutoSyncDeps  *bool  `json:"auto_sync_deps"`
}

func (s *Server) createProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := s.projects.Create(c.Request.Context(), services.CreateProjectInput{
		Name:          req.Name,
		Organization:  req.Organization,
		RepoURL:       req.RepoURL,
		DefaultBranch: req.DefaultBranch,
		ContactEmail:  req.ContactEmail,
		AutoSyncDeps:  req.AutoSyncDeps,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (s *Server) listProjects(c *gin.Context) {
	items, next, err := s.projects.List(c.Request.Context(), c.Query("page_token"), pageSize(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "next_page_token": next})
}

// AddDependencyRequest links a project to a tracked library by hand. Manual
// rows survive dependency scans.
type AddDependencyRequest struct {
	LibraryID       string `json:"library_id" binding:"required"`
	ConstraintExpr  string `json:"constraint_expr"`
	ResolvedVersion string `json:"resolved_version"`
}

func (s *Server) addDependency(c *gin.Context) {
	var req AddDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dep, err := s.projects.AddDependency(c.Request.Context(), c.Param("id"), services.DependencyInput{
		LibraryID:       req.LibraryID,
		ConstraintExpr:  req.ConstraintExpr,
		ResolvedVersion: req.ResolvedVersion,
		Source:          "manual",
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dep)
}

func (s *Server) listVulns(c *gin.Context) {
	items, next, err := s.vulns.List(c.Request.Context(), c.Query("page_token"), pageSize(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "next_page_token": next})
}

// UpdateStatusRequest carries a maintainer-driven status transition.
type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Message string `json:"message"`
}

func (s *Server) updateClientVulnStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	next := clientvuln.Status(req.Status)
	if err := clientvuln.StatusValidator(next); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown status: " + req.Status})
		return
	}

	if err := s.clientVulns.AdvanceCustomerStatus(c.Request.Context(), c.Param("id"), next, req.Message); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
}

func pageSize(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			return n
		}
	}
	return defaultPageSize
}

// writeError maps service errors to HTTP statuses: not-found 404, duplicate
// or conflicting entity 409, validation (including a bad page token) 422,
// anything else 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyExists), errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case services.IsValidationError(err), errors.Is(err, cursor.ErrInvalidCursor):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
