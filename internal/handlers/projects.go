package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"photolib/internal/contextutil"
	"photolib/internal/storage"
)

// ProjectsHandler handles HTTP requests for project management.
type ProjectsHandler struct {
	projects storage.ProjectStore
}

// NewProjectsHandler creates a new ProjectsHandler.
func NewProjectsHandler(projects storage.ProjectStore) *ProjectsHandler {
	return &ProjectsHandler{projects: projects}
}

// ProjectRequest represents the HTTP request payload for creating or
// renaming a project.
type ProjectRequest struct {
	Name string `json:"name"`
}

// List returns all projects.
//
// swagger:route GET /api/projects projects listProjects
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.projects.List(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list projects")
		return
	}
	writeJSON(ctx, w, http.StatusOK, projects)
}

// Create creates a new project. Duplicate names return 409.
//
// swagger:route POST /api/projects projects createProject
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(ctx, w, http.StatusBadRequest, "Project name is required")
		return
	}

	project, err := h.projects.Create(ctx, name)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to create project")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, project)
}

// Rename changes a project's name.
//
// swagger:route PUT /api/projects/{projectID} projects renameProject
func (h *ProjectsHandler) Rename(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	projectID := chi.URLParam(r, "projectID")

	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(ctx, w, http.StatusBadRequest, "Project name is required")
		return
	}

	if err := h.projects.Rename(ctx, projectID, name); err != nil {
		handleServiceError(ctx, w, err, "Failed to rename project")
		return
	}

	project, err := h.projects.GetByID(ctx, projectID)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to load project")
		return
	}
	writeJSON(ctx, w, http.StatusOK, project)
}

// Delete removes a project and all of its photos.
//
// swagger:route DELETE /api/projects/{projectID} projects deleteProject
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	if err := h.projects.Delete(ctx, projectID); err != nil {
		handleServiceError(ctx, w, err, "Failed to delete project")
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "Project deleted"})
}
