package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/projecthub-api/internal/core/ports"
)

type ProjectHandler struct {
	projects   ports.ProjectService
	activities ports.ActivityService
}

func NewProjectHandler(projects ports.ProjectService, activities ports.ActivityService) *ProjectHandler {
	return &ProjectHandler{projects: projects, activities: activities}
}

// Create creates a project owned by the authenticated subject.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	project, err := h.projects.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     subject,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// List returns the authenticated subject's projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  domain.Project
// @Security     BearerAuth
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	projects, err := h.projects.ListByOwner(c.Request().Context(), subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get returns one project by ID.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	project, err := h.projects.Get(c.Request().Context(), c.Param("id"), subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Update applies a partial update to a project.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Project ID"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/projects/{id} [patch]
func (h *ProjectHandler) Update(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	project, err := h.projects.Update(c.Request().Context(), c.Param("id"), subject, ports.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete removes a project.
//
// @Summary      Delete a project
// @Tags         projects
// @Param        id  path  string  true  "Project ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	if err := h.projects.Delete(c.Request().Context(), c.Param("id"), subject); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Activities returns the project's activity feed, newest first.
//
// @Summary      List project activities
// @Tags         projects
// @Produce      json
// @Param        id   path     string  true  "Project ID"
// @Success      200  {array}  domain.Activity
// @Security     BearerAuth
// @Router       /api/projects/{id}/activities [get]
func (h *ProjectHandler) Activities(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	// Ownership check piggybacks on Get.
	if _, err := h.projects.Get(c.Request().Context(), c.Param("id"), subject); err != nil {
		return err
	}

	activities, err := h.activities.ListByProject(c.Request().Context(), c.Param("id"), 0)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}
