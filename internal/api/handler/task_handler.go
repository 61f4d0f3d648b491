package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/projecthub-api/internal/core/ports"
)

type TaskHandler struct {
	tasks ports.TaskService
}

func NewTaskHandler(tasks ports.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create adds a task to a project.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Project ID"
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/projects/{id}/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	task, err := h.tasks.Create(c.Request().Context(), ports.CreateTaskInput{
		ProjectID:   c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		ActorID:     subject,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// List returns the tasks of a project.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Param        id   path     string  true  "Project ID"
// @Success      200  {array}  domain.Task
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/projects/{id}/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	tasks, err := h.tasks.ListByProject(c.Request().Context(), c.Param("id"), subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get returns one task.
//
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Param        id      path      string  true  "Project ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  domain.Task
// @Failure      404     {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/projects/{id}/tasks/{taskId} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	task, err := h.tasks.Get(c.Request().Context(), c.Param("id"), c.Param("taskId"), subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Update applies a partial update to a task.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id      path      string             true  "Project ID"
// @Param        taskId  path      string             true  "Task ID"
// @Param        body    body      updateTaskRequest  true  "Fields to update"
// @Success      200     {object}  domain.Task
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/projects/{id}/tasks/{taskId} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	task, err := h.tasks.Update(c.Request().Context(), c.Param("id"), c.Param("taskId"), subject, ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete removes a task.
//
// @Summary      Delete a task
// @Tags         tasks
// @Param        id      path  string  true  "Project ID"
// @Param        taskId  path  string  true  "Task ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/projects/{id}/tasks/{taskId} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	if err := h.tasks.Delete(c.Request().Context(), c.Param("id"), c.Param("taskId"), subject); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
