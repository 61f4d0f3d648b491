package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/projecthub/projecthub-api/internal/core/domain"
	"github.com/projecthub/projecthub-api/internal/core/ports"
)

type taskService struct {
	tasks      ports.TaskRepository
	projects   ports.ProjectRepository
	activities ports.ActivityRecorder
	log        zerolog.Logger
}

// NewTaskService returns a TaskService implementation. Every operation
// resolves the enclosing project first and enforces ownership.
func NewTaskService(tasks ports.TaskRepository, projects ports.ProjectRepository, activities ports.ActivityRecorder, log zerolog.Logger) ports.TaskService {
	return &taskService{tasks: tasks, projects: projects, activities: activities, log: log}
}

func (s *taskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if err := s.authorize(ctx, input.ProjectID, input.ActorID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.NewString(),
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskStatusTodo,
		AssigneeID:  input.AssigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.record(task, input.ActorID, domain.ActivityTaskCreated, fmt.Sprintf("task %q created", task.Title))
	return task, nil
}

func (s *taskService) Get(ctx context.Context, projectID, taskID, actorID string) (*domain.Task, error) {
	if err := s.authorize(ctx, projectID, actorID); err != nil {
		return nil, err
	}
	return s.find(ctx, projectID, taskID)
}

func (s *taskService) ListByProject(ctx context.Context, projectID, actorID string) ([]domain.Task, error) {
	if err := s.authorize(ctx, projectID, actorID); err != nil {
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) Update(ctx context.Context, projectID, taskID, actorID string, input ports.UpdateTaskInput) (*domain.Task, error) {
	if err := s.authorize(ctx, projectID, actorID); err != nil {
		return nil, err
	}

	task, err := s.find(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.AssigneeID != nil {
		task.AssigneeID = *input.AssigneeID
	}
	if input.Status != nil {
		status := domain.TaskStatus(*input.Status)
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		task.Status = status
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	s.record(task, actorID, domain.ActivityTaskUpdated, fmt.Sprintf("task %q updated", task.Title))
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, projectID, taskID, actorID string) error {
	if err := s.authorize(ctx, projectID, actorID); err != nil {
		return err
	}

	task, err := s.find(ctx, projectID, taskID)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.record(task, actorID, domain.ActivityTaskDeleted, fmt.Sprintf("task %q deleted", task.Title))
	return nil
}

// authorize verifies the project exists and actorID owns it.
func (s *taskService) authorize(ctx context.Context, projectID, actorID string) error {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.OwnerID != actorID {
		return domain.ErrForbidden
	}
	return nil
}

// find fetches a task and checks it belongs to the given project. A task
// from another project is reported as not found, not forbidden.
func (s *taskService) find(ctx context.Context, projectID, taskID string) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.ProjectID != projectID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s *taskService) record(task *domain.Task, actorID, activityType, message string) {
	if s.activities == nil {
		return
	}
	s.activities.Enqueue(ports.ActivityInput{
		ProjectID: task.ProjectID,
		TaskID:    task.ID,
		ActorID:   actorID,
		Type:      activityType,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}
