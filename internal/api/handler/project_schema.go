package handler

// Request types for the project and task CRUD surface. These routes sit
// behind the bearer-auth middleware; validation uses the echo validator
// (struct tags), unlike the pre-authentication gated routes.

type createProjectRequest struct {
	Name        string `json:"name"        validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type updateProjectRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=3,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	AssigneeID  string `json:"assignee_id" validate:"omitempty"`
}

type updateTaskRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status      *string `json:"status,omitempty"      validate:"omitempty,oneof=todo in_progress done"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}
