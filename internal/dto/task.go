package dto

import "github.com/yukikurage/taskmanager-api/internal/models"

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Priority  int    `json:"priority"`
	Completed bool   `json:"completed"`
	UserID    uint64 `json:"user_id"`
	Slug      string `json:"slug"`
}

// TaskRequest is the body of POST /tasks/create and PUT /tasks/update/:id.
// The owning user is passed as the user_id query parameter on create.
type TaskRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Priority  int    `json:"priority"`
	Completed bool   `json:"completed"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		Title:     task.Title,
		Content:   task.Content,
		Priority:  task.Priority,
		Completed: task.Completed,
		UserID:    task.UserID,
		Slug:      task.Slug,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskDTO(t)
	}
	return out
}
