package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyTaskID    = errors.New("task ID cannot be empty")
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
)

// Task is a single unit of work on a board. Category holds the owning
// board's name rather than its ID; the denormalization is intentional and
// isolated behind the store interfaces.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    string    `json:"deadline"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	UID         string    `json:"uId"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTask creates a new Task with a generated ID. Used by the single-insert
// path; bulk replacement carries caller-supplied IDs instead.
func NewTask(title, description, deadline, priority, category, uid string) (*Task, error) {
	task := &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Deadline:    deadline,
		Priority:    priority,
		Category:    category,
		UID:         uid,
		CreatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == "" {
		return ErrEmptyTaskID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if t.UID == "" {
		return ErrEmptyOwnerID
	}

	return nil
}
