package types

import "time"

// Task represents a single task owned by a user.
type Task struct {
	// ID is the unique identifier of the task.
	ID int `json:"id" db:"id"`

	// Title is the short description of the task.
	Title string `json:"title" db:"title"`

	// Description is optional free-form detail.
	Description string `json:"description" db:"description"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed" db:"completed"`

	// UserID is the id of the owning user. A task is visible and
	// mutable only by its owner.
	UserID int `json:"user_id" db:"user_id"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the task.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TaskPatch describes a partial task update. Only non-nil fields
// are applied.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// DemoTask is the record kept by the unauthenticated in-memory variant.
// It carries no owner and no timestamps.
type DemoTask struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
