package services

import (
	"context"

	"github.com/tasknest/apiserver/types"
)

// TaskRepository defines ownership-scoped persistence operations for
// tasks. Implementations return store.ErrNotFound for a missing id and
// store.ErrForbidden for a task owned by someone else.
type TaskRepository interface {
	List(ctx context.Context, ownerID int) ([]types.Task, error)
	Create(ctx context.Context, task types.Task) (types.Task, error)
	Get(ctx context.Context, ownerID, id int) (types.Task, error)
	Update(ctx context.Context, ownerID, id int, patch types.TaskPatch) (types.Task, error)
	Delete(ctx context.Context, ownerID, id int) error
}

// TaskService encapsulates task use-cases for an authenticated owner.
type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context, ownerID int) ([]types.Task, error) {
	return s.repo.List(ctx, ownerID)
}

// Create stamps the caller as owner and persists the task.
func (s *TaskService) Create(ctx context.Context, ownerID int, title, description string, completed bool) (types.Task, error) {
	return s.repo.Create(ctx, types.Task{
		Title:       title,
		Description: description,
		Completed:   completed,
		UserID:      ownerID,
	})
}

func (s *TaskService) Get(ctx context.Context, ownerID, id int) (types.Task, error) {
	return s.repo.Get(ctx, ownerID, id)
}

func (s *TaskService) Update(ctx context.Context, ownerID, id int, patch types.TaskPatch) (types.Task, error) {
	return s.repo.Update(ctx, ownerID, id, patch)
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id int) error {
	return s.repo.Delete(ctx, ownerID, id)
}
