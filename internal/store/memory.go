package store

import (
	"context"
	"sync"
	"time"

	"github.com/tasknest/apiserver/types"
)

// MemUserRepository is an in-memory UserRepository. It mirrors the
// Postgres repository's contract and is safe for concurrent use.
type MemUserRepository struct {
	mu     sync.Mutex
	users  map[int]types.User
	nextID int
}

func NewMemUserRepository() *MemUserRepository {
	return &MemUserRepository{
		users:  make(map[int]types.User),
		nextID: 1,
	}
}

func (r *MemUserRepository) GetByID(ctx context.Context, id int) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return types.User{}, ErrNotFound
	}
	return user, nil
}

func (r *MemUserRepository) GetByEmail(ctx context.Context, email string) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, ErrNotFound
}

func (r *MemUserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return types.User{}, ErrEmailTaken
		}
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return user, nil
}

func (r *MemUserRepository) UpdateProfile(ctx context.Context, id int, patch types.UserPatch) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return types.User{}, ErrNotFound
	}

	if patch.Email != nil {
		for _, existing := range r.users {
			if existing.ID != id && existing.Email == *patch.Email {
				return types.User{}, ErrEmailTaken
			}
		}
		user.Email = *patch.Email
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}

	r.users[id] = user
	return user, nil
}

// MemTaskRepository is an in-memory TaskRepository with the same
// ownership semantics as the Postgres repository. Listing follows
// insertion order.
type MemTaskRepository struct {
	mu     sync.Mutex
	tasks  map[int]types.Task
	order  []int
	nextID int
}

func NewMemTaskRepository() *MemTaskRepository {
	return &MemTaskRepository{
		tasks:  make(map[int]types.Task),
		nextID: 1,
	}
}

func (r *MemTaskRepository) List(ctx context.Context, ownerID int) ([]types.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]types.Task, 0)
	for _, id := range r.order {
		task, ok := r.tasks[id]
		if ok && task.UserID == ownerID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *MemTaskRepository) Create(ctx context.Context, task types.Task) (types.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	r.tasks[task.ID] = task
	r.order = append(r.order, task.ID)
	return task, nil
}

func (r *MemTaskRepository) Get(ctx context.Context, ownerID, id int) (types.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.get(ownerID, id)
}

func (r *MemTaskRepository) Update(ctx context.Context, ownerID, id int, patch types.TaskPatch) (types.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, err := r.get(ownerID, id)
	if err != nil {
		return types.Task{}, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	task.UpdatedAt = time.Now()

	r.tasks[id] = task
	return task, nil
}

func (r *MemTaskRepository) Delete(ctx context.Context, ownerID, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.get(ownerID, id); err != nil {
		return err
	}
	delete(r.tasks, id)
	return nil
}

// get assumes the mutex is held.
func (r *MemTaskRepository) get(ownerID, id int) (types.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return types.Task{}, ErrNotFound
	}
	if task.UserID != ownerID {
		return types.Task{}, ErrForbidden
	}
	return task, nil
}
