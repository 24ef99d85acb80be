package store

import (
	"sync"

	"github.com/tasknest/apiserver/types"
)

// DemoTaskStore backs the unauthenticated single-tenant variant. All
// records live in process memory; the map and id counter are guarded
// by one mutex since handlers run concurrently.
type DemoTaskStore struct {
	mu     sync.Mutex
	tasks  map[int]types.DemoTask
	order  []int
	nextID int
}

func NewDemoTaskStore() *DemoTaskStore {
	return &DemoTaskStore{
		tasks:  make(map[int]types.DemoTask),
		nextID: 1,
	}
}

// List returns all tasks in insertion order.
func (s *DemoTaskStore) List() []types.DemoTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]types.DemoTask, 0, len(s.tasks))
	for _, id := range s.order {
		if task, ok := s.tasks[id]; ok {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

func (s *DemoTaskStore) Create(title string) types.DemoTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := types.DemoTask{
		ID:    s.nextID,
		Title: title,
	}
	s.nextID++
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	return task
}

func (s *DemoTaskStore) Get(id int) (types.DemoTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return types.DemoTask{}, ErrNotFound
	}
	return task, nil
}

// Update applies only the non-nil fields of title and completed.
func (s *DemoTaskStore) Update(id int, title *string, completed *bool) (types.DemoTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return types.DemoTask{}, ErrNotFound
	}

	if title != nil {
		task.Title = *title
	}
	if completed != nil {
		task.Completed = *completed
	}

	s.tasks[id] = task
	return task, nil
}

func (s *DemoTaskStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

// DeleteAll clears the entire store. The id counter is not reset.
func (s *DemoTaskStore) DeleteAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make(map[int]types.DemoTask)
	s.order = nil
}
