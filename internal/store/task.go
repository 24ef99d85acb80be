package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tasknest/apiserver/types"
)

// TaskRepository handles persistence for tasks. Every operation is
// scoped to an owning user: a task that exists but belongs to someone
// else yields ErrForbidden, a missing task yields ErrNotFound.
type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context, ownerID int) ([]types.Task, error) {
	const query = `
		SELECT id, title, description, completed, user_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]types.Task, 0)
	for rows.Next() {
		var task types.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Completed,
			&task.UserID,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task types.Task) (types.Task, error) {
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	const query = `
		INSERT INTO tasks (title, description, completed, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Completed,
		task.UserID,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID); err != nil {
		return types.Task{}, err
	}
	return task, nil
}

func (r *TaskRepository) Get(ctx context.Context, ownerID, id int) (types.Task, error) {
	const query = `
		SELECT id, title, description, completed, user_id, created_at, updated_at
		FROM tasks
		WHERE id = $1`
	var task types.Task
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Task{}, ErrNotFound
		}
		return types.Task{}, err
	}
	if task.UserID != ownerID {
		return types.Task{}, ErrForbidden
	}
	return task, nil
}

// Update applies only the non-nil fields of patch and refreshes
// updated_at. The existence check, ownership check, and write run in
// one transaction; concurrent updates are last-writer-wins.
func (r *TaskRepository) Update(ctx context.Context, ownerID, id int, patch types.TaskPatch) (types.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.Task{}, err
	}
	defer tx.Rollback()

	const query = `
		SELECT id, title, description, completed, user_id, created_at, updated_at
		FROM tasks
		WHERE id = $1
		FOR UPDATE`
	var task types.Task
	err = tx.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Task{}, ErrNotFound
		}
		return types.Task{}, err
	}
	if task.UserID != ownerID {
		return types.Task{}, ErrForbidden
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

	const update = `
		UPDATE tasks
		SET title = $1,
			description = $2,
			completed = $3,
			updated_at = $4
		WHERE id = $5`
	if _, err := tx.ExecContext(
		ctx,
		update,
		task.Title,
		task.Description,
		task.Completed,
		task.UpdatedAt,
		task.ID,
	); err != nil {
		return types.Task{}, err
	}

	if err := tx.Commit(); err != nil {
		return types.Task{}, err
	}
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const query = `SELECT user_id FROM tasks WHERE id = $1 FOR UPDATE`
	var taskOwner int
	if err := tx.QueryRowContext(ctx, query, id).Scan(&taskOwner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if taskOwner != ownerID {
		return ErrForbidden
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}
