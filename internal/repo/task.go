package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/store"
)

type TaskRepo struct {
	col *store.Collection[model.Task]
}

func NewTaskRepo(col *store.Collection[model.Task]) *TaskRepo {
	return &TaskRepo{col: col}
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	return r.col.Load()
}

// Create заполняет пропущенные поля значениями по умолчанию.
// projectId не сверяется с коллекцией проектов — ссылочная целостность
// здесь сознательно не поддерживается.
func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	if t.Priority == "" {
		t.Priority = model.DefaultTaskPriority
	}
	if t.Status == "" {
		t.Status = model.DefaultTaskStatus
	}

	err := r.col.Update(func(tasks []model.Task) ([]model.Task, error) {
		return append(tasks, t), nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}
