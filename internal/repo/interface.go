package repo

import (
	"context"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
)

// UserRepository определяет интерфейс для работы с пользователями
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, name, email, passwordHash string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id string) (model.User, error)
}

type ProjectRepository interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, p model.Project) (model.Project, error)
}

type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, t model.Task) (model.Task, error)
}
