package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/store"
)

type ProjectRepo struct {
	col *store.Collection[model.Project]
}

func NewProjectRepo(col *store.Collection[model.Project]) *ProjectRepo {
	return &ProjectRepo{col: col}
}

func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	return r.col.Load()
}

func (r *ProjectRepo) Create(ctx context.Context, p model.Project) (model.Project, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	err := r.col.Update(func(projects []model.Project) ([]model.Project, error) {
		return append(projects, p), nil
	})
	if err != nil {
		return model.Project{}, err
	}
	return p, nil
}
