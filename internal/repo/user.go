package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/store"
)

var (
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")
)

type UserRepo struct { // Репозиторий поверх файловой коллекции
	col *store.Collection[model.User]
}

func NewUserRepo(col *store.Collection[model.User]) *UserRepo { // Конструктор
	return &UserRepo{col: col}
}

func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	return r.col.Load()
}

// Create добавляет пользователя и сохраняет коллекцию целиком.
// Уникальность email проверяется под тем же мьютексом, что и запись.
func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash string) (model.User, error) {
	user := model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := r.col.Update(func(users []model.User) ([]model.User, error) {
		for _, u := range users {
			if u.Email == email {
				return nil, ErrorConflict
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (model.User, error) {
	users, err := r.col.Load()
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users { // Линейный поиск, точное совпадение
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrorNotFound
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (model.User, error) {
	users, err := r.col.Load()
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrorNotFound
}
