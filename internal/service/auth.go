package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BuzzLyutic/taskboard-api/internal/auth"
	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	users  repo.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users repo.UserRepository, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: ttl}
}

// Register создает пользователя и сразу выдает ему токен
func (s *AuthService) Register(ctx context.Context, name, email, password string) (model.User, string, error) {
	if err := s.validate(name, email, password); err != nil {
		return model.User{}, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return model.User{}, "", err
	}

	user, err := s.users.Create(ctx, name, email, hash)
	if errors.Is(err, repo.ErrorConflict) {
		return model.User{}, "", ErrEmailTaken
	}
	if err != nil {
		return model.User{}, "", err
	}

	token, err := auth.GenerateToken(user, s.secret, s.ttl)
	if err != nil {
		return model.User{}, "", err
	}
	return user, token, nil
}

// Login отвечает одной и той же ошибкой на неизвестный email и на неверный
// пароль, чтобы не раскрывать, какие адреса зарегистрированы.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrorNotFound) {
		return model.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return model.User{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user, s.secret, s.ttl)
	if err != nil {
		return model.User{}, "", err
	}
	return user, token, nil
}

func (s *AuthService) Me(ctx context.Context, id string) (model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) validate(name, email, password string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return ErrValidation
	}
	return nil
}
