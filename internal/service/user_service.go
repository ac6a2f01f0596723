package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"student-tracker/internal/domain"
	"student-tracker/internal/repository"
)

// CreateUserInput es el payload de registro de un perfil.
type CreateUserInput struct {
	Email       string
	DisplayName string
	PhotoURL    string
}

// UserService maneja los perfiles de usuario. Son datos públicos en el
// contrato actual; no pasan por el Gateway.
type UserService struct {
	logger *zap.Logger
	repo   repository.UserRepository
}

func NewUserService(logger *zap.Logger, repo repository.UserRepository) *UserService {
	return &UserService{logger: logger, repo: repo}
}

// CreateUser registra un perfil nuevo.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (domain.User, error) {
	if strings.TrimSpace(in.Email) == "" {
		return domain.User{}, ErrValidation
	}
	user := domain.User{
		Email:       in.Email,
		DisplayName: in.DisplayName,
		PhotoURL:    in.PhotoURL,
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	user.ID = id
	return user, nil
}

// ListUsers devuelve todos los perfiles registrados.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}
