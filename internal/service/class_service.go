package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"student-tracker/internal/domain"
	"student-tracker/internal/repository"
)

// CreateClassInput es el payload de creación de una clase.
type CreateClassInput struct {
	UserEmail  string
	Title      string
	Subject    string
	Instructor string
	Schedule   string
}

// UpdateClassInput actualiza campos de una clase existente.
type UpdateClassInput struct {
	UserEmail  *string
	Title      *string
	Subject    *string
	Instructor *string
	Schedule   *string
}

// ClassService aplica la regla de dueño sobre las clases.
type ClassService struct {
	repo    repository.ClassRepository
	gateway Gateway
}

func NewClassService(repo repository.ClassRepository) *ClassService {
	return &ClassService{repo: repo, gateway: NewGateway()}
}

// Create inserta una clase atribuida a la identidad verificada.
func (s *ClassService) Create(ctx context.Context, verified Identity, in CreateClassInput) (domain.Class, error) {
	if strings.TrimSpace(in.UserEmail) == "" || strings.TrimSpace(in.Title) == "" {
		return domain.Class{}, ErrValidation
	}
	class := domain.Class{
		UserEmail:  in.UserEmail,
		Title:      in.Title,
		Subject:    in.Subject,
		Instructor: in.Instructor,
		Schedule:   in.Schedule,
		CreatedAt:  time.Now().UTC(),
	}
	err := s.gateway.Create(ctx, verified, in.UserEmail, func(ctx context.Context) error {
		id, err := s.repo.Insert(ctx, class)
		if err != nil {
			return err
		}
		class.ID = id
		return nil
	})
	if err != nil {
		return domain.Class{}, err
	}
	return class, nil
}

// ListByOwner lista las clases del email pedido.
func (s *ClassService) ListByOwner(ctx context.Context, verified Identity, email string) ([]domain.Class, error) {
	if err := s.gateway.ScopeToOwner(verified, email); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, email)
}

// Update modifica una clase existente tras verificar su dueño.
func (s *ClassService) Update(ctx context.Context, verified Identity, rawID string, in UpdateClassInput) error {
	id, err := parseResourceID(rawID)
	if err != nil {
		return err
	}
	return s.gateway.Mutate(ctx, verified, ActionWrite,
		s.fetchOwner(id),
		func(ctx context.Context) (int64, error) {
			if in.UserEmail != nil && *in.UserEmail != verified.Email {
				return 0, ErrForbidden
			}
			return s.repo.Update(ctx, id, domain.ClassPatch{
				Title:      in.Title,
				Subject:    in.Subject,
				Instructor: in.Instructor,
				Schedule:   in.Schedule,
			})
		})
}

// Delete borra una clase existente tras verificar su dueño.
func (s *ClassService) Delete(ctx context.Context, verified Identity, rawID string) error {
	id, err := parseResourceID(rawID)
	if err != nil {
		return err
	}
	return s.gateway.Mutate(ctx, verified, ActionDelete,
		s.fetchOwner(id),
		func(ctx context.Context) (int64, error) {
			return s.repo.Delete(ctx, id)
		})
}

func (s *ClassService) fetchOwner(id primitive.ObjectID) OwnerFetch {
	return func(ctx context.Context) (string, error) {
		owner, err := s.repo.OwnerOf(ctx, id)
		if err != nil {
			return "", mapStorageErr(err)
		}
		return owner, nil
	}
}
