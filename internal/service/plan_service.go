package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"student-tracker/internal/domain"
	"student-tracker/internal/repository"
)

// CreateStudyPlanInput es el payload de creación de un plan de estudio.
type CreateStudyPlanInput struct {
	UserEmail string
	Topic     string
	Date      string
	Priority  string
}

// UpdateStudyPlanInput actualiza campos de un plan existente.
type UpdateStudyPlanInput struct {
	UserEmail *string
	Topic     *string
	Date      *string
	Priority  *string
	Completed *bool
}

// StudyPlanService aplica la regla de dueño sobre los planes de estudio.
type StudyPlanService struct {
	repo    repository.StudyPlanRepository
	gateway Gateway
}

func NewStudyPlanService(repo repository.StudyPlanRepository) *StudyPlanService {
	return &StudyPlanService{repo: repo, gateway: NewGateway()}
}

// Create inserta un plan atribuido a la identidad verificada.
func (s *StudyPlanService) Create(ctx context.Context, verified Identity, in CreateStudyPlanInput) (domain.StudyPlan, error) {
	if strings.TrimSpace(in.UserEmail) == "" || strings.TrimSpace(in.Topic) == "" {
		return domain.StudyPlan{}, ErrValidation
	}
	plan := domain.StudyPlan{
		UserEmail: in.UserEmail,
		Topic:     in.Topic,
		Date:      in.Date,
		Priority:  in.Priority,
		CreatedAt: time.Now().UTC(),
	}
	err := s.gateway.Create(ctx, verified, in.UserEmail, func(ctx context.Context) error {
		id, err := s.repo.Insert(ctx, plan)
		if err != nil {
			return err
		}
		plan.ID = id
		return nil
	})
	if err != nil {
		return domain.StudyPlan{}, err
	}
	return plan, nil
}

// ListByOwner lista los planes del email pedido.
func (s *StudyPlanService) ListByOwner(ctx context.Context, verified Identity, email string) ([]domain.StudyPlan, error) {
	if err := s.gateway.ScopeToOwner(verified, email); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, email)
}

// Update modifica un plan existente tras verificar su dueño.
func (s *StudyPlanService) Update(ctx context.Context, verified Identity, rawID string, in UpdateStudyPlanInput) error {
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
			return s.repo.Update(ctx, id, domain.StudyPlanPatch{
				Topic:     in.Topic,
				Date:      in.Date,
				Priority:  in.Priority,
				Completed: in.Completed,
			})
		})
}

// Delete borra un plan existente tras verificar su dueño.
func (s *StudyPlanService) Delete(ctx context.Context, verified Identity, rawID string) error {
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

func (s *StudyPlanService) fetchOwner(id primitive.ObjectID) OwnerFetch {
	return func(ctx context.Context) (string, error) {
		owner, err := s.repo.OwnerOf(ctx, id)
		if err != nil {
			return "", mapStorageErr(err)
		}
		return owner, nil
	}
}
