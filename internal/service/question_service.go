package service

import (
	"context"
	"strings"
	"time"

	"student-tracker/internal/domain"
	"student-tracker/internal/repository"
)

// SubmitQuestionInput es el payload de envío de una pregunta al banco.
type SubmitQuestionInput struct {
	UserEmail string
	Text      string
	Options   []string
	Answer    string
	Category  string
}

// QuestionService sirve el banco público sin credencial y aplica la
// regla de dueño sobre las preguntas enviadas por usuarios.
type QuestionService struct {
	repo    repository.QuestionRepository
	gateway Gateway
}

func NewQuestionService(repo repository.QuestionRepository) *QuestionService {
	return &QuestionService{repo: repo, gateway: NewGateway()}
}

// ListBank lista el banco público, opcionalmente filtrado por categoría.
// No requiere sesión: son datos sin dueño.
func (s *QuestionService) ListBank(ctx context.Context, category string) ([]domain.Question, error) {
	return s.repo.ListBank(ctx, category)
}

// Submit inserta una pregunta enviada, atribuida a la identidad verificada.
func (s *QuestionService) Submit(ctx context.Context, verified Identity, in SubmitQuestionInput) (domain.Question, error) {
	if strings.TrimSpace(in.UserEmail) == "" || strings.TrimSpace(in.Text) == "" || strings.TrimSpace(in.Answer) == "" {
		return domain.Question{}, ErrValidation
	}
	if len(in.Options) != 4 {
		return domain.Question{}, ErrValidation
	}
	q := domain.Question{
		UserEmail: in.UserEmail,
		Text:      in.Text,
		Options:   in.Options,
		Answer:    in.Answer,
		Category:  in.Category,
		CreatedAt: time.Now().UTC(),
	}
	err := s.gateway.Create(ctx, verified, in.UserEmail, func(ctx context.Context) error {
		id, err := s.repo.InsertSubmitted(ctx, q)
		if err != nil {
			return err
		}
		q.ID = id
		return nil
	})
	if err != nil {
		return domain.Question{}, err
	}
	return q, nil
}

// ListSubmitted lista las preguntas enviadas por el email pedido.
func (s *QuestionService) ListSubmitted(ctx context.Context, verified Identity, email string) ([]domain.Question, error) {
	if err := s.gateway.ScopeToOwner(verified, email); err != nil {
		return nil, err
	}
	return s.repo.ListSubmittedByOwner(ctx, email)
}

// DeleteSubmitted borra una pregunta enviada tras verificar su dueño.
func (s *QuestionService) DeleteSubmitted(ctx context.Context, verified Identity, rawID string) error {
	id, err := parseResourceID(rawID)
	if err != nil {
		return err
	}
	return s.gateway.Mutate(ctx, verified, ActionDelete,
		func(ctx context.Context) (string, error) {
			owner, err := s.repo.SubmittedOwnerOf(ctx, id)
			if err != nil {
				return "", mapStorageErr(err)
			}
			return owner, nil
		},
		func(ctx context.Context) (int64, error) {
			return s.repo.DeleteSubmitted(ctx, id)
		})
}
