package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"student-tracker/internal/domain"
	"student-tracker/internal/repository"
)

// CreateTransactionInput es el payload de creación de un movimiento.
// UserEmail es el dueño declarado; debe coincidir con la identidad
// verificada.
type CreateTransactionInput struct {
	UserEmail string
	Amount    float64
	Category  string
	Note      string
	Date      string
}

// UpdateTransactionInput actualiza campos de un movimiento existente.
// UserEmail no nulo con un valor distinto al dueño almacenado es un
// intento de reasignar el recurso y se rechaza.
type UpdateTransactionInput struct {
	UserEmail *string
	Amount    *float64
	Category  *string
	Note      *string
	Date      *string
}

// TransactionService aplica la regla de dueño sobre los movimientos.
type TransactionService struct {
	repo    repository.TransactionRepository
	gateway Gateway
}

func NewTransactionService(repo repository.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo, gateway: NewGateway()}
}

// Create inserta un movimiento atribuido a la identidad verificada.
func (s *TransactionService) Create(ctx context.Context, verified Identity, in CreateTransactionInput) (domain.Transaction, error) {
	if strings.TrimSpace(in.UserEmail) == "" {
		return domain.Transaction{}, ErrValidation
	}
	tx := domain.Transaction{
		UserEmail: in.UserEmail,
		Amount:    in.Amount,
		Category:  in.Category,
		Note:      in.Note,
		Date:      in.Date,
		CreatedAt: time.Now().UTC(),
	}
	err := s.gateway.Create(ctx, verified, in.UserEmail, func(ctx context.Context) error {
		id, err := s.repo.Insert(ctx, tx)
		if err != nil {
			return err
		}
		tx.ID = id
		return nil
	})
	if err != nil {
		return domain.Transaction{}, err
	}
	return tx, nil
}

// ListByOwner lista los movimientos del email pedido, que debe ser el
// de la identidad verificada.
func (s *TransactionService) ListByOwner(ctx context.Context, verified Identity, email string) ([]domain.Transaction, error) {
	if err := s.gateway.ScopeToOwner(verified, email); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, email)
}

// Update modifica un movimiento existente tras verificar su dueño.
func (s *TransactionService) Update(ctx context.Context, verified Identity, rawID string, in UpdateTransactionInput) error {
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
			return s.repo.Update(ctx, id, domain.TransactionPatch{
				Amount:   in.Amount,
				Category: in.Category,
				Note:     in.Note,
				Date:     in.Date,
			})
		})
}

// Delete borra un movimiento existente tras verificar su dueño.
func (s *TransactionService) Delete(ctx context.Context, verified Identity, rawID string) error {
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

// Purge borra todos los movimientos del email pedido, que debe ser el
// de la identidad verificada.
func (s *TransactionService) Purge(ctx context.Context, verified Identity, email string) (int64, error) {
	if err := s.gateway.ScopeToOwner(verified, email); err != nil {
		return 0, err
	}
	return s.repo.DeleteByOwner(ctx, email)
}

func (s *TransactionService) fetchOwner(id primitive.ObjectID) OwnerFetch {
	return func(ctx context.Context) (string, error) {
		owner, err := s.repo.OwnerOf(ctx, id)
		if err != nil {
			return "", mapStorageErr(err)
		}
		return owner, nil
	}
}
