package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"student-tracker/internal/domain"
)

type mockTransactionRepo struct {
	mu  sync.Mutex
	txs map[primitive.ObjectID]domain.Transaction
}

func newMockTransactionRepo() *mockTransactionRepo {
	return &mockTransactionRepo{txs: make(map[primitive.ObjectID]domain.Transaction)}
}

func (m *mockTransactionRepo) Insert(_ context.Context, tx domain.Transaction) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID()
	tx.ID = id
	m.txs[id] = tx
	return id, nil
}

func (m *mockTransactionRepo) OwnerOf(_ context.Context, id primitive.ObjectID) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.txs[id]
	if !ok {
		return "", mongo.ErrNoDocuments
	}
	return tx.UserEmail, nil
}

func (m *mockTransactionRepo) ListByOwner(_ context.Context, email string) ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Transaction{}
	for _, tx := range m.txs {
		if tx.UserEmail == email {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (m *mockTransactionRepo) Update(_ context.Context, id primitive.ObjectID, patch domain.TransactionPatch) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.txs[id]
	if !ok {
		return 0, nil
	}
	if patch.Amount != nil {
		tx.Amount = *patch.Amount
	}
	if patch.Category != nil {
		tx.Category = *patch.Category
	}
	if patch.Note != nil {
		tx.Note = *patch.Note
	}
	if patch.Date != nil {
		tx.Date = *patch.Date
	}
	m.txs[id] = tx
	return 1, nil
}

func (m *mockTransactionRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.txs[id]; !ok {
		return 0, nil
	}
	delete(m.txs, id)
	return 1, nil
}

func (m *mockTransactionRepo) DeleteByOwner(_ context.Context, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, tx := range m.txs {
		if tx.UserEmail == email {
			delete(m.txs, id)
			n++
		}
	}
	return n, nil
}

func TestTransactionService_CreateWithForeignOwnerPersistsNothing(t *testing.T) {
	repo := newMockTransactionRepo()
	svc := NewTransactionService(repo)
	bob := Identity{Email: "bob@example.com"}

	_, err := svc.Create(context.Background(), bob, CreateTransactionInput{
		UserEmail: "alice@example.com",
		Amount:    50,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.txs) != 0 {
		t.Fatalf("expected no persisted records, got %d", len(repo.txs))
	}
}

func TestTransactionService_UpdateCannotChangeOwner(t *testing.T) {
	repo := newMockTransactionRepo()
	svc := NewTransactionService(repo)
	alice := Identity{Email: "alice@example.com"}

	tx, err := svc.Create(context.Background(), alice, CreateTransactionInput{
		UserEmail: "alice@example.com",
		Amount:    50,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newOwner := "mallory@example.com"
	err = svc.Update(context.Background(), alice, tx.ID.Hex(), UpdateTransactionInput{UserEmail: &newOwner})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	owner, err := repo.OwnerOf(context.Background(), tx.ID)
	if err != nil {
		t.Fatalf("owner of: %v", err)
	}
	if owner != "alice@example.com" {
		t.Fatalf("stored owner changed to %q", owner)
	}
}

func TestTransactionService_UpdateWithSameOwnerInPayloadIsAllowed(t *testing.T) {
	repo := newMockTransactionRepo()
	svc := NewTransactionService(repo)
	alice := Identity{Email: "alice@example.com"}

	tx, err := svc.Create(context.Background(), alice, CreateTransactionInput{
		UserEmail: "alice@example.com",
		Amount:    50,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sameOwner := "alice@example.com"
	amount := 75.0
	err = svc.Update(context.Background(), alice, tx.ID.Hex(), UpdateTransactionInput{
		UserEmail: &sameOwner,
		Amount:    &amount,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := repo.txs[tx.ID].Amount; got != 75 {
		t.Fatalf("expected amount 75, got %v", got)
	}
}

func TestTransactionService_DeleteMissingIDIsNotFound(t *testing.T) {
	svc := NewTransactionService(newMockTransactionRepo())
	alice := Identity{Email: "alice@example.com"}

	err := svc.Delete(context.Background(), alice, primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTransactionService_MalformedIDIsValidationError(t *testing.T) {
	svc := NewTransactionService(newMockTransactionRepo())
	alice := Identity{Email: "alice@example.com"}

	for _, raw := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if err := svc.Delete(context.Background(), alice, raw); !errors.Is(err, ErrValidation) {
			t.Fatalf("raw %q: expected ErrValidation, got %v", raw, err)
		}
	}
}

func TestTransactionService_PurgeRequiresMatchingScope(t *testing.T) {
	repo := newMockTransactionRepo()
	svc := NewTransactionService(repo)
	alice := Identity{Email: "alice@example.com"}

	if _, err := svc.Create(context.Background(), alice, CreateTransactionInput{UserEmail: "alice@example.com", Amount: 10}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Purge(context.Background(), alice, "bob@example.com"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.txs) != 1 {
		t.Fatal("purge with mismatched scope deleted records")
	}

	deleted, err := svc.Purge(context.Background(), alice, "alice@example.com")
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if deleted != 1 || len(repo.txs) != 0 {
		t.Fatalf("expected 1 deleted, got %d (remaining %d)", deleted, len(repo.txs))
	}
}

func TestTransactionService_ListScopedToVerifiedIdentity(t *testing.T) {
	repo := newMockTransactionRepo()
	svc := NewTransactionService(repo)
	alice := Identity{Email: "alice@example.com"}

	if _, err := svc.ListByOwner(context.Background(), alice, "bob@example.com"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if _, err := svc.Create(context.Background(), alice, CreateTransactionInput{UserEmail: "alice@example.com", Amount: 10}); err != nil {
		t.Fatalf("create: %v", err)
	}
	txs, err := svc.ListByOwner(context.Background(), alice, "alice@example.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
}
