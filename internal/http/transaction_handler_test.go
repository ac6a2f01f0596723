package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"student-tracker/internal/domain"
	"student-tracker/internal/service"
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

type txTestEnv struct {
	router   *gin.Engine
	sessions *service.SessionService
	repo     *mockTransactionRepo
}

func newTxTestEnv(t *testing.T) *txTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := service.NewSessionService("secret", time.Hour)
	repo := newMockTransactionRepo()
	h := NewTransactionHandler(zap.NewNop(), service.NewTransactionService(repo))

	r := gin.New()
	authed := r.Group("", SessionAuthMiddleware(zap.NewNop(), sessions))
	authed.GET("/transactions", h.ListTransactions)
	authed.POST("/transactions", h.CreateTransaction)
	authed.PATCH("/transactions/:id", h.UpdateTransaction)
	authed.DELETE("/transactions/:id", h.DeleteTransaction)
	authed.DELETE("/transactions", h.PurgeTransactions)

	return &txTestEnv{router: r, sessions: sessions, repo: repo}
}

func (e *txTestEnv) do(t *testing.T, method, path, email string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if email != "" {
		token, err := e.sessions.Issue(email)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// Escenario completo: alice crea, bob no puede borrar, alice sí, y el
// segundo borrado de alice ya no encuentra el recurso.
func TestTransactionEndpoints_OwnershipScenario(t *testing.T) {
	env := newTxTestEnv(t)

	rec := env.do(t, http.MethodPost, "/transactions", "alice@example.com",
		`{"userEmail":"alice@example.com","amount":50}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created domain.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("create response missing identifier")
	}

	path := fmt.Sprintf("/transactions/%s", created.ID.Hex())

	if rec := env.do(t, http.MethodDelete, path, "bob@example.com", ""); rec.Code != http.StatusForbidden {
		t.Fatalf("bob delete: expected 403, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodDelete, path, "alice@example.com", ""); rec.Code != http.StatusOK {
		t.Fatalf("alice delete: expected 200, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodDelete, path, "alice@example.com", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("alice repeat delete: expected 404, got %d", rec.Code)
	}
}

func TestTransactionEndpoints_RequireCredentialBeforeOwnership(t *testing.T) {
	env := newTxTestEnv(t)

	// Sin cookie y con cookie basura el corte es idéntico: 401 antes
	// de cualquier lógica de dueño.
	if rec := env.do(t, http.MethodGet, "/transactions?email=alice@example.com", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no cookie: expected 401, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodDelete, "/transactions/abc", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage cookie: expected 401, got %d", rec.Code)
	}
}

func TestTransactionEndpoints_CreateForeignOwnerForbidden(t *testing.T) {
	env := newTxTestEnv(t)

	rec := env.do(t, http.MethodPost, "/transactions", "bob@example.com",
		`{"userEmail":"alice@example.com","amount":50}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if len(env.repo.txs) != 0 {
		t.Fatal("forbidden create persisted a record")
	}
}

func TestTransactionEndpoints_ListScopeMismatchForbidden(t *testing.T) {
	env := newTxTestEnv(t)

	rec := env.do(t, http.MethodGet, "/transactions?email=bob@example.com", "alice@example.com", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestTransactionEndpoints_MalformedIDIsBadRequest(t *testing.T) {
	env := newTxTestEnv(t)

	rec := env.do(t, http.MethodDelete, "/transactions/not-an-object-id", "alice@example.com", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionEndpoints_BulkPurgeScopedToIdentity(t *testing.T) {
	env := newTxTestEnv(t)

	rec := env.do(t, http.MethodPost, "/transactions", "alice@example.com",
		`{"userEmail":"alice@example.com","amount":10}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rec.Code)
	}

	if rec := env.do(t, http.MethodDelete, "/transactions?email=alice@example.com", "bob@example.com", ""); rec.Code != http.StatusForbidden {
		t.Fatalf("bob purge: expected 403, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodDelete, "/transactions?email=alice@example.com", "alice@example.com", ""); rec.Code != http.StatusOK {
		t.Fatalf("alice purge: expected 200, got %d", rec.Code)
	}
	if len(env.repo.txs) != 0 {
		t.Fatal("purge left records behind")
	}
}

func TestTransactionEndpoints_UpdateOwnerChangeRejected(t *testing.T) {
	env := newTxTestEnv(t)

	rec := env.do(t, http.MethodPost, "/transactions", "alice@example.com",
		`{"userEmail":"alice@example.com","amount":50}`)
	var created domain.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	path := fmt.Sprintf("/transactions/%s", created.ID.Hex())
	rec = env.do(t, http.MethodPatch, path, "alice@example.com", `{"userEmail":"mallory@example.com"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if env.repo.txs[created.ID].UserEmail != "alice@example.com" {
		t.Fatal("stored owner changed")
	}
}
