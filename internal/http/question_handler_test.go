package http

import (
	"context"
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

type mockQuestionRepo struct {
	mu        sync.Mutex
	bank      []domain.Question
	submitted map[primitive.ObjectID]domain.Question
}

func newMockQuestionRepo() *mockQuestionRepo {
	return &mockQuestionRepo{submitted: make(map[primitive.ObjectID]domain.Question)}
}

func (m *mockQuestionRepo) ListBank(_ context.Context, category string) ([]domain.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Question{}
	for _, q := range m.bank {
		if category == "" || q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *mockQuestionRepo) InsertSubmitted(_ context.Context, q domain.Question) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID()
	q.ID = id
	m.submitted[id] = q
	return id, nil
}

func (m *mockQuestionRepo) SubmittedOwnerOf(_ context.Context, id primitive.ObjectID) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.submitted[id]
	if !ok {
		return "", mongo.ErrNoDocuments
	}
	return q.UserEmail, nil
}

func (m *mockQuestionRepo) ListSubmittedByOwner(_ context.Context, email string) ([]domain.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Question{}
	for _, q := range m.submitted {
		if q.UserEmail == email {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *mockQuestionRepo) DeleteSubmitted(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.submitted[id]; !ok {
		return 0, nil
	}
	delete(m.submitted, id)
	return 1, nil
}

func TestQuestionEndpoints_BankIsPublic(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := newMockQuestionRepo()
	repo.bank = []domain.Question{
		{Text: "2+2?", Options: []string{"3", "4", "5", "6"}, Answer: "4", Category: "math"},
	}
	h := NewQuestionHandler(zap.NewNop(), service.NewQuestionService(repo))

	r := gin.New()
	r.GET("/questions", h.ListBank)

	// El banco se sirve sin credencial alguna.
	req := httptest.NewRequest(http.MethodGet, "/questions?category=math", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestQuestionEndpoints_SubmittedRequiresOwnership(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sessions := service.NewSessionService("secret", time.Hour)
	repo := newMockQuestionRepo()
	h := NewQuestionHandler(zap.NewNop(), service.NewQuestionService(repo))

	r := gin.New()
	authed := r.Group("", SessionAuthMiddleware(zap.NewNop(), sessions))
	authed.POST("/my-questions", h.SubmitQuestion)
	authed.DELETE("/my-questions/:id", h.DeleteSubmitted)

	id, err := repo.InsertSubmitted(context.Background(), domain.Question{
		UserEmail: "alice@example.com",
		Text:      "capital of France?",
		Options:   []string{"Paris", "Lyon", "Nice", "Lille"},
		Answer:    "Paris",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	token, err := sessions.Issue("bob@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodDelete, "/my-questions/"+id.Hex(), nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if len(repo.submitted) != 1 {
		t.Fatal("foreign delete removed the record")
	}
}
