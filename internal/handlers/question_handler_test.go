package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"jobprep/interview/internal/models"
)

func newQuestionRouter(h *QuestionHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api/v1/questions", func(r chi.Router) {
		r.Get("/", h.ListHandler)
		r.Delete("/{id}", h.DeactivateHandler)
	})
	return r
}

func bankWith(n int) *mockBank {
	bank := &mockBank{}
	now := time.Now().UTC()
	for i := 0; i < n; i++ {
		bank.questions = append(bank.questions, models.Question{
			ID:          primitive.NewObjectID(),
			Question:    "Stored question",
			IdealAnswer: "Stored answer",
			Role:        "Software Developer",
			Level:       "Junior",
			Category:    "Technical",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return bank
}

func TestListQuestions(t *testing.T) {
	h := NewQuestionHandler(bankWith(3), zap.NewNop())
	router := newQuestionRouter(h)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/questions/?role=Software+Developer&level=Junior&category=Technical", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp models.QuestionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 3 || len(resp.Items) != 3 {
		t.Fatalf("expected 3 questions, got total=%d items=%d", resp.Total, len(resp.Items))
	}
}

func TestListQuestionsRejectsInvalidPool(t *testing.T) {
	h := NewQuestionHandler(bankWith(3), zap.NewNop())
	router := newQuestionRouter(h)

	paths := []string{
		"/api/v1/questions/",
		"/api/v1/questions/?role=Astronaut&level=Junior&category=Technical",
		"/api/v1/questions/?role=Software+Developer&level=Junior&category=Trivia",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", path, rec.Code)
		}
	}
}

func TestListQuestionsStoreFailure(t *testing.T) {
	bank := bankWith(1)
	bank.countErr = errors.New("connection reset")
	h := NewQuestionHandler(bank, zap.NewNop())
	router := newQuestionRouter(h)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/questions/?role=Software+Developer&level=Junior&category=Technical", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestDeactivateQuestion(t *testing.T) {
	bank := bankWith(2)
	h := NewQuestionHandler(bank, zap.NewNop())
	router := newQuestionRouter(h)

	target := bank.questions[0].ID
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/questions/"+target.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if bank.questions[0].IsActive {
		t.Fatal("question still active after deactivation")
	}
	if !bank.questions[1].IsActive {
		t.Fatal("unrelated question deactivated")
	}
}

func TestDeactivateQuestionErrors(t *testing.T) {
	h := NewQuestionHandler(bankWith(1), zap.NewNop())
	router := newQuestionRouter(h)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/questions/not-an-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/questions/"+primitive.NewObjectID().Hex(), nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", rec.Code)
	}
}
