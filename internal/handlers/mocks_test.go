package handlers

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobprep/interview/internal/models"
	"jobprep/interview/internal/repositories"
)

type mockSelector struct {
	selectFn func(ctx context.Context, role, level, category string) ([]models.Candidate, error)
}

func (m *mockSelector) SelectQuestions(ctx context.Context, role, level, category string) ([]models.Candidate, error) {
	return m.selectFn(ctx, role, level, category)
}

type mockProvider struct {
	generateFn func(ctx context.Context, req *models.GenerateRequest) ([]models.Candidate, error)
	evaluateFn func(ctx context.Context, req *models.EvaluateRequest) (*models.Evaluation, error)
}

func (m *mockProvider) GenerateQuestions(ctx context.Context, req *models.GenerateRequest) ([]models.Candidate, error) {
	if m.generateFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.generateFn(ctx, req)
}

func (m *mockProvider) EvaluateAnswer(ctx context.Context, req *models.EvaluateRequest) (*models.Evaluation, error) {
	if m.evaluateFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.evaluateFn(ctx, req)
}

func (m *mockProvider) GetProviderName() string { return "mock" }

// in-memory session store
type mockSessions struct {
	sessions  map[primitive.ObjectID]*models.InterviewSession
	createErr error
	updateErr error
}

func newMockSessions() *mockSessions {
	return &mockSessions{sessions: make(map[primitive.ObjectID]*models.InterviewSession)}
}

func (m *mockSessions) Create(ctx context.Context, session *models.InterviewSession) (*models.InterviewSession, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	session.ID = primitive.NewObjectID()
	session.CreatedAt = time.Now().UTC()
	session.UpdatedAt = session.CreatedAt
	m.sessions[session.ID] = session
	return session, nil
}

func (m *mockSessions) GetByID(ctx context.Context, id primitive.ObjectID) (*models.InterviewSession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, errors.New("session not found")
	}
	copied := *session
	return &copied, nil
}

func (m *mockSessions) ListByUser(ctx context.Context, user string) ([]models.InterviewSession, error) {
	var out []models.InterviewSession
	for _, s := range m.sessions {
		if s.User == user {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSessions) Update(ctx context.Context, session *models.InterviewSession) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.sessions[session.ID]; !ok {
		return errors.New("session not found")
	}
	copied := *session
	m.sessions[session.ID] = &copied
	return nil
}

type mockBank struct {
	questions     []models.Question
	countErr      error
	findErr       error
	deactivateErr error
}

func (m *mockBank) Count(ctx context.Context, filter repositories.PoolFilter) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.questions)), nil
}

func (m *mockBank) Find(ctx context.Context, filter repositories.PoolFilter, limit int64) ([]models.Question, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.questions, nil
}

func (m *mockBank) FindLeastUsed(ctx context.Context, filter repositories.PoolFilter, limit, offset int64, exclude []primitive.ObjectID) ([]models.Question, error) {
	return nil, nil
}

func (m *mockBank) InsertMany(ctx context.Context, questions []models.Question) ([]models.Question, error) {
	m.questions = append(m.questions, questions...)
	return questions, nil
}

func (m *mockBank) IncrementUsage(ctx context.Context, ids []primitive.ObjectID) error { return nil }

func (m *mockBank) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	if m.deactivateErr != nil {
		return m.deactivateErr
	}
	for i := range m.questions {
		if m.questions[i].ID == id {
			m.questions[i].IsActive = false
			return nil
		}
	}
	return errors.New("question not found")
}

func (m *mockBank) DeactivateStale(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}
