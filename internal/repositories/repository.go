package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobprep/interview/internal/models"
)

// PoolFilter scopes bank queries to one (role, level, category) pool.
type PoolFilter struct {
	Role       string
	Level      string
	Category   string
	ActiveOnly bool
}

// QuestionRepository is the question bank interface the selector and the
// bank admin endpoints operate against.
type QuestionRepository interface {
	// Count returns the number of questions in the pool.
	Count(ctx context.Context, filter PoolFilter) (int64, error)
	// Find returns questions in the pool, newest first. limit <= 0 means no limit.
	Find(ctx context.Context, filter PoolFilter, limit int64) ([]models.Question, error)
	// FindLeastUsed returns up to limit questions ordered by usage count
	// ascending then last-used ascending (never-used first), skipping offset
	// rows. Questions in exclude are never returned.
	FindLeastUsed(ctx context.Context, filter PoolFilter, limit, offset int64, exclude []primitive.ObjectID) ([]models.Question, error)
	// InsertMany persists new questions and returns them with IDs assigned.
	InsertMany(ctx context.Context, questions []models.Question) ([]models.Question, error)
	// IncrementUsage bumps usage_count and stamps last_used for each id.
	IncrementUsage(ctx context.Context, ids []primitive.ObjectID) error
	// Deactivate soft-removes a question from selection.
	Deactivate(ctx context.Context, id primitive.ObjectID) error
	// DeactivateStale soft-removes never-used questions created before cutoff.
	DeactivateStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// SessionRepository persists interview sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *models.InterviewSession) (*models.InterviewSession, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.InterviewSession, error)
	ListByUser(ctx context.Context, user string) ([]models.InterviewSession, error)
	Update(ctx context.Context, session *models.InterviewSession) error
}
