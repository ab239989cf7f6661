package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question is one entry in the question bank. Questions are scoped to a
// (role, level, category) pool and are never hard-deleted; deactivation
// via IsActive is the only removal path.
type Question struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Question    string             `bson:"question" json:"question"`
	IdealAnswer string             `bson:"ideal_answer" json:"idealAnswer"`
	KeyPoints   []string           `bson:"key_points" json:"keyPoints"`
	Role        string             `bson:"role" json:"role"`
	Level       string             `bson:"level" json:"level"`
	Category    string             `bson:"category" json:"category"`

	UsageCount int        `bson:"usage_count" json:"usage_count"`
	LastUsed   *time.Time `bson:"last_used,omitempty" json:"last_used,omitempty"`
	IsActive   bool       `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Candidate is a not-yet-persisted question proposal returned by the
// question source for one generation call. The JSON tags match the batch
// format the model is instructed to emit.
type Candidate struct {
	Question    string   `json:"question"`
	IdealAnswer string   `json:"idealAnswer"`
	KeyPoints   []string `json:"keyPoints"`
}

// ToQuestion promotes a candidate into a bank question for the given pool.
func (c Candidate) ToQuestion(role, level, category string, now time.Time) Question {
	return Question{
		Question:    c.Question,
		IdealAnswer: c.IdealAnswer,
		KeyPoints:   c.KeyPoints,
		Role:        role,
		Level:       level,
		Category:    category,
		UsageCount:  0,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AsCandidate strips usage metadata from a bank question for the
// caller-facing session question set.
func (q Question) AsCandidate() Candidate {
	return Candidate{
		Question:    q.Question,
		IdealAnswer: q.IdealAnswer,
		KeyPoints:   q.KeyPoints,
	}
}
