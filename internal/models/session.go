package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// status of a single question slot within a session
type QuestionStatus string

const (
	QuestionPending  QuestionStatus = "pending"
	QuestionAnswered QuestionStatus = "answered"
	QuestionReviewed QuestionStatus = "reviewed"
)

// lifecycle state of an interview session
type SessionStatus string

const (
	SessionDraft      SessionStatus = "draft"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// Evaluation is the structured feedback the provider returns for one
// answered question.
type Evaluation struct {
	Score          float64  `bson:"score" json:"score"`
	Feedback       string   `bson:"feedback" json:"feedback"`
	Suggestions    []string `bson:"suggestions" json:"suggestions"`
	StrongPoints   []string `bson:"strong_points" json:"strongPoints"`
	MissedConcepts []string `bson:"missed_concepts" json:"missedConcepts"`
}

// SessionQuestion is one slot in a session: the question content plus the
// candidate's answer and its evaluation once reviewed.
type SessionQuestion struct {
	Question    string         `bson:"question" json:"question"`
	IdealAnswer string         `bson:"ideal_answer" json:"idealAnswer"`
	KeyPoints   []string       `bson:"key_points" json:"keyPoints"`
	Answer      string         `bson:"answer" json:"answer"`
	Evaluation  *Evaluation    `bson:"evaluation,omitempty" json:"evaluation"`
	Status      QuestionStatus `bson:"status" json:"status"`
}

type InterviewSession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      string             `bson:"user" json:"user"`
	Title     string             `bson:"title" json:"title"`
	Role      string             `bson:"role" json:"role"`
	Level     string             `bson:"level" json:"level"`
	Category  string             `bson:"category" json:"category"`
	Questions []SessionQuestion  `bson:"questions" json:"questions"`

	Status    SessionStatus `bson:"status" json:"status"`
	StartTime *time.Time    `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime   *time.Time    `bson:"end_time,omitempty" json:"end_time,omitempty"`

	TotalScore   float64 `bson:"total_score" json:"total_score"`
	AverageScore float64 `bson:"average_score" json:"average_score"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// RecalculateScores recomputes the session totals from reviewed slots and
// completes the session when every slot has been reviewed.
func (s *InterviewSession) RecalculateScores(now time.Time) {
	reviewed := 0
	total := 0.0
	for _, q := range s.Questions {
		if q.Status == QuestionReviewed && q.Evaluation != nil {
			reviewed++
			total += q.Evaluation.Score
		}
	}

	s.TotalScore = total
	if reviewed > 0 {
		s.AverageScore = total / float64(reviewed)
	}

	if reviewed == len(s.Questions) && len(s.Questions) > 0 {
		s.Status = SessionCompleted
		if s.EndTime == nil {
			s.EndTime = &now
		}
	}
}
