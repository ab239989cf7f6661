package models

import (
	"testing"
	"time"
)

func reviewedSlot(score float64) SessionQuestion {
	return SessionQuestion{
		Question:   "q",
		Status:     QuestionReviewed,
		Evaluation: &Evaluation{Score: score, Feedback: "fb"},
	}
}

func TestRecalculateScoresPartialReview(t *testing.T) {
	s := InterviewSession{
		Status: SessionInProgress,
		Questions: []SessionQuestion{
			reviewedSlot(6),
			reviewedSlot(8),
			{Question: "q", Status: QuestionPending},
		},
	}

	s.RecalculateScores(time.Now())

	if s.TotalScore != 14 {
		t.Fatalf("expected total 14, got %v", s.TotalScore)
	}
	if s.AverageScore != 7 {
		t.Fatalf("expected average 7, got %v", s.AverageScore)
	}
	if s.Status != SessionInProgress {
		t.Fatalf("session completed with pending slots: %s", s.Status)
	}
	if s.EndTime != nil {
		t.Fatal("end time set before completion")
	}
}

func TestRecalculateScoresCompletesSession(t *testing.T) {
	now := time.Now().UTC()
	s := InterviewSession{
		Status: SessionInProgress,
		Questions: []SessionQuestion{
			reviewedSlot(5),
			reviewedSlot(9),
		},
	}

	s.RecalculateScores(now)

	if s.Status != SessionCompleted {
		t.Fatalf("expected completed session, got %s", s.Status)
	}
	if s.EndTime == nil || !s.EndTime.Equal(now) {
		t.Fatalf("end time not set to completion instant: %v", s.EndTime)
	}
}

func TestRecalculateScoresKeepsFirstEndTime(t *testing.T) {
	first := time.Now().UTC().Add(-time.Minute)
	s := InterviewSession{
		Status:    SessionCompleted,
		EndTime:   &first,
		Questions: []SessionQuestion{reviewedSlot(10)},
	}

	s.RecalculateScores(time.Now().UTC())

	if !s.EndTime.Equal(first) {
		t.Fatalf("end time rewritten on recalculation: %v", s.EndTime)
	}
}

func TestRecalculateScoresEmptySession(t *testing.T) {
	s := InterviewSession{Status: SessionDraft}
	s.RecalculateScores(time.Now())

	if s.Status != SessionDraft {
		t.Fatalf("empty session must not complete: %s", s.Status)
	}
	if s.TotalScore != 0 || s.AverageScore != 0 {
		t.Fatalf("scores computed for empty session: %v / %v", s.TotalScore, s.AverageScore)
	}
}

func TestRecalculateScoresIgnoresUnreviewedAnswers(t *testing.T) {
	s := InterviewSession{
		Questions: []SessionQuestion{
			reviewedSlot(4),
			{Question: "q", Answer: "a", Status: QuestionAnswered},
		},
	}

	s.RecalculateScores(time.Now())

	if s.TotalScore != 4 || s.AverageScore != 4 {
		t.Fatalf("answered-but-unreviewed slot counted: %v / %v", s.TotalScore, s.AverageScore)
	}
}
