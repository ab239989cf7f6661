package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"jobprep/interview/internal/models"
)

// ParseQuestionBatch validates a raw model reply against the expected
// {"questions": [...]} wrapper. It fails closed: markdown fences, a
// missing wrapper, a non-list value, or a candidate without both question
// and ideal-answer text all reject the whole batch.
func ParseQuestionBatch(raw string) ([]models.Candidate, error) {
	var wrapper struct {
		Questions json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &wrapper); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	if wrapper.Questions == nil {
		return nil, fmt.Errorf("response missing questions field")
	}

	var candidates []models.Candidate
	if err := json.Unmarshal(wrapper.Questions, &candidates); err != nil {
		return nil, fmt.Errorf("questions field is not a list of candidates: %w", err)
	}

	for i, c := range candidates {
		if strings.TrimSpace(c.Question) == "" {
			return nil, fmt.Errorf("candidate %d has empty question text", i)
		}
		if strings.TrimSpace(c.IdealAnswer) == "" {
			return nil, fmt.Errorf("candidate %d has empty ideal answer", i)
		}
	}
	return candidates, nil
}

// ParseEvaluation validates a raw model reply as an answer evaluation.
func ParseEvaluation(raw string) (*models.Evaluation, error) {
	var parsed struct {
		Score          *float64 `json:"score"`
		Feedback       string   `json:"feedback"`
		Suggestions    []string `json:"suggestions"`
		StrongPoints   []string `json:"strongPoints"`
		MissedConcepts []string `json:"missedConcepts"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	if parsed.Score == nil {
		return nil, fmt.Errorf("evaluation missing score")
	}
	if *parsed.Score < 0 || *parsed.Score > 10 {
		return nil, fmt.Errorf("evaluation score %v out of range", *parsed.Score)
	}
	if strings.TrimSpace(parsed.Feedback) == "" {
		return nil, fmt.Errorf("evaluation missing feedback")
	}

	return &models.Evaluation{
		Score:          *parsed.Score,
		Feedback:       parsed.Feedback,
		Suggestions:    parsed.Suggestions,
		StrongPoints:   parsed.StrongPoints,
		MissedConcepts: parsed.MissedConcepts,
	}, nil
}
