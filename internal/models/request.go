package models

import "strings"

type CreateInterviewRequest struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	Level     string `json:"level"`
	Category  string `json:"category"`
	RequestID string `json:"request_id"`
}

// implements the Validator interface used by the validation middleware
func (r *CreateInterviewRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return &ErrorResponse{Code: "missing_user", Message: "user_id is required"}
	}
	if r.Role == "" {
		return &ErrorResponse{Code: "missing_role", Message: "role is required"}
	}
	if !ValidRoles[r.Role] {
		return &ErrorResponse{Code: "invalid_role", Message: "Role must be one of: Software Developer, QA Engineer, Business Analyst, Project Manager"}
	}
	if r.Level == "" {
		return &ErrorResponse{Code: "missing_level", Message: "level is required"}
	}
	if !ValidLevels[r.Level] {
		return &ErrorResponse{Code: "invalid_level", Message: "Level must be one of: Intern, Junior, Senior, Lead, Manager"}
	}
	if r.Category == "" {
		return &ErrorResponse{Code: "missing_category", Message: "category is required"}
	}
	if !ValidCategories[r.Category] {
		return &ErrorResponse{Code: "invalid_category", Message: "Category must be one of: Technical, Behavioral, System Design, Problem Solving"}
	}
	return nil
}

type EvaluateAnswerRequest struct {
	QuestionIndex *int   `json:"question_index"`
	Answer        string `json:"answer"`
	RequestID     string `json:"request_id"`
}

func (r *EvaluateAnswerRequest) Validate() error {
	if r.QuestionIndex == nil {
		return &ErrorResponse{Code: "missing_question_index", Message: "question_index is required"}
	}
	if *r.QuestionIndex < 0 {
		return &ErrorResponse{Code: "invalid_question_index", Message: "question_index must be non-negative"}
	}
	if strings.TrimSpace(r.Answer) == "" {
		return &ErrorResponse{Code: "missing_answer", Message: "answer is required"}
	}
	return nil
}

// GenerateRequest carries one generation call to the question source.
type GenerateRequest struct {
	Role        string
	Level       string
	Category    string
	FocusTopics []string
	AvoidList   []string
	BatchSize   int
}

// EvaluateRequest carries one answer-evaluation call to the provider.
type EvaluateRequest struct {
	Role      string
	Level     string
	Category  string
	Question  string
	KeyPoints []string
	Answer    string
}
