package llm

import (
	"context"

	"jobprep/interview/internal/models"
)

// Provider is the question source contract. GenerateQuestions must return
// a non-nil error on any failure; a successful call with zero candidates
// is distinct from a failed call.
type Provider interface {
	GenerateQuestions(ctx context.Context, req *models.GenerateRequest) ([]models.Candidate, error)
	EvaluateAnswer(ctx context.Context, req *models.EvaluateRequest) (*models.Evaluation, error)
	GetProviderName() string
}

// ProviderError is an error from an LLM provider.
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Common error codes shared across providers.
const (
	ErrCodeAPIKey          = "invalid_api_key"
	ErrCodeRateLimit       = "rate_limit_exceeded"
	ErrCodeServiceDown     = "service_unavailable"
	ErrCodeInvalidResponse = "invalid_response"
	ErrCodeTimeout         = "timeout"
)
