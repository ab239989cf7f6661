package gemini

import (
	"context"

	"google.golang.org/genai"

	"jobprep/interview/internal/llm"
	"jobprep/interview/internal/models"
	"jobprep/interview/internal/prompts"
)

// Client is the Gemini question source.
type Client struct {
	client  *genai.Client
	config  *Config
	prompts *prompts.Manager
}

func NewClient(config *Config, promptManager *prompts.Manager) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client:  client,
		config:  config,
		prompts: promptManager,
	}, nil
}

// GenerateQuestions asks the model for a batch of candidate questions and
// validates the reply strictly against the expected batch shape.
func (c *Client) GenerateQuestions(ctx context.Context, req *models.GenerateRequest) ([]models.Candidate, error) {
	prompt, err := c.prompts.BuildGeneratePrompt(req)
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "Failed to build generation prompt",
			Err:      err,
		}
	}

	text, err := c.generateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	candidates, err := llm.ParseQuestionBatch(text)
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "Model returned a malformed question batch",
			Err:      err,
		}
	}
	return candidates, nil
}

// EvaluateAnswer asks the model to score a candidate's answer.
func (c *Client) EvaluateAnswer(ctx context.Context, req *models.EvaluateRequest) (*models.Evaluation, error) {
	prompt, err := c.prompts.BuildEvaluatePrompt(req)
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "Failed to build evaluation prompt",
			Err:      err,
		}
	}

	text, err := c.generateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	evaluation, err := llm.ParseEvaluation(text)
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "Model returned a malformed evaluation",
			Err:      err,
		}
	}
	return evaluation, nil
}

func (c *Client) generateText(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.Model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate content",
			Err:      err,
		}
	}
	if result == nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "No response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if text == "" {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "Empty response generated",
		}
	}
	return text, nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}
