package models

// uniform error payload
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Code + ": " + e.Message
}

// response for the pool listing endpoint
type QuestionsResponse struct {
	Total int        `json:"total"`
	Items []Question `json:"items"`
}

// response for the session listing endpoint
type SessionsResponse struct {
	Total int                `json:"total"`
	Items []InterviewSession `json:"items"`
}
