package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"jobprep/interview/internal/llm"
	"jobprep/interview/internal/middleware"
	"jobprep/interview/internal/models"
	"jobprep/interview/internal/repositories"
	"jobprep/interview/internal/selector"
	"jobprep/interview/internal/utils"
)

// QuestionSelector assembles the question set for a new session.
type QuestionSelector interface {
	SelectQuestions(ctx context.Context, role, level, category string) ([]models.Candidate, error)
}

type InterviewHandler struct {
	selector QuestionSelector
	provider llm.Provider
	sessions repositories.SessionRepository
	logger   *zap.Logger
}

func NewInterviewHandler(sel QuestionSelector, provider llm.Provider, sessions repositories.SessionRepository, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		selector: sel,
		provider: provider,
		sessions: sessions,
		logger:   logger,
	}
}

// CreateHandler starts a new interview session: runs the selector for the
// requested pool and persists the session with pending answer slots.
func (h *InterviewHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateInterviewRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	questions, err := h.selector.SelectQuestions(r.Context(), req.Role, req.Level, req.Category)
	if err != nil {
		h.logger.Error("question selection failed",
			zap.Error(err),
			zap.String("request_id", req.RequestID))
		if errors.Is(err, selector.ErrNoQuestions) {
			utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
				Code:    "generation_failed",
				Message: "Failed to generate interview questions",
			})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to prepare interview session",
		})
		return
	}

	now := time.Now().UTC()
	session := &models.InterviewSession{
		User:      req.UserID,
		Title:     fmt.Sprintf("%s %s Interview", req.Role, req.Level),
		Role:      req.Role,
		Level:     req.Level,
		Category:  req.Category,
		Status:    models.SessionInProgress,
		StartTime: &now,
		Questions: make([]models.SessionQuestion, 0, len(questions)),
	}
	for _, q := range questions {
		session.Questions = append(session.Questions, models.SessionQuestion{
			Question:    q.Question,
			IdealAnswer: q.IdealAnswer,
			KeyPoints:   q.KeyPoints,
			Status:      models.QuestionPending,
		})
	}

	created, err := h.sessions.Create(r.Context(), session)
	if err != nil {
		h.logger.Error("failed to persist interview session",
			zap.Error(err),
			zap.String("request_id", req.RequestID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to create interview session",
		})
		return
	}

	h.logger.Info("interview session created",
		zap.String("request_id", req.RequestID),
		zap.String("session_id", created.ID.Hex()),
		zap.Int("questions", len(created.Questions)))

	utils.JSON(w, http.StatusCreated, created)
}

// EvaluateHandler scores one answered question and rolls the result into
// the session totals.
func (h *InterviewHandler) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.EvaluateAnswerRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_session_id",
			Message: "Session id is not valid",
		})
		return
	}

	session, err := h.sessions.GetByID(r.Context(), id)
	if err != nil {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Session not found",
		})
		return
	}

	idx := *req.QuestionIndex
	if idx >= len(session.Questions) {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_question_index",
			Message: "Question index out of range",
		})
		return
	}

	slot := session.Questions[idx]
	evaluation, err := h.provider.EvaluateAnswer(r.Context(), &models.EvaluateRequest{
		Role:      session.Role,
		Level:     session.Level,
		Category:  session.Category,
		Question:  slot.Question,
		KeyPoints: slot.KeyPoints,
		Answer:    req.Answer,
	})
	if err != nil {
		h.logger.Error("answer evaluation failed",
			zap.Error(err),
			zap.String("request_id", req.RequestID),
			zap.String("session_id", session.ID.Hex()))
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code:    "evaluation_failed",
			Message: "Failed to evaluate answer",
		})
		return
	}

	session.Questions[idx].Answer = req.Answer
	session.Questions[idx].Evaluation = evaluation
	session.Questions[idx].Status = models.QuestionReviewed
	session.RecalculateScores(time.Now().UTC())

	if err := h.sessions.Update(r.Context(), session); err != nil {
		h.logger.Error("failed to save evaluation",
			zap.Error(err),
			zap.String("session_id", session.ID.Hex()))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to save evaluation",
		})
		return
	}

	utils.JSON(w, http.StatusOK, evaluation)
}

func (h *InterviewHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_session_id",
			Message: "Session id is not valid",
		})
		return
	}

	session, err := h.sessions.GetByID(r.Context(), id)
	if err != nil {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Session not found",
		})
		return
	}

	utils.JSON(w, http.StatusOK, session)
}

func (h *InterviewHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user_id")
	if user == "" {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "missing_user",
			Message: "user_id query parameter is required",
		})
		return
	}

	sessions, err := h.sessions.ListByUser(r.Context(), user)
	if err != nil {
		h.logger.Error("failed to list sessions", zap.Error(err), zap.String("user", user))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch sessions",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.SessionsResponse{
		Total: len(sessions),
		Items: sessions,
	})
}

func ensureRequestID(requestID string) string {
	if requestID == "" {
		return uuid.New().String()
	}
	return requestID
}
