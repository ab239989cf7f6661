package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"jobprep/interview/internal/models"
	"jobprep/interview/internal/repositories"
	"jobprep/interview/internal/utils"
)

// QuestionHandler exposes the bank admin endpoints.
type QuestionHandler struct {
	bank   repositories.QuestionRepository
	logger *zap.Logger
}

func NewQuestionHandler(bank repositories.QuestionRepository, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{bank: bank, logger: logger}
}

// ListHandler returns the active questions of one pool.
func (h *QuestionHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	role := query.Get("role")
	level := query.Get("level")
	category := query.Get("category")

	if !models.ValidRoles[role] || !models.ValidLevels[level] || !models.ValidCategories[category] {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_pool",
			Message: "role, level, and category must identify a valid pool",
		})
		return
	}

	filter := repositories.PoolFilter{Role: role, Level: level, Category: category, ActiveOnly: true}

	total, err := h.bank.Count(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to count questions", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch questions",
		})
		return
	}

	questions, err := h.bank.Find(r.Context(), filter, 0)
	if err != nil {
		h.logger.Error("failed to list questions", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch questions",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.QuestionsResponse{
		Total: int(total),
		Items: questions,
	})
}

// DeactivateHandler soft-removes a question from selection.
func (h *QuestionHandler) DeactivateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_question_id",
			Message: "Question id is not valid",
		})
		return
	}

	if err := h.bank.Deactivate(r.Context(), id); err != nil {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "question_not_found",
			Message: "Question not found",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
