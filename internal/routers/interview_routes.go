package routers

import (
	"github.com/go-chi/chi/v5"

	"jobprep/interview/internal/handlers"
	"jobprep/interview/internal/middleware"
	"jobprep/interview/internal/models"
)

// InterviewRoutes registers the session and bank admin endpoints. When a
// JWT secret is configured the whole API surface requires a bearer token.
func InterviewRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, questionHandler *handlers.QuestionHandler, jwtSecret string) {
	router.Route("/api/v1", func(r chi.Router) {
		if jwtSecret != "" {
			r.Use(middleware.RequireAuth(jwtSecret))
		}

		r.Route("/interviews", func(r chi.Router) {
			r.With(middleware.ValidateRequest[*models.CreateInterviewRequest]()).Post("/", interviewHandler.CreateHandler)
			r.Get("/", interviewHandler.ListHandler)
			r.Get("/{id}", interviewHandler.GetHandler)
			r.With(middleware.ValidateRequest[*models.EvaluateAnswerRequest]()).Post("/{id}/evaluate", interviewHandler.EvaluateHandler)
		})

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", questionHandler.ListHandler)
			r.Delete("/{id}", questionHandler.DeactivateHandler)
		})
	})
}
