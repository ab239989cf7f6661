package handlers

import (
	"context"
	"net/http"

	"jobprep/interview/internal/llm"
	"jobprep/interview/internal/utils"
)

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"`  // "ready" | "not_ready"
	Service string                    `json:"service"` // Service name
	Checks  map[string]ReadinessCheck `json:"checks"`  // Individual check results
}

// Pinger verifies the backing store connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	provider llm.Provider
	store    Pinger
}

func NewHealthHandler(provider llm.Provider, store Pinger) *HealthHandler {
	return &HealthHandler{provider: provider, store: store}
}

func (h *HealthHandler) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "interview",
		"version": "1.0.0",
	})
}

func (h *HealthHandler) ReadyzHandler(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]ReadinessCheck)
	ready := true

	if h.provider == nil {
		checks["provider"] = ReadinessCheck{Status: "failed", Message: "AI provider not initialized"}
		ready = false
	} else {
		checks["provider"] = ReadinessCheck{Status: "ok"}
	}

	if h.store == nil {
		checks["store"] = ReadinessCheck{Status: "failed", Message: "store not initialized"}
		ready = false
	} else if err := h.store.Ping(r.Context()); err != nil {
		checks["store"] = ReadinessCheck{Status: "failed", Message: err.Error()}
		ready = false
	} else {
		checks["store"] = ReadinessCheck{Status: "ok"}
	}

	resp := ReadinessResponse{Status: "ready", Service: "interview", Checks: checks}
	status := http.StatusOK
	if !ready {
		resp.Status = "not_ready"
		status = http.StatusServiceUnavailable
	}
	utils.JSON(w, status, resp)
}
