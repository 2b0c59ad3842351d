package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
	"github.com/BuzzLyutic/taskboard-api/pkg/respond"
)

type TaskHandler struct {
	repo   repo.TaskRepository
	logger *zap.Logger
}

func NewTaskHandler(repo repo.TaskRepository, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		repo:   repo,
		logger: logger,
	}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ProjectID   string `json:"projectId"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to load tasks", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(w, r, http.StatusOK, map[string]any{"tasks": tasks})
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	task, err := h.repo.Create(r.Context(), model.Task{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		h.logger.Error("failed to create task", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(w, r, http.StatusCreated, map[string]any{"task": task})
}
