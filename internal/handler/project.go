package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
	"github.com/BuzzLyutic/taskboard-api/pkg/respond"
)

type ProjectHandler struct {
	repo   repo.ProjectRepository
	logger *zap.Logger
}

func NewProjectHandler(repo repo.ProjectRepository, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		repo:   repo,
		logger: logger,
	}
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to load projects", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(w, r, http.StatusOK, map[string]any{"projects": projects})
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	project, err := h.repo.Create(r.Context(), model.Project{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		Owner:       claims.ID, // владелец — тот, кто предъявил токен
	})
	if err != nil {
		h.logger.Error("failed to create project", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(w, r, http.StatusCreated, map[string]any{"project": project})
}
