package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportel/job-board-api/internal/core/domain"
	"github.com/jobportel/job-board-api/internal/core/ports"
	"github.com/jobportel/job-board-api/internal/infrastructure/storage"
)

// ResumeHandler streams stored resume files.
type ResumeHandler struct {
	users   ports.UserRepository
	resumes *storage.ResumeStore
}

func NewResumeHandler(users ports.UserRepository, resumes *storage.ResumeStore) *ResumeHandler {
	return &ResumeHandler{users: users, resumes: resumes}
}

// Get streams the resume of the user identified in the path.
//
// @Summary      Download a user's resume
// @Tags         auth
// @Produce      octet-stream
// @Param        userId  path      string  true  "User ID"
// @Success      200     {file}    binary
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /auth/resume/{userId} [get]
func (h *ResumeHandler) Get(c echo.Context) error {
	user, err := h.users.FindByID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Resume not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch resume"})
	}

	path, err := h.resumes.Path(user.ResumeFile)
	if err != nil {
		if errors.Is(err, domain.ErrResumeNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Resume not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch resume"})
	}

	return c.File(path)
}
