package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobportel/job-board-api/internal/core/domain"
	"github.com/jobportel/job-board-api/internal/core/ports"
	"github.com/jobportel/job-board-api/internal/infrastructure/storage"
)

const dobLayout = "2006-01-02"

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService ports.AuthService
	resumes     *storage.ResumeStore
}

func NewAuthHandler(authService ports.AuthService, resumes *storage.ResumeStore) *AuthHandler {
	return &AuthHandler{authService: authService, resumes: resumes}
}

// Register creates a new user account with an optional resume attachment.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	dob, err := time.Parse(dobLayout, req.DOB)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "dob must be a date in YYYY-MM-DD format"})
	}

	resumeFile, err := h.saveResume(c)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Registration failed"})
	}

	_, err = h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    req.Password,
		Skills:      req.Skills,
		DOB:         dob,
		Role:        req.Role,
		ResumeFile:  resumeFile,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "user already exists"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "All fields are required"})
		default:
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Registration failed"})
		}
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

// saveResume stores the optional multipart resume attachment. A request
// without one (including plain JSON requests) is not an error.
func (h *AuthHandler) saveResume(c echo.Context) (string, error) {
	fh, err := c.FormFile("resume")
	if err != nil {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return h.resumes.Save(src, fh.Filename)
}

// Login authenticates a user and returns a signed token with the user's role.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Login failed"})
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, Role: user.Role})
}
