package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportel/job-board-api/internal/core/domain"
	"github.com/jobportel/job-board-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job postings and applications.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create handles POST /jobs. Admin-only; the route is gated by Auth + RBAC.
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  createJobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	job, err := h.service.Create(c.Request().Context(), ports.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to post job"})
	}

	return c.JSON(http.StatusCreated, createJobResponse{Message: "Job posted successfully", Job: job})
}

// List handles GET /jobs with an optional case-insensitive title filter.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Param        title  query     string  false  "Filter by title substring (case-insensitive)"
// @Success      200    {array}   domain.Job
// @Failure      500    {object}  errorResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context(), c.QueryParam("title"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch jobs"})
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get handles GET /jobs/:id.
//
// @Summary      Get a job by ID
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Job not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch job details"})
	}
	return c.JSON(http.StatusOK, job)
}

// Apply handles POST /jobs/:id/apply. The acting user comes from the verified
// token claims, never from the request body.
//
// @Summary      Apply to a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /jobs/{id}/apply [post]
func (h *JobHandler) Apply(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Apply(c.Request().Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Job not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to apply for job"})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Applied successfully!"})
}
