package handler

import "github.com/jobportel/job-board-api/internal/core/domain"

type createJobRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Company     string `json:"company"     validate:"required"`
	Location    string `json:"location"    validate:"required"`
}

type createJobResponse struct {
	Message string      `json:"message"`
	Job     *domain.Job `json:"job"`
}
