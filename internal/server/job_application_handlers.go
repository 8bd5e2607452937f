package server

import (
	"context"
	"time"

	"carelink/internal/models"
	"carelink/internal/service"

	"github.com/gofiber/fiber/v2"
)

type jobApplicationRequest struct {
	CaregiverUserID string `json:"caregiver_user_id" form:"caregiver_user_id"`
	JobID           string `json:"job_id" form:"job_id"`
	DateApplied     string `json:"date_applied" form:"date_applied"`
}

func (r jobApplicationRequest) toInput() service.JobApplicationInput {
	return service.JobApplicationInput{
		CaregiverUserID: r.CaregiverUserID,
		JobID:           r.JobID,
		DateApplied:     r.DateApplied,
	}
}

// parseApplicationKey extracts the composite (caregiver, job) key from the
// route. A malformed segment writes a 400 response; callers return nil.
func (s *Server) parseApplicationKey(c *fiber.Ctx) (uint, uint, error) {
	caregiverID, err := s.parseID(c, "caregiverId")
	if err != nil {
		return 0, 0, err
	}
	jobID, err := s.parseID(c, "jobId")
	if err != nil {
		return 0, 0, err
	}
	return caregiverID, jobID, nil
}

// ListJobApplications handles GET /job-applications
func (s *Server) ListJobApplications(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	applications, err := s.applicationService.ListJobApplications(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(applications)
}

// NewJobApplicationForm handles GET /job-applications/new with the
// reference data needed to build the create form.
func (s *Server) NewJobApplicationForm(c *fiber.Ctx) error {
	caregivers, err := s.caregiverService.ListCaregivers(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	jobs, err := s.jobService.ListJobs(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(fiber.Map{
		"caregivers": caregivers,
		"jobs":       jobs,
	})
}

// GetJobApplication handles GET /job-applications/:caregiverId/:jobId
func (s *Server) GetJobApplication(c *fiber.Ctx) error {
	caregiverID, jobID, err := s.parseApplicationKey(c)
	if err != nil {
		return nil
	}

	application, err := s.applicationService.GetJobApplication(c.UserContext(), caregiverID, jobID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(application)
}

// CreateJobApplication handles POST /job-applications
func (s *Server) CreateJobApplication(c *fiber.Ctx) error {
	var req jobApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	application, err := s.applicationService.CreateJobApplication(c.UserContext(), req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Job application created successfully!",
		"application": application,
	})
}

// UpdateJobApplication handles PUT /job-applications/:caregiverId/:jobId
func (s *Server) UpdateJobApplication(c *fiber.Ctx) error {
	caregiverID, jobID, err := s.parseApplicationKey(c)
	if err != nil {
		return nil
	}

	var req jobApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	application, err := s.applicationService.UpdateJobApplication(c.UserContext(), caregiverID, jobID, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message":     "Job application updated successfully!",
		"application": application,
	})
}

// DeleteJobApplication handles DELETE /job-applications/:caregiverId/:jobId
func (s *Server) DeleteJobApplication(c *fiber.Ctx) error {
	caregiverID, jobID, err := s.parseApplicationKey(c)
	if err != nil {
		return nil
	}

	if err := s.applicationService.DeleteJobApplication(c.UserContext(), caregiverID, jobID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Job application deleted successfully!"})
}
