package server

import (
	"context"
	"time"

	"carelink/internal/models"
	"carelink/internal/service"

	"github.com/gofiber/fiber/v2"
)

type jobRequest struct {
	MemberUserID           string `json:"member_user_id" form:"member_user_id"`
	RequiredCaregivingType string `json:"required_caregiving_type" form:"required_caregiving_type"`
	OtherRequirements      string `json:"other_requirements" form:"other_requirements"`
	DatePosted             string `json:"date_posted" form:"date_posted"`
}

func (r jobRequest) toInput() service.JobInput {
	return service.JobInput{
		MemberUserID:           r.MemberUserID,
		RequiredCaregivingType: r.RequiredCaregivingType,
		OtherRequirements:      r.OtherRequirements,
		DatePosted:             r.DatePosted,
	}
}

// ListJobs handles GET /jobs
func (s *Server) ListJobs(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	jobs, err := s.jobService.ListJobs(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(jobs)
}

// NewJobForm handles GET /jobs/new with the reference data needed to
// build the create form.
func (s *Server) NewJobForm(c *fiber.Ctx) error {
	members, err := s.memberService.ListMembers(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(fiber.Map{
		"members":          members,
		"caregiving_types": models.CaregivingTypes,
	})
}

// GetJob handles GET /jobs/:id
func (s *Server) GetJob(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	job, err := s.jobService.GetJobByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(job)
}

// CreateJob handles POST /jobs
func (s *Server) CreateJob(c *fiber.Ctx) error {
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	job, err := s.jobService.CreateJob(c.UserContext(), req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Job created successfully!",
		"job":     job,
	})
}

// UpdateJob handles PUT /jobs/:id
func (s *Server) UpdateJob(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	job, err := s.jobService.UpdateJob(c.UserContext(), id, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Job updated successfully!",
		"job":     job,
	})
}

// DeleteJob handles DELETE /jobs/:id
func (s *Server) DeleteJob(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.jobService.DeleteJob(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Job deleted successfully!"})
}
