package server

import (
	"context"
	"time"

	"carelink/internal/models"
	"carelink/internal/service"

	"github.com/gofiber/fiber/v2"
)

type caregiverRequest struct {
	CaregiverUserID string `json:"caregiver_user_id" form:"caregiver_user_id"`
	Photo           string `json:"photo" form:"photo"`
	Gender          string `json:"gender" form:"gender"`
	CaregivingType  string `json:"caregiving_type" form:"caregiving_type"`
	HourlyRate      string `json:"hourly_rate" form:"hourly_rate"`
}

func (r caregiverRequest) toInput() service.CaregiverInput {
	return service.CaregiverInput{
		CaregiverUserID: r.CaregiverUserID,
		Photo:           r.Photo,
		Gender:          r.Gender,
		CaregivingType:  r.CaregivingType,
		HourlyRate:      r.HourlyRate,
	}
}

// ListCaregivers handles GET /caregivers
func (s *Server) ListCaregivers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	caregivers, err := s.caregiverService.ListCaregivers(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(caregivers)
}

// NewCaregiverForm handles GET /caregivers/new with the reference data
// needed to build the create form.
func (s *Server) NewCaregiverForm(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(fiber.Map{
		"users":            users,
		"caregiving_types": models.CaregivingTypes,
		"genders":          models.Genders,
	})
}

// GetCaregiver handles GET /caregivers/:id
func (s *Server) GetCaregiver(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	caregiver, err := s.caregiverService.GetCaregiverByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(caregiver)
}

// CreateCaregiver handles POST /caregivers
func (s *Server) CreateCaregiver(c *fiber.Ctx) error {
	var req caregiverRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	caregiver, err := s.caregiverService.CreateCaregiver(c.UserContext(), req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Caregiver created successfully!",
		"caregiver": caregiver,
	})
}

// UpdateCaregiver handles PUT /caregivers/:id
func (s *Server) UpdateCaregiver(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req caregiverRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	caregiver, err := s.caregiverService.UpdateCaregiver(c.UserContext(), id, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message":   "Caregiver updated successfully!",
		"caregiver": caregiver,
	})
}

// DeleteCaregiver handles DELETE /caregivers/:id
func (s *Server) DeleteCaregiver(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.caregiverService.DeleteCaregiver(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Caregiver deleted successfully!"})
}
