package server

import (
	"context"
	"time"

	"carelink/internal/models"
	"carelink/internal/service"

	"github.com/gofiber/fiber/v2"
)

type appointmentRequest struct {
	CaregiverUserID string `json:"caregiver_user_id" form:"caregiver_user_id"`
	MemberUserID    string `json:"member_user_id" form:"member_user_id"`
	AppointmentDate string `json:"appointment_date" form:"appointment_date"`
	AppointmentTime string `json:"appointment_time" form:"appointment_time"`
	WorkHours       string `json:"work_hours" form:"work_hours"`
	Status          string `json:"status" form:"status"`
}

func (r appointmentRequest) toInput() service.AppointmentInput {
	return service.AppointmentInput{
		CaregiverUserID: r.CaregiverUserID,
		MemberUserID:    r.MemberUserID,
		AppointmentDate: r.AppointmentDate,
		AppointmentTime: r.AppointmentTime,
		WorkHours:       r.WorkHours,
		Status:          r.Status,
	}
}

// ListAppointments handles GET /appointments
func (s *Server) ListAppointments(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	appointments, err := s.appointmentService.ListAppointments(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(appointments)
}

// NewAppointmentForm handles GET /appointments/new with the reference data
// needed to build the create form.
func (s *Server) NewAppointmentForm(c *fiber.Ctx) error {
	caregivers, err := s.caregiverService.ListCaregivers(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	members, err := s.memberService.ListMembers(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(fiber.Map{
		"caregivers": caregivers,
		"members":    members,
		"statuses":   models.AppointmentStatuses,
	})
}

// GetAppointment handles GET /appointments/:id
func (s *Server) GetAppointment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	appointment, err := s.appointmentService.GetAppointmentByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(appointment)
}

// CreateAppointment handles POST /appointments
func (s *Server) CreateAppointment(c *fiber.Ctx) error {
	var req appointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	appointment, err := s.appointmentService.CreateAppointment(c.UserContext(), req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Appointment created successfully!",
		"appointment": appointment,
	})
}

// UpdateAppointment handles PUT /appointments/:id
func (s *Server) UpdateAppointment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req appointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	appointment, err := s.appointmentService.UpdateAppointment(c.UserContext(), id, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment updated successfully!",
		"appointment": appointment,
	})
}

// DeleteAppointment handles DELETE /appointments/:id
func (s *Server) DeleteAppointment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.appointmentService.DeleteAppointment(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Appointment deleted successfully!"})
}
