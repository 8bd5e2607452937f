package server

import (
	"context"
	"time"

	"carelink/internal/models"
	"carelink/internal/service"

	"github.com/gofiber/fiber/v2"
)

type memberRequest struct {
	MemberUserID         string `json:"member_user_id" form:"member_user_id"`
	HouseRules           string `json:"house_rules" form:"house_rules"`
	DependentDescription string `json:"dependent_description" form:"dependent_description"`
}

func (r memberRequest) toInput() service.MemberInput {
	return service.MemberInput{
		MemberUserID:         r.MemberUserID,
		HouseRules:           r.HouseRules,
		DependentDescription: r.DependentDescription,
	}
}

// ListMembers handles GET /members
func (s *Server) ListMembers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	members, err := s.memberService.ListMembers(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(members)
}

// NewMemberForm handles GET /members/new with the reference data needed
// to build the create form.
func (s *Server) NewMemberForm(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetMember handles GET /members/:id
func (s *Server) GetMember(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	member, err := s.memberService.GetMemberByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(member)
}

// CreateMember handles POST /members
func (s *Server) CreateMember(c *fiber.Ctx) error {
	var req memberRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	member, err := s.memberService.CreateMember(c.UserContext(), req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Member created successfully!",
		"member":  member,
	})
}

// UpdateMember handles PUT /members/:id
func (s *Server) UpdateMember(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req memberRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	member, err := s.memberService.UpdateMember(c.UserContext(), id, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Member updated successfully!",
		"member":  member,
	})
}

// DeleteMember handles DELETE /members/:id
func (s *Server) DeleteMember(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.memberService.DeleteMember(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Member deleted successfully!"})
}
