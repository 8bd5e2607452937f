package server

import (
	"context"
	"time"

	"carelink/internal/models"
	"carelink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /users
func (s *Server) ListUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	users, err := s.userService.ListUsers(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(users)
}

// NewUserForm handles GET /users/new. User creation needs no reference
// data, so the body is an empty map.
func (s *Server) NewUserForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{})
}

// GetUser handles GET /users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(user)
}

// CreateUser handles POST /users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Email              string `json:"email" form:"email"`
		GivenName          string `json:"given_name" form:"given_name"`
		Surname            string `json:"surname" form:"surname"`
		City               string `json:"city" form:"city"`
		PhoneNumber        string `json:"phone_number" form:"phone_number"`
		ProfileDescription string `json:"profile_description" form:"profile_description"`
		Password           string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(c.UserContext(), service.UserInput{
		Email:              req.Email,
		GivenName:          req.GivenName,
		Surname:            req.Surname,
		City:               req.City,
		PhoneNumber:        req.PhoneNumber,
		ProfileDescription: req.ProfileDescription,
		Password:           req.Password,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully!",
		"user":    user,
	})
}

// UpdateUser handles PUT /users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Email              string `json:"email" form:"email"`
		GivenName          string `json:"given_name" form:"given_name"`
		Surname            string `json:"surname" form:"surname"`
		City               string `json:"city" form:"city"`
		PhoneNumber        string `json:"phone_number" form:"phone_number"`
		ProfileDescription string `json:"profile_description" form:"profile_description"`
		Password           string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateUser(c.UserContext(), id, service.UserInput{
		Email:              req.Email,
		GivenName:          req.GivenName,
		Surname:            req.Surname,
		City:               req.City,
		PhoneNumber:        req.PhoneNumber,
		ProfileDescription: req.ProfileDescription,
		Password:           req.Password,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully!",
		"user":    user,
	})
}

// DeleteUser handles DELETE /users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully!"})
}
