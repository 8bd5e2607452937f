package server

import (
	"context"
	"time"

	"carelink/internal/models"
	"carelink/internal/service"

	"github.com/gofiber/fiber/v2"
)

type addressRequest struct {
	MemberUserID string `json:"member_user_id" form:"member_user_id"`
	HouseNumber  string `json:"house_number" form:"house_number"`
	Street       string `json:"street" form:"street"`
	Town         string `json:"town" form:"town"`
}

func (r addressRequest) toInput() service.AddressInput {
	return service.AddressInput{
		MemberUserID: r.MemberUserID,
		HouseNumber:  r.HouseNumber,
		Street:       r.Street,
		Town:         r.Town,
	}
}

// ListAddresses handles GET /addresses
func (s *Server) ListAddresses(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	addresses, err := s.addressService.ListAddresses(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(addresses)
}

// NewAddressForm handles GET /addresses/new with the reference data needed
// to build the create form.
func (s *Server) NewAddressForm(c *fiber.Ctx) error {
	members, err := s.memberService.ListMembers(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(fiber.Map{"members": members})
}

// GetAddress handles GET /addresses/:id
func (s *Server) GetAddress(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	address, err := s.addressService.GetAddressByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(address)
}

// CreateAddress handles POST /addresses
func (s *Server) CreateAddress(c *fiber.Ctx) error {
	var req addressRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	address, err := s.addressService.CreateAddress(c.UserContext(), req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Address created successfully!",
		"address": address,
	})
}

// UpdateAddress handles PUT /addresses/:id
func (s *Server) UpdateAddress(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req addressRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	address, err := s.addressService.UpdateAddress(c.UserContext(), id, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Address updated successfully!",
		"address": address,
	})
}

// DeleteAddress handles DELETE /addresses/:id
func (s *Server) DeleteAddress(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.addressService.DeleteAddress(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Address deleted successfully!"})
}
