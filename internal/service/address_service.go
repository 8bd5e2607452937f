package service

import (
	"context"

	"carelink/internal/models"
	"carelink/internal/repository"
	"carelink/internal/validation"
)

const (
	duplicateAddressMessage = "This member already has an address."
	addressMemberFKMessage  = "Invalid member ID. The selected member does not exist."
)

type AddressService struct {
	addressRepo repository.AddressRepository
}

// AddressInput carries the submitted form fields for a member address.
type AddressInput struct {
	MemberUserID string
	HouseNumber  string
	Street       string
	Town         string
}

func NewAddressService(addressRepo repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

func (s *AddressService) ListAddresses(ctx context.Context) ([]models.Address, error) {
	return s.addressRepo.List(ctx)
}

func (s *AddressService) GetAddressByID(ctx context.Context, memberUserID uint) (*models.Address, error) {
	return s.addressRepo.GetByID(ctx, memberUserID)
}

func (s *AddressService) CreateAddress(ctx context.Context, in AddressInput) (*models.Address, error) {
	memberUserID, err := validation.RequiredID("member_user_id", in.MemberUserID)
	if err != nil {
		return nil, err
	}

	address := &models.Address{
		MemberUserID: memberUserID,
		HouseNumber:  in.HouseNumber,
		Street:       in.Street,
		Town:         in.Town,
	}
	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, tailorWriteError(err, duplicateAddressMessage, addressMemberFKMessage)
	}
	return address, nil
}

// UpdateAddress overwrites every editable field with the submitted values.
func (s *AddressService) UpdateAddress(ctx context.Context, memberUserID uint, in AddressInput) (*models.Address, error) {
	address, err := s.addressRepo.GetByID(ctx, memberUserID)
	if err != nil {
		return nil, err
	}

	address.HouseNumber = in.HouseNumber
	address.Street = in.Street
	address.Town = in.Town

	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, tailorWriteError(err, duplicateAddressMessage, addressMemberFKMessage)
	}
	return address, nil
}

func (s *AddressService) DeleteAddress(ctx context.Context, memberUserID uint) error {
	return s.addressRepo.Delete(ctx, memberUserID)
}
