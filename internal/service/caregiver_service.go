package service

import (
	"context"

	"carelink/internal/models"
	"carelink/internal/repository"
	"carelink/internal/validation"
)

const (
	duplicateCaregiverMessage = "This user already has a caregiver profile."
	caregiverUserFKMessage    = "Invalid user ID. The selected user does not exist."
)

type CaregiverService struct {
	caregiverRepo repository.CaregiverRepository
}

// CaregiverInput carries the submitted form fields for a caregiver profile.
type CaregiverInput struct {
	CaregiverUserID string
	Photo           string
	Gender          string
	CaregivingType  string
	HourlyRate      string
}

func NewCaregiverService(caregiverRepo repository.CaregiverRepository) *CaregiverService {
	return &CaregiverService{caregiverRepo: caregiverRepo}
}

func (s *CaregiverService) ListCaregivers(ctx context.Context) ([]models.Caregiver, error) {
	return s.caregiverRepo.List(ctx)
}

func (s *CaregiverService) GetCaregiverByID(ctx context.Context, userID uint) (*models.Caregiver, error) {
	return s.caregiverRepo.GetByID(ctx, userID)
}

func (s *CaregiverService) CreateCaregiver(ctx context.Context, in CaregiverInput) (*models.Caregiver, error) {
	userID, err := validation.RequiredID("caregiver_user_id", in.CaregiverUserID)
	if err != nil {
		return nil, err
	}
	fields, err := parseCaregiverFields(in)
	if err != nil {
		return nil, err
	}

	caregiver := &models.Caregiver{
		CaregiverUserID: userID,
		Photo:           fields.photo,
		Gender:          fields.gender,
		CaregivingType:  fields.caregivingType,
		HourlyRate:      fields.hourlyRate,
	}
	if err := s.caregiverRepo.Create(ctx, caregiver); err != nil {
		return nil, tailorWriteError(err, duplicateCaregiverMessage, caregiverUserFKMessage)
	}
	return caregiver, nil
}

// UpdateCaregiver overwrites every editable field with the submitted values.
// The owning user cannot change; the profile stays bound to its user.
func (s *CaregiverService) UpdateCaregiver(ctx context.Context, userID uint, in CaregiverInput) (*models.Caregiver, error) {
	caregiver, err := s.caregiverRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	fields, err := parseCaregiverFields(in)
	if err != nil {
		return nil, err
	}

	caregiver.Photo = fields.photo
	caregiver.Gender = fields.gender
	caregiver.CaregivingType = fields.caregivingType
	caregiver.HourlyRate = fields.hourlyRate

	if err := s.caregiverRepo.Update(ctx, caregiver); err != nil {
		return nil, tailorWriteError(err, duplicateCaregiverMessage, caregiverUserFKMessage)
	}
	return caregiver, nil
}

func (s *CaregiverService) DeleteCaregiver(ctx context.Context, userID uint) error {
	return s.caregiverRepo.Delete(ctx, userID)
}

type caregiverFields struct {
	photo          *string
	gender         *string
	caregivingType string
	hourlyRate     *float64
}

func parseCaregiverFields(in CaregiverInput) (caregiverFields, error) {
	var fields caregiverFields

	gender, err := validation.Gender(in.Gender)
	if err != nil {
		return fields, err
	}
	caregivingType, err := validation.CaregivingType(in.CaregivingType)
	if err != nil {
		return fields, err
	}
	rate, err := validation.OptionalRate(in.HourlyRate)
	if err != nil {
		return fields, err
	}

	fields.gender = gender
	fields.caregivingType = caregivingType
	fields.hourlyRate = rate
	if in.Photo != "" {
		photo := in.Photo
		fields.photo = &photo
	}
	return fields, nil
}
