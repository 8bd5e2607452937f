package repository

import (
	"context"
	"errors"

	"carelink/internal/database"
	"carelink/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CaregiverRepository defines persistence operations for caregiver profiles.
type CaregiverRepository interface {
	GetByID(ctx context.Context, userID uint) (*models.Caregiver, error)
	Create(ctx context.Context, caregiver *models.Caregiver) error
	Update(ctx context.Context, caregiver *models.Caregiver) error
	Delete(ctx context.Context, userID uint) error
	List(ctx context.Context) ([]models.Caregiver, error)
}

type caregiverRepository struct {
	db *gorm.DB
}

// NewCaregiverRepository returns a new CaregiverRepository implementation.
func NewCaregiverRepository(db *gorm.DB) CaregiverRepository {
	return &caregiverRepository{db: db}
}

func (r *caregiverRepository) GetByID(ctx context.Context, userID uint) (*models.Caregiver, error) {
	var caregiver models.Caregiver
	err := r.db.WithContext(ctx).Preload("User").First(&caregiver, "caregiver_user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Caregiver", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &caregiver, nil
}

func (r *caregiverRepository) Create(ctx context.Context, caregiver *models.Caregiver) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(caregiver).Error; err != nil {
		return database.ClassifyError(err)
	}
	return nil
}

func (r *caregiverRepository) Update(ctx context.Context, caregiver *models.Caregiver) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(caregiver).Error; err != nil {
		return database.ClassifyError(err)
	}
	return nil
}

func (r *caregiverRepository) Delete(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Caregiver{}, "caregiver_user_id = ?", userID)
	if res.Error != nil {
		return database.ClassifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Caregiver", userID)
	}
	return nil
}

func (r *caregiverRepository) List(ctx context.Context) ([]models.Caregiver, error) {
	var caregivers []models.Caregiver
	err := r.db.WithContext(ctx).Preload("User").Order("caregiver_user_id").Find(&caregivers).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return caregivers, nil
}
