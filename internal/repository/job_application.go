package repository

import (
	"context"
	"errors"
	"fmt"

	"carelink/internal/database"
	"carelink/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobApplicationRepository defines persistence operations for job
// applications. Rows are addressed by their composite (caregiver, job) key.
type JobApplicationRepository interface {
	GetByKey(ctx context.Context, caregiverUserID, jobID uint) (*models.JobApplication, error)
	Create(ctx context.Context, application *models.JobApplication) error
	// Update rewrites the row addressed by the old key, including moving it
	// to a new (caregiver, job) pair.
	Update(ctx context.Context, oldCaregiverUserID, oldJobID uint, application *models.JobApplication) error
	Delete(ctx context.Context, caregiverUserID, jobID uint) error
	List(ctx context.Context) ([]models.JobApplication, error)
}

type jobApplicationRepository struct {
	db *gorm.DB
}

// NewJobApplicationRepository returns a new JobApplicationRepository implementation.
func NewJobApplicationRepository(db *gorm.DB) JobApplicationRepository {
	return &jobApplicationRepository{db: db}
}

func (r *jobApplicationRepository) GetByKey(ctx context.Context, caregiverUserID, jobID uint) (*models.JobApplication, error) {
	var application models.JobApplication
	err := r.db.WithContext(ctx).
		Preload("Caregiver.User").
		Preload("Job").
		First(&application, "caregiver_user_id = ? AND job_id = ?", caregiverUserID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Job application", applicationKey(caregiverUserID, jobID))
		}
		return nil, models.NewInternalError(err)
	}
	return &application, nil
}

func (r *jobApplicationRepository) Create(ctx context.Context, application *models.JobApplication) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(application).Error; err != nil {
		return database.ClassifyError(err)
	}
	return nil
}

func (r *jobApplicationRepository) Update(ctx context.Context, oldCaregiverUserID, oldJobID uint, application *models.JobApplication) error {
	res := r.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("caregiver_user_id = ? AND job_id = ?", oldCaregiverUserID, oldJobID).
		Updates(map[string]interface{}{
			"caregiver_user_id": application.CaregiverUserID,
			"job_id":            application.JobID,
			"date_applied":      application.DateApplied,
		})
	if res.Error != nil {
		return database.ClassifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Job application", applicationKey(oldCaregiverUserID, oldJobID))
	}
	return nil
}

func (r *jobApplicationRepository) Delete(ctx context.Context, caregiverUserID, jobID uint) error {
	res := r.db.WithContext(ctx).
		Delete(&models.JobApplication{}, "caregiver_user_id = ? AND job_id = ?", caregiverUserID, jobID)
	if res.Error != nil {
		return database.ClassifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Job application", applicationKey(caregiverUserID, jobID))
	}
	return nil
}

func (r *jobApplicationRepository) List(ctx context.Context) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := r.db.WithContext(ctx).
		Preload("Caregiver.User").
		Preload("Job").
		Order("job_id, caregiver_user_id").
		Find(&applications).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return applications, nil
}

func applicationKey(caregiverUserID, jobID uint) string {
	return fmt.Sprintf("(%d, %d)", caregiverUserID, jobID)
}
