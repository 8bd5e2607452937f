package repository

import (
	"context"
	"errors"

	"carelink/internal/database"
	"carelink/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository returns a new JobRepository implementation.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Preload("Member.User").First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Job", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &job, nil
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(job).Error; err != nil {
		return database.ClassifyError(err)
	}
	return nil
}

func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(job).Error; err != nil {
		return database.ClassifyError(err)
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Job{}, id)
	if res.Error != nil {
		return database.ClassifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Job", id)
	}
	return nil
}

func (r *jobRepository) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).Preload("Member.User").Order("job_id").Find(&jobs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return jobs, nil
}
