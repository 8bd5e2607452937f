package repository

import (
	"context"
	"errors"

	"carelink/internal/database"
	"carelink/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	Update(ctx context.Context, appointment *models.Appointment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Appointment, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository returns a new AppointmentRepository implementation.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Caregiver.User").
		Preload("Member.User").
		First(&appointment, "appointment_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Appointment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(appointment).Error; err != nil {
		return database.ClassifyError(err)
	}
	return nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(appointment).Error; err != nil {
		return database.ClassifyError(err)
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, "appointment_id = ?", id)
	if res.Error != nil {
		return database.ClassifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Appointment", id)
	}
	return nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Caregiver.User").
		Preload("Member.User").
		Order("appointment_id").
		Find(&appointments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return appointments, nil
}
