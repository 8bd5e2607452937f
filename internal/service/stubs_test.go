package service

import (
	"context"
	"errors"
	"testing"

	"carelink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Function-stub repositories shared by the service tests in this package.

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	deleteFn     func(context.Context, uint) error
	listFn       func(context.Context) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{UserID: id}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
		listFn:       func(context.Context) ([]models.User, error) { return nil, nil },
	}
}

type caregiverRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.Caregiver, error)
	createFn  func(context.Context, *models.Caregiver) error
	updateFn  func(context.Context, *models.Caregiver) error
	deleteFn  func(context.Context, uint) error
	listFn    func(context.Context) ([]models.Caregiver, error)
}

func (s *caregiverRepoStub) GetByID(ctx context.Context, id uint) (*models.Caregiver, error) {
	return s.getByIDFn(ctx, id)
}
func (s *caregiverRepoStub) Create(ctx context.Context, caregiver *models.Caregiver) error {
	return s.createFn(ctx, caregiver)
}
func (s *caregiverRepoStub) Update(ctx context.Context, caregiver *models.Caregiver) error {
	return s.updateFn(ctx, caregiver)
}
func (s *caregiverRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *caregiverRepoStub) List(ctx context.Context) ([]models.Caregiver, error) {
	return s.listFn(ctx)
}

func noopCaregiverRepo() *caregiverRepoStub {
	return &caregiverRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Caregiver, error) {
			return &models.Caregiver{CaregiverUserID: id, CaregivingType: models.CaregivingTypeBabysitter}, nil
		},
		createFn: func(context.Context, *models.Caregiver) error { return nil },
		updateFn: func(context.Context, *models.Caregiver) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
		listFn:   func(context.Context) ([]models.Caregiver, error) { return nil, nil },
	}
}

type jobRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.Job, error)
	createFn  func(context.Context, *models.Job) error
	updateFn  func(context.Context, *models.Job) error
	deleteFn  func(context.Context, uint) error
	listFn    func(context.Context) ([]models.Job, error)
}

func (s *jobRepoStub) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	return s.getByIDFn(ctx, id)
}
func (s *jobRepoStub) Create(ctx context.Context, job *models.Job) error {
	return s.createFn(ctx, job)
}
func (s *jobRepoStub) Update(ctx context.Context, job *models.Job) error {
	return s.updateFn(ctx, job)
}
func (s *jobRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *jobRepoStub) List(ctx context.Context) ([]models.Job, error) {
	return s.listFn(ctx)
}

func noopJobRepo() *jobRepoStub {
	return &jobRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Job, error) {
			return &models.Job{JobID: id, MemberUserID: 1, RequiredCaregivingType: models.CaregivingTypePlaymate}, nil
		},
		createFn: func(context.Context, *models.Job) error { return nil },
		updateFn: func(context.Context, *models.Job) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
		listFn:   func(context.Context) ([]models.Job, error) { return nil, nil },
	}
}

type appointmentRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.Appointment, error)
	createFn  func(context.Context, *models.Appointment) error
	updateFn  func(context.Context, *models.Appointment) error
	deleteFn  func(context.Context, uint) error
	listFn    func(context.Context) ([]models.Appointment, error)
}

func (s *appointmentRepoStub) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *appointmentRepoStub) Create(ctx context.Context, appointment *models.Appointment) error {
	return s.createFn(ctx, appointment)
}
func (s *appointmentRepoStub) Update(ctx context.Context, appointment *models.Appointment) error {
	return s.updateFn(ctx, appointment)
}
func (s *appointmentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *appointmentRepoStub) List(ctx context.Context) ([]models.Appointment, error) {
	return s.listFn(ctx)
}

func noopAppointmentRepo() *appointmentRepoStub {
	return &appointmentRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Appointment, error) {
			return &models.Appointment{AppointmentID: id, CaregiverUserID: 1, MemberUserID: 2, Status: models.AppointmentStatusPending}, nil
		},
		createFn: func(context.Context, *models.Appointment) error { return nil },
		updateFn: func(context.Context, *models.Appointment) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
		listFn:   func(context.Context) ([]models.Appointment, error) { return nil, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertErrorCode(t, err, models.CodeValidation)
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
