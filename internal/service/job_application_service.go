package service

import (
	"context"
	"time"

	"carelink/internal/models"
	"carelink/internal/repository"
	"carelink/internal/validation"
)

const (
	duplicateApplicationMessage = "This caregiver has already applied to this job."
	applicationFKMessage        = "Invalid caregiver or job ID. The selected records do not exist."
)

type JobApplicationService struct {
	applicationRepo repository.JobApplicationRepository
}

// JobApplicationInput carries the submitted form fields for a job application.
type JobApplicationInput struct {
	CaregiverUserID string
	JobID           string
	DateApplied     string
}

func NewJobApplicationService(applicationRepo repository.JobApplicationRepository) *JobApplicationService {
	return &JobApplicationService{applicationRepo: applicationRepo}
}

func (s *JobApplicationService) ListJobApplications(ctx context.Context) ([]models.JobApplication, error) {
	return s.applicationRepo.List(ctx)
}

func (s *JobApplicationService) GetJobApplication(ctx context.Context, caregiverUserID, jobID uint) (*models.JobApplication, error) {
	return s.applicationRepo.GetByKey(ctx, caregiverUserID, jobID)
}

func (s *JobApplicationService) CreateJobApplication(ctx context.Context, in JobApplicationInput) (*models.JobApplication, error) {
	caregiverUserID, jobID, dateApplied, err := parseApplicationFields(in)
	if err != nil {
		return nil, err
	}

	application := &models.JobApplication{
		CaregiverUserID: caregiverUserID,
		JobID:           jobID,
		DateApplied:     dateApplied,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, tailorWriteError(err, duplicateApplicationMessage, applicationFKMessage)
	}
	return application, nil
}

// UpdateJobApplication overwrites every field of the application addressed by
// the old key, including moving it to a different (caregiver, job) pair.
func (s *JobApplicationService) UpdateJobApplication(ctx context.Context, oldCaregiverUserID, oldJobID uint, in JobApplicationInput) (*models.JobApplication, error) {
	caregiverUserID, jobID, dateApplied, err := parseApplicationFields(in)
	if err != nil {
		return nil, err
	}

	application := &models.JobApplication{
		CaregiverUserID: caregiverUserID,
		JobID:           jobID,
		DateApplied:     dateApplied,
	}
	if err := s.applicationRepo.Update(ctx, oldCaregiverUserID, oldJobID, application); err != nil {
		return nil, tailorWriteError(err, duplicateApplicationMessage, applicationFKMessage)
	}
	return s.applicationRepo.GetByKey(ctx, caregiverUserID, jobID)
}

func (s *JobApplicationService) DeleteJobApplication(ctx context.Context, caregiverUserID, jobID uint) error {
	return s.applicationRepo.Delete(ctx, caregiverUserID, jobID)
}

func parseApplicationFields(in JobApplicationInput) (uint, uint, *time.Time, error) {
	caregiverUserID, err := validation.RequiredID("caregiver_user_id", in.CaregiverUserID)
	if err != nil {
		return 0, 0, nil, err
	}
	jobID, err := validation.RequiredID("job_id", in.JobID)
	if err != nil {
		return 0, 0, nil, err
	}
	dateApplied, err := validation.OptionalDate(in.DateApplied)
	if err != nil {
		return 0, 0, nil, err
	}
	return caregiverUserID, jobID, dateApplied, nil
}
