package service

import (
	"context"

	"carelink/internal/models"
	"carelink/internal/repository"
	"carelink/internal/validation"
)

const jobMemberFKMessage = "Invalid member ID. The selected member does not exist."

type JobService struct {
	jobRepo repository.JobRepository
}

// JobInput carries the submitted form fields for a job posting.
type JobInput struct {
	MemberUserID           string
	RequiredCaregivingType string
	OtherRequirements      string
	DatePosted             string
}

func NewJobService(jobRepo repository.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

func (s *JobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	return s.jobRepo.List(ctx)
}

func (s *JobService) GetJobByID(ctx context.Context, id uint) (*models.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *JobService) CreateJob(ctx context.Context, in JobInput) (*models.Job, error) {
	memberUserID, err := validation.RequiredID("member_user_id", in.MemberUserID)
	if err != nil {
		return nil, err
	}
	requiredType, err := validation.CaregivingType(in.RequiredCaregivingType)
	if err != nil {
		return nil, err
	}
	datePosted, err := validation.OptionalDate(in.DatePosted)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		MemberUserID:           memberUserID,
		RequiredCaregivingType: requiredType,
		OtherRequirements:      in.OtherRequirements,
		DatePosted:             datePosted,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, tailorWriteError(err, "", jobMemberFKMessage)
	}
	return job, nil
}

// UpdateJob overwrites every editable field with the submitted values,
// including reassigning the posting member.
func (s *JobService) UpdateJob(ctx context.Context, id uint, in JobInput) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	memberUserID, err := validation.RequiredID("member_user_id", in.MemberUserID)
	if err != nil {
		return nil, err
	}
	requiredType, err := validation.CaregivingType(in.RequiredCaregivingType)
	if err != nil {
		return nil, err
	}
	datePosted, err := validation.OptionalDate(in.DatePosted)
	if err != nil {
		return nil, err
	}

	job.MemberUserID = memberUserID
	job.RequiredCaregivingType = requiredType
	job.OtherRequirements = in.OtherRequirements
	job.DatePosted = datePosted

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, tailorWriteError(err, "", jobMemberFKMessage)
	}
	// Reload so the returned posting carries the reassigned member.
	return s.jobRepo.GetByID(ctx, id)
}

func (s *JobService) DeleteJob(ctx context.Context, id uint) error {
	return s.jobRepo.Delete(ctx, id)
}
