package service

import (
	"context"

	"carelink/internal/models"
	"carelink/internal/repository"
	"carelink/internal/validation"
)

const (
	duplicateMemberMessage = "This user already has a member profile."
	memberUserFKMessage    = "Invalid user ID. The selected user does not exist."
)

type MemberService struct {
	memberRepo repository.MemberRepository
}

// MemberInput carries the submitted form fields for a member profile.
type MemberInput struct {
	MemberUserID         string
	HouseRules           string
	DependentDescription string
}

func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

func (s *MemberService) ListMembers(ctx context.Context) ([]models.Member, error) {
	return s.memberRepo.List(ctx)
}

func (s *MemberService) GetMemberByID(ctx context.Context, userID uint) (*models.Member, error) {
	return s.memberRepo.GetByID(ctx, userID)
}

func (s *MemberService) CreateMember(ctx context.Context, in MemberInput) (*models.Member, error) {
	userID, err := validation.RequiredID("member_user_id", in.MemberUserID)
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		MemberUserID:         userID,
		HouseRules:           in.HouseRules,
		DependentDescription: in.DependentDescription,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, tailorWriteError(err, duplicateMemberMessage, memberUserFKMessage)
	}
	return member, nil
}

// UpdateMember overwrites every editable field with the submitted values.
func (s *MemberService) UpdateMember(ctx context.Context, userID uint, in MemberInput) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	member.HouseRules = in.HouseRules
	member.DependentDescription = in.DependentDescription

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, tailorWriteError(err, duplicateMemberMessage, memberUserFKMessage)
	}
	return member, nil
}

func (s *MemberService) DeleteMember(ctx context.Context, userID uint) error {
	return s.memberRepo.Delete(ctx, userID)
}
