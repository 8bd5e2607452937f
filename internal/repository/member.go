package repository

import (
	"context"
	"errors"

	"carelink/internal/database"
	"carelink/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberRepository defines persistence operations for member profiles.
type MemberRepository interface {
	GetByID(ctx context.Context, userID uint) (*models.Member, error)
	Create(ctx context.Context, member *models.Member) error
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, userID uint) error
	List(ctx context.Context) ([]models.Member, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository returns a new MemberRepository implementation.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) GetByID(ctx context.Context, userID uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Preload("User").First(&member, "member_user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Member", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &member, nil
}

func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(member).Error; err != nil {
		return database.ClassifyError(err)
	}
	return nil
}

func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(member).Error; err != nil {
		return database.ClassifyError(err)
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Member{}, "member_user_id = ?", userID)
	if res.Error != nil {
		return database.ClassifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Member", userID)
	}
	return nil
}

func (r *memberRepository) List(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	err := r.db.WithContext(ctx).Preload("User").Order("member_user_id").Find(&members).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return members, nil
}
