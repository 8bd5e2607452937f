package repository

import (
	"context"
	"errors"

	"carelink/internal/database"
	"carelink/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddressRepository defines persistence operations for member addresses.
type AddressRepository interface {
	GetByID(ctx context.Context, memberUserID uint) (*models.Address, error)
	Create(ctx context.Context, address *models.Address) error
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, memberUserID uint) error
	List(ctx context.Context) ([]models.Address, error)
}

type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository returns a new AddressRepository implementation.
func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) GetByID(ctx context.Context, memberUserID uint) (*models.Address, error) {
	var address models.Address
	err := r.db.WithContext(ctx).Preload("Member.User").First(&address, "member_user_id = ?", memberUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Address", memberUserID)
		}
		return nil, models.NewInternalError(err)
	}
	return &address, nil
}

func (r *addressRepository) Create(ctx context.Context, address *models.Address) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(address).Error; err != nil {
		return database.ClassifyError(err)
	}
	return nil
}

func (r *addressRepository) Update(ctx context.Context, address *models.Address) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(address).Error; err != nil {
		return database.ClassifyError(err)
	}
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, memberUserID uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Address{}, "member_user_id = ?", memberUserID)
	if res.Error != nil {
		return database.ClassifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Address", memberUserID)
	}
	return nil
}

func (r *addressRepository) List(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.WithContext(ctx).Preload("Member.User").Order("member_user_id").Find(&addresses).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return addresses, nil
}
