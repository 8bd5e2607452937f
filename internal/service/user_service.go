package service

import (
	"context"

	"carelink/internal/models"
	"carelink/internal/repository"
	"carelink/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

const duplicateEmailMessage = "This email address is already registered. Please use a different email."

type UserService struct {
	userRepo repository.UserRepository
}

// UserInput carries the submitted form fields for creating or editing a user.
type UserInput struct {
	Email              string
	GivenName          string
	Surname            string
	City               string
	PhoneNumber        string
	ProfileDescription string
	Password           string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, in UserInput) (*models.User, error) {
	email, err := validation.RequiredText("email", in.Email)
	if err != nil {
		return nil, err
	}
	givenName, err := validation.RequiredText("given_name", in.GivenName)
	if err != nil {
		return nil, err
	}
	surname, err := validation.RequiredText("surname", in.Surname)
	if err != nil {
		return nil, err
	}
	password, err := validation.RequiredText("password", in.Password)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDuplicateError(duplicateEmailMessage, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:              email,
		GivenName:          givenName,
		Surname:            surname,
		City:               in.City,
		PhoneNumber:        in.PhoneNumber,
		ProfileDescription: in.ProfileDescription,
		Password:           string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index still backstops concurrent registrations.
		return nil, tailorWriteError(err, duplicateEmailMessage, "")
	}
	return user, nil
}

// UpdateUser overwrites every editable field of the user with the submitted
// values. A blank password keeps the stored hash; a new one is rehashed.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email, err := validation.RequiredText("email", in.Email)
	if err != nil {
		return nil, err
	}
	givenName, err := validation.RequiredText("given_name", in.GivenName)
	if err != nil {
		return nil, err
	}
	surname, err := validation.RequiredText("surname", in.Surname)
	if err != nil {
		return nil, err
	}

	user.Email = email
	user.GivenName = givenName
	user.Surname = surname
	user.City = in.City
	user.PhoneNumber = in.PhoneNumber
	user.ProfileDescription = in.ProfileDescription

	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, tailorWriteError(err, duplicateEmailMessage, "")
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}
