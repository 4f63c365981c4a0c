package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mingle/internal/authz"
	"mingle/internal/models"
	"mingle/internal/pagination"
	"mingle/internal/repository"
	"mingle/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileInput struct {
	ProfilePicture string  `json:"profile_picture"`
	BirthDate      *string `json:"birth_date"`
	Bio            string  `json:"bio"`
	Location       string  `json:"location"`
	Gender         string  `json:"gender"`
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Signup registers a new account with an empty attached profile. The email
// pre-check is best effort; the unique index in the store settles races.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("email taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Profile:  &models.Profile{},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials for login. A missing account and a wrong
// password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) (*pagination.Page[models.User], error) {
	return s.userRepo.List(ctx, page, pageSize)
}

// UpdateProfile patches the actor's own profile. Only fields present in the
// input change; an empty birth_date string clears the stored date.
func (s *UserService) UpdateProfile(ctx context.Context, actor authz.Actor, in UpdateProfileInput) (*models.Profile, error) {
	if err := authz.Decide(actor, authz.ActionUpdate, authz.Resource{Kind: authz.KindUser, OwnerID: actor.ID}).Err(); err != nil {
		return nil, err
	}

	profile, err := s.userRepo.GetProfile(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if in.Gender != "" {
		if err := validation.ValidateGender(in.Gender); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		profile.Gender = in.Gender
	}
	if in.ProfilePicture != "" {
		profile.ProfilePicture = in.ProfilePicture
	}
	if in.Bio != "" {
		const maxBioLen = 2000
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("bio too long (max 2000 characters)")
		}
		profile.Bio = in.Bio
	}
	if in.Location != "" {
		profile.Location = in.Location
	}
	if in.BirthDate != nil {
		if *in.BirthDate == "" {
			profile.BirthDate = nil
		} else {
			birth, err := time.Parse("2006-01-02", *in.BirthDate)
			if err != nil {
				return nil, models.NewValidationError("birth_date must be YYYY-MM-DD")
			}
			profile.BirthDate = &birth
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteUser removes an account. Owner or staff only; everything the user
// authored cascades at the store level.
func (s *UserService) DeleteUser(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := authz.Decide(actor, authz.ActionDelete, authz.Resource{Kind: authz.KindUser, OwnerID: id}).Err(); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
