package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/repository"
)

type UpdateAccountInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Phone     string
	Bio       string
	AvatarURL string
	ResumeURL string
}

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, user.Profile, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, in UpdateAccountInput) (user.User, error)
	Deactivate(ctx context.Context, userID uuid.UUID) error
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.Profile, error)
}

type User struct {
	users repository.UserRepository
	now   func() time.Time
}

func NewUserUsecase(users repository.UserRepository) *User {
	return &User{users: users, now: time.Now}
}

func (u *User) GetMe(ctx context.Context, userID uuid.UUID) (user.User, user.Profile, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, user.Profile{}, apperr.NotFound("user not found")
		}
		return user.User{}, user.Profile{}, apperr.Internal(err)
	}

	profile, err := u.users.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return user.User{}, user.Profile{}, apperr.NotFound("profile not found")
		}
		return user.User{}, user.Profile{}, apperr.Internal(err)
	}
	return sanitizeUser(usr), profile, nil
}

// UpdateAccount changes the credential fields. Empty inputs leave the
// current value in place so email and password can change independently.
func (u *User) UpdateAccount(ctx context.Context, userID uuid.UUID, in UpdateAccountInput) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, apperr.NotFound("user not found")
		}
		return user.User{}, apperr.Internal(err)
	}

	if email := normalizeEmail(in.Email); email != "" {
		usr.Email = email
	}
	if in.Password != "" {
		if len(strings.TrimSpace(in.Password)) < minPasswordLength {
			return user.User{}, apperr.InvalidInput("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, apperr.Internal(err)
		}
		usr.PasswordHash = string(hash)
	}
	usr.UpdatedAt = u.now()

	if err := u.users.Update(ctx, usr); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return user.User{}, apperr.Conflict("email already registered")
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, apperr.NotFound("user not found")
		}
		return user.User{}, apperr.Internal(err)
	}
	return sanitizeUser(usr), nil
}

// Deactivate soft-deletes the account: is_active drops and the email is
// replaced with a collision-resistant tombstone so the address can be
// registered again.
func (u *User) Deactivate(ctx context.Context, userID uuid.UUID) error {
	tombstone := "deleted+" + uuid.NewString() + "@tombstone.invalid"
	if err := u.users.Deactivate(ctx, userID, tombstone, u.now()); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperr.NotFound("user not found")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	profile, err := u.users.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return user.Profile{}, apperr.NotFound("profile not found")
		}
		return user.Profile{}, apperr.Internal(err)
	}
	return profile, nil
}

func (u *User) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.Profile, error) {
	profile, err := u.users.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return user.Profile{}, apperr.NotFound("profile not found")
		}
		return user.Profile{}, apperr.Internal(err)
	}

	profile.FirstName = strings.TrimSpace(in.FirstName)
	profile.LastName = strings.TrimSpace(in.LastName)
	profile.Phone = strings.TrimSpace(in.Phone)
	profile.Bio = in.Bio
	profile.AvatarURL = strings.TrimSpace(in.AvatarURL)
	profile.ResumeURL = strings.TrimSpace(in.ResumeURL)
	profile.UpdatedAt = u.now()

	if err := u.users.UpdateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return user.Profile{}, apperr.NotFound("profile not found")
		}
		return user.Profile{}, apperr.Internal(err)
	}
	return profile, nil
}
