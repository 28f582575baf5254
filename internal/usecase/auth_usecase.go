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
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/jwt"
	"github.com/Ankit73-bit/job-portal-backend/internal/repository"
)

const minPasswordLength = 8

type RegisterInput struct {
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
	now   func() time.Time
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc, now: time.Now}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return user.User{}, TokenPair{}, apperr.InvalidInput("email is required")
	}
	if len(strings.TrimSpace(in.Password)) < minPasswordLength {
		return user.User{}, TokenPair{}, apperr.InvalidInput("password must be at least 8 characters")
	}
	// ADMIN accounts are provisioned out of band, never self-assigned.
	role := user.Role(in.Role)
	if role != user.RoleJobSeeker && role != user.RoleEmployer {
		return user.User{}, TokenPair{}, apperr.InvalidInput("role must be JOB_SEEKER or EMPLOYER")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, TokenPair{}, apperr.Internal(err)
	}

	now := u.now()
	usr := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := user.Profile{
		ID:        uuid.New(),
		UserID:    usr.ID,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.users.Create(ctx, usr, profile); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return user.User{}, TokenPair{}, apperr.Conflict("email already registered")
		}
		return user.User{}, TokenPair{}, apperr.Internal(err)
	}

	pair, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return sanitizeUser(usr), pair, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, TokenPair{}, apperr.Unauthorized("invalid credentials")
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, TokenPair{}, apperr.Unauthorized("invalid credentials")
		}
		return user.User{}, TokenPair{}, apperr.Internal(err)
	}
	if !usr.IsActive {
		return user.User{}, TokenPair{}, apperr.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, TokenPair{}, apperr.Unauthorized("invalid credentials")
	}

	pair, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return sanitizeUser(usr), pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, apperr.Unauthorized("refresh token required")
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, apperr.Unauthorized("refresh token expired")
		}
		return TokenPair{}, apperr.Unauthorized("invalid refresh token")
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, apperr.Unauthorized("invalid refresh token")
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TokenPair{}, apperr.Unauthorized("invalid refresh token")
		}
		return TokenPair{}, apperr.Internal(err)
	}
	if !usr.IsActive {
		return TokenPair{}, apperr.Unauthorized("account is deactivated")
	}

	return u.issueTokens(usr)
}

func (u *Auth) issueTokens(usr user.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email, string(usr.Role))
	if err != nil {
		return TokenPair{}, apperr.Internal(err)
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return TokenPair{}, apperr.Internal(err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
