package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmailTaken      = errors.New("email already registered")
)

type UserRepository interface {
	Create(ctx context.Context, u user.User, p user.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Update(ctx context.Context, u user.User) error
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	UpdateProfile(ctx context.Context, p user.Profile) error
	Deactivate(ctx context.Context, id uuid.UUID, tombstoneEmail string, now time.Time) error
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Create inserts the account and its empty profile atomically so a
// user never exists without one.
func (r *PostgresUserRepository) Create(ctx context.Context, u user.User, p user.Profile) error {
	err := database.WithinTx(ctx, r.db, func(tx database.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO users (id, email, password_hash, role, is_active, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			u.ID, u.Email, u.PasswordHash, u.Role, u.IsActive, u.CreatedAt, u.UpdatedAt,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO profiles (id, user_id, first_name, last_name, phone, bio,
			                       avatar_url, resume_url, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			p.ID, p.UserID, p.FirstName, p.LastName, p.Phone, p.Bio,
			p.AvatarURL, p.ResumeURL, p.CreatedAt, p.UpdatedAt,
		)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func scanUser(s rowScanner) (user.User, error) {
	var u user.User
	err := s.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, is_active, created_at, updated_at
		 FROM users
		 WHERE id = $1`,
		id,
	)

	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, is_active, created_at, updated_at
		 FROM users
		 WHERE lower(email) = lower($1)`,
		email,
	)

	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE users
		 SET email = $1, password_hash = $2, updated_at = $3
		 WHERE id = $4`,
		u.Email, u.PasswordHash, u.UpdatedAt,
		u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, first_name, last_name, phone, bio, avatar_url, resume_url,
		        created_at, updated_at
		 FROM profiles
		 WHERE user_id = $1`,
		userID,
	)

	var p user.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Phone, &p.Bio,
		&p.AvatarURL, &p.ResumeURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	return p, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, p user.Profile) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE profiles
		 SET first_name = $1, last_name = $2, phone = $3, bio = $4,
		     avatar_url = $5, resume_url = $6, updated_at = $7
		 WHERE user_id = $8`,
		p.FirstName, p.LastName, p.Phone, p.Bio,
		p.AvatarURL, p.ResumeURL, p.UpdatedAt,
		p.UserID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// Deactivate tombstones the account: the email is replaced with an
// anonymized value so the address frees up for re-registration, and
// the row stays for referential integrity.
func (r *PostgresUserRepository) Deactivate(ctx context.Context, id uuid.UUID, tombstoneEmail string, now time.Time) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE users
		 SET email = $1, is_active = FALSE, updated_at = $2
		 WHERE id = $3 AND is_active = TRUE`,
		tombstoneEmail, now, id,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
