package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cityscope/internal"
	"cityscope/internal/apperror"
	"cityscope/internal/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type UserRepository struct {
	*internal.Database
}

func NewUserRepository(database *internal.Database) *UserRepository {
	return &UserRepository{database}
}

// Insert stores a new user. The unique constraints on email and username are
// the final authority: a violation maps to the same conflict errors the
// service pre-checks produce, so a racing duplicate insert cannot slip
// through.
func (repository *UserRepository) Insert(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `INSERT INTO users (id, username, email, password_hash, firstname, lastname)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING created_at, updated_at`

	err := repository.DB.QueryRowxContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Firstname, user.Lastname,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			switch pqErr.Constraint {
			case "users_email_key":
				return apperror.Conflict("Email already registered")
			case "users_username_key":
				return apperror.Conflict("Username already taken")
			}
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (repository *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	query := `SELECT * FROM users WHERE email = $1`
	if err := repository.DB.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	return &user, nil
}

func (repository *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User

	query := `SELECT * FROM users WHERE username = $1`
	if err := repository.DB.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to query user by username: %w", err)
	}

	return &user, nil
}

func (repository *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User

	query := `SELECT * FROM users WHERE id = $1`
	if err := repository.DB.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to query user by id: %w", err)
	}

	return &user, nil
}
