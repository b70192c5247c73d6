package service

import (
	"context"
	"fmt"
	"log"

	"cityscope/internal/apperror"
	"cityscope/internal/model"
	"cityscope/internal/ports"
	"cityscope/internal/security"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// AuthenticationService owns the session lifecycle: registration, login,
// stateless refresh-token rotation and profile retrieval.
type AuthenticationService struct {
	Users    ports.UserRepositoryInterface
	Tokens   ports.TokenIssuerInterface
	Notifier ports.NotifierInterface
}

func NewAuthenticationService(users ports.UserRepositoryInterface, tokens ports.TokenIssuerInterface, notifier ports.NotifierInterface) *AuthenticationService {
	return &AuthenticationService{
		Users:    users,
		Tokens:   tokens,
		Notifier: notifier,
	}
}

// Register validates the input, rejects duplicate email or username and
// stores the user with a bcrypt password hash. No tokens are issued; the
// caller is expected to log in separately.
func (service *AuthenticationService) Register(ctx context.Context, input model.RegisterInput) error {
	if err := validateRegister(&input); err != nil {
		return err
	}

	// Pre-checks are an optimization only; the unique constraints in the
	// store settle races between concurrent registrations.
	if _, err := service.Users.FindByEmail(ctx, input.Email); err == nil {
		return apperror.Conflict("Email already registered")
	} else if !apperror.IsKind(err, apperror.KindNotFound) {
		return fmt.Errorf("failed to check existing email: %w", err)
	}

	if _, err := service.Users.FindByUsername(ctx, input.Username); err == nil {
		return apperror.Conflict("Username already taken")
	} else if !apperror.IsKind(err, apperror.KindNotFound) {
		return fmt.Errorf("failed to check existing username: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		Firstname:    input.Firstname,
		Lastname:     input.Lastname,
	}

	if err := service.Users.Insert(ctx, user); err != nil {
		return err
	}

	if service.Notifier != nil {
		go func() {
			if err := service.Notifier.NotifyUserRegistered(user.ID, user.Username); err != nil {
				log.Printf("failed to send registration webhook: %v", err)
			}
		}()
	}

	return nil
}

// Login verifies the credentials and issues a fresh token pair. Unknown
// email and wrong password return the identical error, so the response does
// not reveal which accounts exist.
func (service *AuthenticationService) Login(ctx context.Context, input model.LoginInput) (*model.TokensPair, error) {
	if err := validateLogin(&input); err != nil {
		return nil, err
	}

	user, err := service.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.Authentication("Invalid credentials")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.Authentication("Invalid credentials")
	}

	tokensPair, err := service.Tokens.GeneratePair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return tokensPair, nil
}

// Refresh rotates a valid refresh token into a brand-new pair. The old
// refresh token is not revoked; it simply ages out of its 7-day window.
func (service *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	if refreshToken == "" {
		return nil, apperror.Authentication("Refresh token missing")
	}

	userID, err := service.Tokens.Verify(refreshToken, security.TokenRefresh)
	if err != nil {
		return nil, apperror.Forbidden("Invalid refresh token")
	}

	tokensPair, err := service.Tokens.GeneratePair(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return tokensPair, nil
}

// Profile returns the user without the password hash. The user may have been
// deleted after token issuance, in which case this is a NotFound.
func (service *AuthenticationService) Profile(ctx context.Context, userID string) (*model.UserProfile, error) {
	user, err := service.Users.FindByID(ctx, userID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return user.Profile(), nil
}
