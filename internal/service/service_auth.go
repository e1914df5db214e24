package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration and password-change payloads.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor of new password hashes.
	bcryptCost int

	// now is the clock used for issuance and expiry checks.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// AuthOption customises an authService.
type AuthOption func(*authService)

// WithClock replaces the wall clock used to stamp and check tokens.
func WithClock(now func() time.Time) AuthOption {
	return func(a *authService) {
		a.now = now
	}
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger, opts ...AuthOption) AuthService {
	a := &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		now:            time.Now,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Register creates a new, active user account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrValidation wrapping the validator error for a bad username or password.
//   - store.ErrLoginAlreadyExists if the username is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Register").Str("login", req.Username).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Login:        req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		IsActive:     true,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("login", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Issue authenticates username and password and returns a signed token.
//
// Errors:
//   - store.ErrNoUserWasFound if no such user exists.
//   - ErrWrongPassword if the password does not match the stored hash.
//   - ErrUserIsDisabled if the account is inactive.
func (a *authService) Issue(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.Credentials{Username: username, Password: password}); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, username)
	if err != nil {
		log.Err(err).Str("func", "*authService.Issue").Str("login", username).Msg("user search by login failed")
		return models.Token{}, fmt.Errorf("user search by login failed: %w", err)
	}

	ok, err := utils.CheckPassword(foundUser.PasswordHash, password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Issue").Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.Token{}, err
	}
	if !ok {
		log.Info().Str("func", "*authService.Issue").Int64("id", foundUser.UserID).Msg("wrong password")
		return models.Token{}, ErrWrongPassword
	}

	if !foundUser.IsActive {
		log.Info().Str("func", "*authService.Issue").Int64("id", foundUser.UserID).Msg("disabled user asked for a token")
		return models.Token{}, ErrUserIsDisabled
	}

	identity := models.Identity{UserID: foundUser.UserID, Username: foundUser.Login}
	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify validates a raw JWT string and returns the identity it carries.
//
// An expired token yields ErrTokenIsExpired; any other failure (bad
// signature, wrong issuer or algorithm, missing claims) yields
// ErrTokenIsMalformed. Account state is not consulted.
func (a *authService) Verify(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.Verify").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Identity{}, ErrTokenIsExpired
		}
		return models.Identity{}, ErrTokenIsMalformed
	}

	return token.Identity(), nil
}

func (a *authService) ChangePassword(ctx context.Context, identity models.Identity, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		return fmt.Errorf("user search by id failed: %w", err)
	}

	ok, err := utils.CheckPassword(user.PasswordHash, req.Password)
	if err != nil {
		return err
	}
	if !ok {
		log.Info().Str("func", "*authService.ChangePassword").Int64("id", user.UserID).Msg("wrong current password")
		return ErrWrongPassword
	}

	hash, err := utils.HashPassword(req.NewPassword, a.bcryptCost)
	if err != nil {
		return err
	}

	if err = a.userRepository.UpdatePassword(ctx, user.UserID, hash); err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Int64("id", user.UserID).Msg("error storing new password")
		return fmt.Errorf("error storing new password: %w", err)
	}

	return nil
}

func (a *authService) Me(ctx context.Context, identity models.Identity) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
