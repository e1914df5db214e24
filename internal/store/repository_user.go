package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db  *DB
	now func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, log *logger.Logger) UserRepository {
	log.Debug().Msg("creating user repository")
	return &userRepository{
		db:  db,
		now: time.Now,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID and CreatedAt.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	createdAt := r.now().UTC().Truncate(time.Microsecond)
	query, args, err := buildInsertUserQuery(r.db.builder(), user, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = withTx(ctx, r.db.DB, func(ctx context.Context, tx DBTX) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&user.UserID)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if isUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.CreatedAt = createdAt
	log.Debug().Str("func", "*userRepository.CreateUser").Int64("user_id", user.UserID).Msg("user created")
	return user, nil
}

// FindUserByLogin retrieves the user whose login equals login.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	query, args, err := buildSelectUserByLoginQuery(r.db.builder(), login)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "*userRepository.FindUserByLogin", query, args)
}

// FindUserByID retrieves the user with the given id.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(r.db.builder(), userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := withTx(ctx, r.db.DB, func(ctx context.Context, tx DBTX) error {
		var scanErr error
		user, scanErr = scanUser(tx.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", funcName).Msg("user not found")
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdatePassword stores a new password hash for userID.
// Returns [ErrNoUserWasFound] when no row was updated.
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordQuery(r.db.builder(), userID, passwordHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = withTx(ctx, r.db.DB, func(ctx context.Context, tx DBTX) error {
		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
