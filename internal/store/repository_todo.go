package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoRepository is the SQL implementation of [TodoRepository] over the
// "todos" table. Each method runs in its own transaction.
type todoRepository struct {
	db *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by db.
func NewTodoRepository(db *DB, log *logger.Logger) TodoRepository {
	log.Debug().Msg("creating todo repository")
	return &todoRepository{db: db}
}

// ListTodos returns every todo of ownerID ordered by id. An owner without
// todos gets an empty, non-nil slice.
func (r *todoRepository) ListTodos(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTodosQuery(r.db.builder(), ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	todos := make([]models.Todo, 0)
	err = withTx(ctx, r.db.DB, func(ctx context.Context, tx DBTX) error {
		rows, queryErr := tx.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			todo, scanErr := scanTodo(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			todos = append(todos, todo)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ListTodos").Int64("owner_id", ownerID).Msg("error listing todos")
		return nil, err
	}

	return todos, nil
}

// GetTodo returns the todo todoID if it belongs to ownerID.
func (r *todoRepository) GetTodo(ctx context.Context, ownerID, todoID int64) (models.Todo, error) {
	query, args, err := buildGetTodoQuery(r.db.builder(), ownerID, todoID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTodo(ctx, "*todoRepository.GetTodo", query, args)
}

// CreateTodo inserts todo and returns it with the assigned id.
// An owner that does not exist yields [ErrNoUserWasFound].
func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTodoQuery(r.db.builder(), todo)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = withTx(ctx, r.db.DB, func(ctx context.Context, tx DBTX) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&todo.ID)
	})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Int64("owner_id", todo.OwnerID).Msg("error inserting todo")
		if isForeignKeyViolation(err) {
			return models.Todo{}, ErrNoUserWasFound
		}
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "*todoRepository.CreateTodo").Int64("todo_id", todo.ID).Msg("todo created")
	return todo, nil
}

// UpdateTodo overwrites title, description, priority and complete of the
// todo matching todo.ID and todo.OwnerID in a single statement.
func (r *todoRepository) UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	query, args, err := buildUpdateTodoQuery(r.db.builder(), todo)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTodo(ctx, "*todoRepository.UpdateTodo", query, args)
}

// DeleteTodo removes the todo matching todoID and ownerID and returns it.
func (r *todoRepository) DeleteTodo(ctx context.Context, ownerID, todoID int64) (models.Todo, error) {
	query, args, err := buildDeleteTodoQuery(r.db.builder(), ownerID, todoID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTodo(ctx, "*todoRepository.DeleteTodo", query, args)
}

// queryTodo runs a statement returning at most one todo row. No row means
// the todo is absent or owned by someone else.
func (r *todoRepository) queryTodo(ctx context.Context, funcName, query string, args []any) (models.Todo, error) {
	log := logger.FromContext(ctx)

	var todo models.Todo
	err := withTx(ctx, r.db.DB, func(ctx context.Context, tx DBTX) error {
		var scanErr error
		todo, scanErr = scanTodo(tx.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", funcName).Msg("todo not found")
		return models.Todo{}, ErrTodoNotFound
	case errors.Is(err, ErrBeginningTransaction), errors.Is(err, ErrCommitingTransaction):
		log.Err(err).Str("func", funcName).Msg("transaction error")
		return models.Todo{}, err
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error querying todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return todo, nil
}
