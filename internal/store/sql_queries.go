package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	usersTable = models.User{}.TableName()
	todosTable = models.Todo{}.TableName()
)

var (
	userColumns = []string{
		"user_id",
		"login",
		"password_hash",
		"COALESCE(name, '')",
		"COALESCE(phone_number, '')",
		"is_active",
		"created_at",
	}

	todoColumns = []string{"id", "title", "description", "priority", "complete", "owner_id"}

	returningTodo = "RETURNING id, title, description, priority, complete, owner_id"
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User, createdAt time.Time) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("login", "password_hash", "name", "phone_number", "is_active", "created_at").
		Values(user.Login, user.PasswordHash, user.Name, user.PhoneNumber, user.IsActive, createdAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildSelectUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdatePasswordQuery(b sq.StatementBuilderType, userID int64, passwordHash string) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildListTodosQuery(b sq.StatementBuilderType, ownerID int64) (string, []any, error) {
	return b.Select(todoColumns...).
		From(todosTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		ToSql()
}

func buildGetTodoQuery(b sq.StatementBuilderType, ownerID, todoID int64) (string, []any, error) {
	return b.Select(todoColumns...).
		From(todosTable).
		Where(sq.Eq{"id": todoID}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func buildInsertTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	return b.Insert(todosTable).
		Columns("title", "description", "priority", "complete", "owner_id").
		Values(todo.Title, todo.Description, todo.Priority, todo.Complete, todo.OwnerID).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	return b.Update(todosTable).
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("priority", todo.Priority).
		Set("complete", todo.Complete).
		Where(sq.Eq{"id": todo.ID}).
		Where(sq.Eq{"owner_id": todo.OwnerID}).
		Suffix(returningTodo).
		ToSql()
}

func buildDeleteTodoQuery(b sq.StatementBuilderType, ownerID, todoID int64) (string, []any, error) {
	return b.Delete(todosTable).
		Where(sq.Eq{"id": todoID}).
		Where(sq.Eq{"owner_id": ownerID}).
		Suffix(returningTodo).
		ToSql()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (models.Todo, error) {
	var todo models.Todo
	err := row.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.Priority, &todo.Complete, &todo.OwnerID)
	return todo, err
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Login, &user.PasswordHash, &user.Name, &user.PhoneNumber, &user.IsActive, &user.CreatedAt)
	return user, err
}
