// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildGetTodoQuery_FiltersByIDAndOwner(t *testing.T) {
	query, args, err := buildGetTodoQuery(dollar, 1, 7)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, title, description, priority, complete, owner_id FROM todos WHERE id = $1 AND owner_id = $2", query)
	assert.Equal(t, []any{int64(7), int64(1)}, args)
}

func Test_buildGetTodoQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildGetTodoQuery(question, 1, 7)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE id = ? AND owner_id = ?")
	assert.NotContains(t, query, "$")
}

func Test_buildListTodosQuery_OrderedByID(t *testing.T) {
	query, args, err := buildListTodosQuery(dollar, 3)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(query, "WHERE owner_id = $1 ORDER BY id"), query)
	assert.Equal(t, []any{int64(3)}, args)
}

func Test_buildUpdateTodoQuery_SetsEveryFieldAndFiltersOwner(t *testing.T) {
	todo := models.Todo{ID: 7, Title: "t", Description: "d", Priority: 2, Complete: true, OwnerID: 1}

	query, args, err := buildUpdateTodoQuery(dollar, todo)
	require.NoError(t, err)

	for _, col := range []string{"title = $1", "description = $2", "priority = $3", "complete = $4"} {
		assert.Contains(t, query, col)
	}
	assert.Contains(t, query, "WHERE id = $5 AND owner_id = $6")
	assert.Contains(t, query, "RETURNING id, title")
	assert.Equal(t, []any{"t", "d", 2, true, int64(7), int64(1)}, args)
}

func Test_buildDeleteTodoQuery_Returning(t *testing.T) {
	query, args, err := buildDeleteTodoQuery(dollar, 1, 7)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "DELETE FROM todos WHERE id = $1 AND owner_id = $2"), query)
	assert.Contains(t, query, "RETURNING")
	assert.Equal(t, []any{int64(7), int64(1)}, args)
}

func Test_buildInsertTodoQuery_OwnerFromTodo(t *testing.T) {
	query, args, err := buildInsertTodoQuery(dollar, models.Todo{Title: "t", Description: "d", Priority: 1, OwnerID: 5})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO todos")
	assert.Contains(t, query, "RETURNING id")
	assert.Equal(t, int64(5), args[len(args)-1])
}

func Test_buildInsertUserQuery_NeverStoresPlaintext(t *testing.T) {
	user := models.User{Login: "alice", PasswordHash: "$2a$digest"}

	query, args, err := buildInsertUserQuery(dollar, user, time.Now())
	require.NoError(t, err)

	assert.Contains(t, query, "password_hash")
	assert.Contains(t, args, "$2a$digest")
}

func Test_buildUserQueries(t *testing.T) {
	byLogin, _, err := buildSelectUserByLoginQuery(dollar, "alice")
	require.NoError(t, err)
	assert.Contains(t, byLogin, "WHERE login = $1")

	byID, _, err := buildSelectUserByIDQuery(question, 1)
	require.NoError(t, err)
	assert.Contains(t, byID, "WHERE user_id = ?")

	update, _, err := buildUpdatePasswordQuery(dollar, 1, "h")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET password_hash = $1 WHERE user_id = $2", update)
}
