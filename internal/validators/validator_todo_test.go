package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validTodoFields() models.TodoFields {
	return models.TodoFields{Title: "buy milk", Description: "two litres", Priority: 3}
}

// ---------------------------------------------------------------------------
// Boundaries
// ---------------------------------------------------------------------------

func TestTodoValidator_TitleBoundaries(t *testing.T) {
	v := NewTodoValidator()

	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"empty", "", true},
		{"2 chars", "ab", true},
		{"3 chars", "abc", false},
		{"50 chars", strings.Repeat("a", 50), false},
		{"51 chars", strings.Repeat("a", 51), true},
		{"3 multibyte runes", "дом", false},
		{"50 multibyte runes", strings.Repeat("я", 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validTodoFields()
			fields.Title = tt.title

			err := v.Validate(context.Background(), fields)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTitle)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTodoValidator_DescriptionBoundaries(t *testing.T) {
	v := NewTodoValidator()

	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"2 chars", 2, true},
		{"3 chars", 3, false},
		{"1000 chars", 1000, false},
		{"1001 chars", 1001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validTodoFields()
			fields.Description = strings.Repeat("d", tt.length)

			err := v.Validate(context.Background(), &fields)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDescription)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTodoValidator_PriorityBoundaries(t *testing.T) {
	v := NewTodoValidator()

	for priority, wantErr := range map[int]bool{-1: true, 0: true, 1: false, 3: false, 5: false, 6: true} {
		fields := validTodoFields()
		fields.Priority = priority

		err := v.Validate(context.Background(), fields)
		if wantErr {
			assert.ErrorIs(t, err, ErrInvalidPriority, "priority %d", priority)
		} else {
			assert.NoError(t, err, "priority %d", priority)
		}
	}
}

// ---------------------------------------------------------------------------
// Dispatch / scoping
// ---------------------------------------------------------------------------

func TestTodoValidator_AcceptsTodo(t *testing.T) {
	v := NewTodoValidator()
	todo := models.NewTodo(validTodoFields(), 1)

	require.NoError(t, v.Validate(context.Background(), todo))
	require.NoError(t, v.Validate(context.Background(), &todo))
}

func TestTodoValidator_ID(t *testing.T) {
	v := NewTodoValidator()

	assert.NoError(t, v.Validate(context.Background(), int64(1)))
	assert.ErrorIs(t, v.Validate(context.Background(), int64(0)), ErrInvalidTodoID)
	assert.ErrorIs(t, v.Validate(context.Background(), int64(-5)), ErrInvalidTodoID)
}

func TestTodoValidator_FieldScoping(t *testing.T) {
	v := NewTodoValidator()
	fields := validTodoFields()
	fields.Priority = 0

	assert.NoError(t, v.Validate(context.Background(), fields, FieldTitle, FieldDescription))
	assert.ErrorIs(t, v.Validate(context.Background(), fields, FieldPriority), ErrInvalidPriority)
	assert.ErrorIs(t, v.Validate(context.Background(), fields, "owner"), ErrUnknownField)
}

func TestTodoValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewTodoValidator().Validate(context.Background(), "todo"), ErrUnsupportedType)
}
