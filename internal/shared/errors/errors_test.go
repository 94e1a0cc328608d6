package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"mysql", stderrors.New("Error 1062 (23000): Duplicate entry 'IN' for key 'countries.country_code'"), true},
		{"postgres", stderrors.New(`pq: duplicate key value violates unique constraint "countries_code_key"`), true},
		{"sqlite", stderrors.New("UNIQUE constraint failed: countries.country_code"), true},
		{"wrapped", fmt.Errorf("failed to create country: %w", stderrors.New("UNIQUE constraint failed: countries.country_code")), true},
		{"unrelated", stderrors.New("connection refused"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateError(tt.err))
		})
	}
}

func TestIsForeignKeyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"mysql", stderrors.New("Error 1451 (23000): Cannot delete or update a parent row: a foreign key constraint fails"), true},
		{"postgres", stderrors.New(`pq: update or delete on table "states" violates foreign key constraint`), true},
		{"sqlite", stderrors.New("FOREIGN KEY constraint failed"), true},
		{"unrelated", stderrors.New("Duplicate entry"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsForeignKeyError(tt.err))
		})
	}
}

func TestAppErrorCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("x").Code)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("x").Code)
	assert.Equal(t, http.StatusBadRequest, NewConflictError("x").Code)
	assert.Equal(t, http.StatusBadRequest, NewDependencyError("x").Code)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("x").Code)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("x").Code)
}

func TestGetAppErrorUnwraps(t *testing.T) {
	inner := NewDependencyError("state has associated records")
	wrapped := fmt.Errorf("delete failed: %w", inner)

	appErr := GetAppError(wrapped)
	assert.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeDependency, appErr.Type)
	assert.True(t, IsDependencyError(wrapped))
	assert.Nil(t, GetAppError(stderrors.New("plain")))
}
