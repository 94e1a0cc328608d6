package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/catalog"
	"stayops/internal/domain/shared"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type stubCategoryRepo struct {
	created *catalog.Category
	stored  *catalog.Category
}

func (r *stubCategoryRepo) Create(ctx context.Context, c *catalog.Category) error {
	c.SetID(42)
	r.created = c
	return nil
}

func (r *stubCategoryRepo) Update(ctx context.Context, c *catalog.Category) error { return nil }
func (r *stubCategoryRepo) Delete(ctx context.Context, id uint) error             { return nil }

func (r *stubCategoryRepo) FindByID(ctx context.Context, id uint) (*catalog.Category, error) {
	if r.stored == nil {
		return nil, errors.NewNotFoundError("category not found")
	}
	return r.stored, nil
}

func (r *stubCategoryRepo) ListActive(ctx context.Context) ([]*catalog.Category, error) {
	return nil, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)        {}
func (noopLogger) Info(msg string, args ...any)         {}
func (noopLogger) Warn(msg string, args ...any)         {}
func (noopLogger) Error(msg string, args ...any)        {}
func (l noopLogger) With(args ...any) logger.Interface  { return l }
func (l noopLogger) Named(name string) logger.Interface { return l }

// Create answers with the row as the store returned it, not the
// in-memory aggregate that was inserted.
func TestCategoryServiceCreateRereadsStoredRow(t *testing.T) {
	now := time.Now().UTC()
	repo := &stubCategoryRepo{
		stored: catalog.ReconstructCategory(42, "Starters", "small plates", shared.StatusActive, 1, 1, now, now),
	}
	svc := NewCategoryService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), CreateCategoryRequest{
		Name:        "  Starters ",
		Description: "",
	}, 1)
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Equal(t, uint(42), resp.ID)
	assert.Equal(t, "small plates", resp.Description, "description comes from the stored row")
	assert.Equal(t, now, resp.CreatedAt)
}

func TestCategoryServiceCreateRejectsEmptyName(t *testing.T) {
	svc := NewCategoryService(&stubCategoryRepo{}, noopLogger{})

	_, err := svc.Create(context.Background(), CreateCategoryRequest{Name: "   "}, 1)
	assert.True(t, errors.IsValidationError(err))
}
