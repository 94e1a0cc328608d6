package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stayops/internal/domain/catalog"
	"stayops/internal/infrastructure/persistence/mappers"
	"stayops/internal/infrastructure/persistence/models"
	"stayops/internal/shared/errors"
)

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) catalog.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *catalog.Category) error {
	model := r.mapper.ToModel(category)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("category already exists")
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	category.SetID(model.ID)
	return nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *catalog.Category) error {
	model := r.mapper.ToModel(category)
	result := r.db.WithContext(ctx).Model(&models.CategoryModel{}).
		Where("category_id = ?", model.ID).
		Updates(map[string]interface{}{
			"category_name": model.Name,
			"description":   model.Description,
			"status":        model.Status,
			"updated_by":    model.UpdatedBy,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}
	return nil
}

func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *CategoryRepositoryImpl) ListActive(ctx context.Context) ([]*catalog.Category, error) {
	var ms []*models.CategoryModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", 1).
		Order("category_name asc").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return r.mapper.ToEntities(ms), nil
}

// Delete removes the category after verifying no menu item uses it.
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	var dependents int64
	if err := r.db.WithContext(ctx).Model(&models.MenuItemModel{}).
		Where("category_id = ?", id).
		Count(&dependents).Error; err != nil {
		return fmt.Errorf("failed to count menu items for category: %w", err)
	}
	if dependents > 0 {
		return errors.NewDependencyError("category has associated records")
	}

	result := r.db.WithContext(ctx).Delete(&models.CategoryModel{}, id)
	if result.Error != nil {
		if errors.IsForeignKeyError(result.Error) {
			return errors.NewDependencyError("category has associated records")
		}
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}
	return nil
}
