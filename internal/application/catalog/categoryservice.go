package catalog

import (
	"context"

	"stayops/internal/domain/catalog"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type CategoryService struct {
	repo   catalog.CategoryRepository
	logger logger.Interface
}

func NewCategoryService(repo catalog.CategoryRepository, log logger.Interface) *CategoryService {
	return &CategoryService{repo: repo, logger: log}
}

func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest, actorID uint) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name, req.Description, actorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	// re-read so the response reflects the stored row
	created, err := s.repo.FindByID(ctx, category.ID())
	if err != nil {
		return nil, err
	}

	s.logger.Info("category created", "category_id", created.ID())
	return categoryToResponse(created), nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, req UpdateCategoryRequest, actorID uint) (*CategoryResponse, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.Update(req.Name, req.Description, statusFrom(req.Status), actorID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return categoryToResponse(category), nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*CategoryResponse, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return categoryToResponse(category), nil
}

func (s *CategoryService) List(ctx context.Context) ([]*CategoryResponse, error) {
	categories, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryToResponse(c))
	}
	return out, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("category deleted", "category_id", id)
	return nil
}

func categoryToResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		Status:      uint8(c.Status()),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}
