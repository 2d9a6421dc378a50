package service

import (
	"context"

	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
}

func NewCategoryService(categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepository.ListCategories(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	return s.categoryRepository.GetCategory(ctx, id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	return s.categoryRepository.CreateCategory(ctx, input)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, input domain.UpdateCategoryInput) (domain.Category, error) {
	return s.categoryRepository.UpdateCategory(ctx, id, input)
}

// DeleteCategory removes the category together with its todos.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categoryRepository.DeleteCategory(ctx, id); err != nil {
		return err
	}
	zap.L().Info("category deleted with its todos", zap.String("category_id", id))
	return nil
}

var _ ports.CategoryService = (*CategoryService)(nil)
