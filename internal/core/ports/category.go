package ports

import (
	"context"

	"todolist/internal/core/domain"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, input domain.UpdateCategoryInput) (domain.Category, error)
	// DeleteCategory also removes every todo referencing the category.
	DeleteCategory(ctx context.Context, id string) error
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, input domain.UpdateCategoryInput) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
