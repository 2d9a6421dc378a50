package tests

import (
	"context"

	"todolist/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) UpdateCategory(ctx context.Context, id string, input domain.UpdateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type todoServiceMock struct {
	mock.Mock
}

func (m *todoServiceMock) ListTodos(ctx context.Context, filter domain.TodoFilter) ([]domain.Todo, error) {
	args := m.Called(ctx, filter)

	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Error(1)
}

func (m *todoServiceMock) GetTodo(ctx context.Context, id string) (domain.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) CreateTodo(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) UpdateTodo(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) DeleteTodo(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *todoServiceMock) ToggleTodo(ctx context.Context, id string) (domain.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Todo), args.Error(1)
}
