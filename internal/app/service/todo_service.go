package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type TodoService struct {
	todoRepository     ports.TodoRepository
	categoryRepository ports.CategoryRepository
}

func NewTodoService(todoRepository ports.TodoRepository, categoryRepository ports.CategoryRepository) *TodoService {
	return &TodoService{
		todoRepository:     todoRepository,
		categoryRepository: categoryRepository,
	}
}

// ListTodos filters by completion status, then sorts stably so todos with equal keys keep
// their insertion order.
func (s *TodoService) ListTodos(ctx context.Context, filter domain.TodoFilter) ([]domain.Todo, error) {
	todos, err := s.todoRepository.ListTodos(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Todo, 0, len(todos))
	for _, todo := range todos {
		if filter.Matches(todo) {
			filtered = append(filtered, todo)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := sortKey(filtered[i], filter.SortBy), sortKey(filtered[j], filter.SortBy)
		if filter.Order == domain.SortOrderAsc {
			return a.Before(b)
		}
		return a.After(b)
	})

	return filtered, nil
}

func (s *TodoService) GetTodo(ctx context.Context, id string) (domain.Todo, error) {
	return s.todoRepository.GetTodo(ctx, id)
}

func (s *TodoService) CreateTodo(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error) {
	if err := s.ensureCategory(ctx, input.CategoryID); err != nil {
		return domain.Todo{}, err
	}
	return s.todoRepository.CreateTodo(ctx, input)
}

func (s *TodoService) UpdateTodo(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error) {
	if categoryID, ok := input.CategoryID.Get(); ok {
		if err := s.ensureCategory(ctx, categoryID); err != nil {
			return domain.Todo{}, err
		}
	}
	return s.todoRepository.UpdateTodo(ctx, id, input)
}

func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	return s.todoRepository.DeleteTodo(ctx, id)
}

func (s *TodoService) ToggleTodo(ctx context.Context, id string) (domain.Todo, error) {
	return s.todoRepository.ToggleTodo(ctx, id)
}

func (s *TodoService) ensureCategory(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepository.GetCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("todo category %q: %w", categoryID, err)
	}
	return nil
}

func sortKey(todo domain.Todo, field domain.TodoSortField) time.Time {
	if field == domain.TodoSortByDueDate {
		return todo.DueDate
	}
	return todo.CreatedAt
}

var _ ports.TodoService = (*TodoService)(nil)
