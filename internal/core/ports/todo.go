package ports

import (
	"context"

	"todolist/internal/core/domain"
)

type TodoRepository interface {
	ListTodos(ctx context.Context) ([]domain.Todo, error)
	GetTodo(ctx context.Context, id string) (domain.Todo, error)
	CreateTodo(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error)
	UpdateTodo(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
	ToggleTodo(ctx context.Context, id string) (domain.Todo, error)
}

type TodoService interface {
	ListTodos(ctx context.Context, filter domain.TodoFilter) ([]domain.Todo, error)
	GetTodo(ctx context.Context, id string) (domain.Todo, error)
	CreateTodo(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error)
	UpdateTodo(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
	ToggleTodo(ctx context.Context, id string) (domain.Todo, error)
}
