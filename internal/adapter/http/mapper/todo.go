package mapper

import (
	"time"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	return dto.TodoItem{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		DueDate:     todo.DueDate.Format(domain.DateLayout),
		CategoryID:  todo.CategoryID,
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   todo.UpdatedAt.Format(time.RFC3339),
	}
}
