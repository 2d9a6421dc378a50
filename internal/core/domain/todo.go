package domain

import "time"

const DateLayout = "2006-01-02"

type Todo struct {
	ID          string
	Title       string
	Description string
	DueDate     time.Time
	CategoryID  string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTodoInput struct {
	Title       string
	Description string
	DueDate     time.Time
	CategoryID  string
}

// UpdateTodoInput only overwrites the fields that are set. UpdatedAt is always refreshed.
type UpdateTodoInput struct {
	Title       Optional[string]
	Description Optional[string]
	DueDate     Optional[time.Time]
	CategoryID  Optional[string]
	Completed   Optional[bool]
}

func (in UpdateTodoInput) Apply(todo Todo) Todo {
	todo.Title = in.Title.OrElse(todo.Title)
	todo.Description = in.Description.OrElse(todo.Description)
	todo.DueDate = in.DueDate.OrElse(todo.DueDate)
	todo.CategoryID = in.CategoryID.OrElse(todo.CategoryID)
	todo.Completed = in.Completed.OrElse(todo.Completed)
	return todo
}

type TodoStatus string

const (
	TodoStatusAll       TodoStatus = "all"
	TodoStatusActive    TodoStatus = "active"
	TodoStatusCompleted TodoStatus = "completed"
)

type TodoSortField string

const (
	TodoSortByCreatedAt TodoSortField = "createdAt"
	TodoSortByDueDate   TodoSortField = "dueDate"
)

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

type TodoFilter struct {
	Status TodoStatus
	SortBy TodoSortField
	Order  SortOrder
}

// DefaultTodoFilter lists every todo, newest first.
func DefaultTodoFilter() TodoFilter {
	return TodoFilter{
		Status: TodoStatusAll,
		SortBy: TodoSortByCreatedAt,
		Order:  SortOrderDesc,
	}
}

// Matches reports whether the todo passes the status filter.
func (f TodoFilter) Matches(todo Todo) bool {
	switch f.Status {
	case TodoStatusActive:
		return !todo.Completed
	case TodoStatusCompleted:
		return todo.Completed
	default:
		return true
	}
}
