package validation

import (
	"errors"

	"todolist/internal/core/domain"
)

var ErrInvalidTodoQuery = errors.New("invalid todo query")

// BuildTodoFilter maps the list query parameters. Empty values fall back to the defaults.
func BuildTodoFilter(status, sortBy, order string) (domain.TodoFilter, error) {
	filter := domain.DefaultTodoFilter()

	switch domain.TodoStatus(status) {
	case "":
	case domain.TodoStatusAll, domain.TodoStatusActive, domain.TodoStatusCompleted:
		filter.Status = domain.TodoStatus(status)
	default:
		return domain.TodoFilter{}, ErrInvalidTodoQuery
	}

	switch domain.TodoSortField(sortBy) {
	case "":
	case domain.TodoSortByCreatedAt, domain.TodoSortByDueDate:
		filter.SortBy = domain.TodoSortField(sortBy)
	default:
		return domain.TodoFilter{}, ErrInvalidTodoQuery
	}

	switch domain.SortOrder(order) {
	case "":
	case domain.SortOrderAsc, domain.SortOrderDesc:
		filter.Order = domain.SortOrder(order)
	default:
		return domain.TodoFilter{}, ErrInvalidTodoQuery
	}

	return filter, nil
}
