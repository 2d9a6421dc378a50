package domain

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrTodoNotFound     = errors.New("todo not found")
)
