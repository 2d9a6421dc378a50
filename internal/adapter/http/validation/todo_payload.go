package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

const (
	MaxTodoTitleLength       = 200
	MaxTodoDescriptionLength = 1000
)

var (
	ErrInvalidTodoPayload     = errors.New("invalid todo payload")
	ErrInvalidTodoTitle       = errors.New("todo title must be a non-empty string of at most 200 characters")
	ErrInvalidTodoDescription = errors.New("todo description must be at most 1000 characters")
	ErrInvalidTodoDueDate     = errors.New("due date must be a valid YYYY-MM-DD date")
	ErrInvalidTodoCategoryID  = errors.New("category id must be a non-empty string")
	ErrInvalidTodoCompleted   = errors.New("completed must be a boolean")
)

func todoTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > MaxTodoTitleLength {
		return "", ErrInvalidTodoTitle
	}
	return title, nil
}

func todoDescription(description string) (string, error) {
	if utf8.RuneCountInString(description) > MaxTodoDescriptionLength {
		return "", ErrInvalidTodoDescription
	}
	return strings.TrimSpace(description), nil
}

// DueDate parses YYYY-MM-DD and rejects impossible dates such as 2025-02-30.
func DueDate(value string) (time.Time, error) {
	parsed, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidTodoDueDate
	}
	return parsed, nil
}

func todoCategoryID(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrInvalidTodoCategoryID
	}
	return value, nil
}

func BuildCreateTodoInput(req dto.CreateTodoRequest, raw map[string]json.RawMessage) (domain.CreateTodoInput, error) {
	if req.Title == nil || presentButNull(raw, "title") {
		return domain.CreateTodoInput{}, ErrInvalidTodoTitle
	}
	title, err := todoTitle(*req.Title)
	if err != nil {
		return domain.CreateTodoInput{}, err
	}

	var description string
	if presentButNull(raw, "description") {
		return domain.CreateTodoInput{}, ErrInvalidTodoDescription
	}
	if req.Description != nil {
		if description, err = todoDescription(*req.Description); err != nil {
			return domain.CreateTodoInput{}, err
		}
	}

	if req.DueDate == nil || presentButNull(raw, "dueDate") {
		return domain.CreateTodoInput{}, ErrInvalidTodoDueDate
	}
	dueDate, err := DueDate(*req.DueDate)
	if err != nil {
		return domain.CreateTodoInput{}, err
	}

	if req.CategoryID == nil || presentButNull(raw, "categoryId") {
		return domain.CreateTodoInput{}, ErrInvalidTodoCategoryID
	}
	categoryID, err := todoCategoryID(*req.CategoryID)
	if err != nil {
		return domain.CreateTodoInput{}, err
	}

	return domain.CreateTodoInput{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		CategoryID:  categoryID,
	}, nil
}

func BuildUpdateTodoInput(req dto.UpdateTodoRequest, raw map[string]json.RawMessage) (domain.UpdateTodoInput, error) {
	var input domain.UpdateTodoInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTodoInput{}, ErrInvalidTodoTitle
		}
		title, err := todoTitle(*req.Title)
		if err != nil {
			return domain.UpdateTodoInput{}, err
		}
		input.Title = domain.Some(title)
	}

	if hasJSONField(raw, "description") {
		if req.Description == nil {
			return domain.UpdateTodoInput{}, ErrInvalidTodoDescription
		}
		description, err := todoDescription(*req.Description)
		if err != nil {
			return domain.UpdateTodoInput{}, err
		}
		input.Description = domain.Some(description)
	}

	if hasJSONField(raw, "dueDate") {
		if req.DueDate == nil {
			return domain.UpdateTodoInput{}, ErrInvalidTodoDueDate
		}
		dueDate, err := DueDate(*req.DueDate)
		if err != nil {
			return domain.UpdateTodoInput{}, err
		}
		input.DueDate = domain.Some(dueDate)
	}

	if hasJSONField(raw, "categoryId") {
		if req.CategoryID == nil {
			return domain.UpdateTodoInput{}, ErrInvalidTodoCategoryID
		}
		categoryID, err := todoCategoryID(*req.CategoryID)
		if err != nil {
			return domain.UpdateTodoInput{}, err
		}
		input.CategoryID = domain.Some(categoryID)
	}

	if hasJSONField(raw, "completed") {
		if req.Completed == nil {
			return domain.UpdateTodoInput{}, ErrInvalidTodoCompleted
		}
		input.Completed = domain.Some(*req.Completed)
	}

	return input, nil
}
