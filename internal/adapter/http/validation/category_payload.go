package validation

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

const MaxCategoryNameLength = 50

var (
	ErrInvalidCategoryPayload = errors.New("invalid category payload")
	ErrInvalidCategoryName    = errors.New("category name must be a non-empty string of at most 50 characters")
	ErrInvalidCategoryColor   = errors.New("category color must be a hex code like #3b82f6")
)

var hexColorPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// CategoryName trims the name and checks its length.
func CategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return "", ErrInvalidCategoryName
	}
	return name, nil
}

func CategoryColor(color string) (string, error) {
	if !hexColorPattern.MatchString(color) {
		return "", ErrInvalidCategoryColor
	}
	return color, nil
}

func BuildCreateCategoryInput(req dto.CreateCategoryRequest, raw map[string]json.RawMessage) (domain.CreateCategoryInput, error) {
	if req.Name == nil || presentButNull(raw, "name") {
		return domain.CreateCategoryInput{}, ErrInvalidCategoryName
	}
	name, err := CategoryName(*req.Name)
	if err != nil {
		return domain.CreateCategoryInput{}, err
	}

	if req.Color == nil || presentButNull(raw, "color") {
		return domain.CreateCategoryInput{}, ErrInvalidCategoryColor
	}
	color, err := CategoryColor(*req.Color)
	if err != nil {
		return domain.CreateCategoryInput{}, err
	}

	return domain.CreateCategoryInput{Name: name, Color: color}, nil
}

func BuildUpdateCategoryInput(req dto.UpdateCategoryRequest, raw map[string]json.RawMessage) (domain.UpdateCategoryInput, error) {
	var input domain.UpdateCategoryInput

	if hasJSONField(raw, "name") {
		if req.Name == nil {
			return domain.UpdateCategoryInput{}, ErrInvalidCategoryName
		}
		name, err := CategoryName(*req.Name)
		if err != nil {
			return domain.UpdateCategoryInput{}, err
		}
		input.Name = domain.Some(name)
	}

	if hasJSONField(raw, "color") {
		if req.Color == nil {
			return domain.UpdateCategoryInput{}, ErrInvalidCategoryColor
		}
		color, err := CategoryColor(*req.Color)
		if err != nil {
			return domain.UpdateCategoryInput{}, err
		}
		input.Color = domain.Some(color)
	}

	return input, nil
}
