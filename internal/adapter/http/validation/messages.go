package validation

import (
	"errors"

	"todolist/pkg/apierrors"
)

var messageKeys = []struct {
	err error
	key string
}{
	{ErrInvalidCategoryName, apierrors.MsgInvalidCategoryName},
	{ErrInvalidCategoryColor, apierrors.MsgInvalidCategoryColor},
	{ErrInvalidCategoryPayload, apierrors.MsgInvalidCategoryPayload},
	{ErrInvalidTodoTitle, apierrors.MsgInvalidTodoTitle},
	{ErrInvalidTodoDescription, apierrors.MsgInvalidTodoDescription},
	{ErrInvalidTodoDueDate, apierrors.MsgInvalidTodoDueDate},
	{ErrInvalidTodoCategoryID, apierrors.MsgInvalidTodoCategoryID},
	{ErrInvalidTodoCompleted, apierrors.MsgInvalidTodoCompleted},
	{ErrInvalidTodoPayload, apierrors.MsgInvalidTodoPayload},
	{ErrInvalidTodoQuery, apierrors.MsgInvalidTodoQuery},
}

// MessageKey returns the translation key for a validation error, or fallback when none matches.
func MessageKey(err error, fallback string) string {
	for _, entry := range messageKeys {
		if errors.Is(err, entry.err) {
			return entry.key
		}
	}
	return fallback
}
