package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/mapper"
	"todolist/internal/adapter/http/validation"
	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/pkg/apierrors"
)

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	var query dto.TodoListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTodoQuery)
		return
	}

	filter, err := validation.BuildTodoFilter(query.Status, query.SortBy, query.Order)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTodoQuery)
		return
	}

	todos, err := h.todoService.ListTodos(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list todos", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListTodos)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItems(todos))
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	id := c.Param("id")
	todo, err := h.todoService.GetTodo(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, id, err, apierrors.MsgFailGetTodo)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req dto.CreateTodoRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTodoPayload)
		return
	}

	input, err := validation.BuildCreateTodoInput(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, validation.MessageKey(err, apierrors.MsgInvalidTodoPayload))
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), input)
	if err != nil {
		h.respondServiceError(c, "", err, apierrors.MsgFailCreateTodo)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateTodoRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTodoPayload)
		return
	}

	input, err := validation.BuildUpdateTodoInput(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, validation.MessageKey(err, apierrors.MsgInvalidTodoPayload))
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), id, input)
	if err != nil {
		h.respondServiceError(c, id, err, apierrors.MsgFailUpdateTodo)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id := c.Param("id")
	if err := h.todoService.DeleteTodo(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, id, err, apierrors.MsgFailDeleteTodo)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TodoHandler) ToggleTodo(c *gin.Context) {
	id := c.Param("id")
	todo, err := h.todoService.ToggleTodo(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, id, err, apierrors.MsgFailToggleTodo)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

// respondServiceError maps both not-found sentinels to 404. An unknown category reference on
// create or update is reported as a missing category.
func (h *TodoHandler) respondServiceError(c *gin.Context, id string, err error, failKey string) {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
	case errors.Is(err, domain.ErrTodoNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgTodoNotFound)
	default:
		zap.L().Error("todo request failed", zap.String("message_id", failKey), zap.String("todo_id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, failKey)
	}
}
