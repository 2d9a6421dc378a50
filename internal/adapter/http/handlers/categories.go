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

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list categories", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListCategories)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id := c.Param("id")
	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, id, err, apierrors.MsgFailGetCategory)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	input, err := validation.BuildCreateCategoryInput(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, validation.MessageKey(err, apierrors.MsgInvalidCategoryPayload))
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create category", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateCategory)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateCategoryRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	input, err := validation.BuildUpdateCategoryInput(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, validation.MessageKey(err, apierrors.MsgInvalidCategoryPayload))
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, input)
	if err != nil {
		h.respondServiceError(c, id, err, apierrors.MsgFailUpdateCategory)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")
	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, id, err, apierrors.MsgFailDeleteCategory)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) respondServiceError(c *gin.Context, id string, err error, failKey string) {
	if errors.Is(err, domain.ErrCategoryNotFound) {
		respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
		return
	}

	zap.L().Error("category request failed", zap.String("message_id", failKey), zap.String("category_id", id), zap.Error(err))
	respondError(c, http.StatusInternalServerError, failKey)
}
