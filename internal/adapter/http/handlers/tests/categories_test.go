package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/core/domain"
	"todolist/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryRouter(serviceMock *categoryServiceMock) *gin.Engine {
	handler := handlers.NewCategoryHandler(serviceMock)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.GET("/categories", handler.ListCategories)
	api.GET("/categories/:id", handler.GetCategory)
	api.POST("/categories", handler.CreateCategory)
	api.PUT("/categories/:id", handler.UpdateCategory)
	api.DELETE("/categories/:id", handler.DeleteCategory)
	return router
}

func TestCategoryHandler_ListCategories_Success(t *testing.T) {
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)

	serviceMock := new(categoryServiceMock)
	serviceMock.On("ListCategories", mock.Anything).Return(
		[]domain.Category{
			{ID: "1", Name: "Work", Color: "#3b82f6", CreatedAt: createdAt},
			{ID: "2", Name: "Personal", Color: "#10b981", CreatedAt: createdAt},
		},
		nil,
	).Once()

	rec := serve(newCategoryRouter(serviceMock), http.MethodGet, "/api/categories", "", translator.LanguageEn)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.CategoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "1", got[0].ID)
	require.Equal(t, "Work", got[0].Name)
	require.Equal(t, "#3b82f6", got[0].Color)
	require.Equal(t, "2026-02-13T10:20:30Z", got[0].CreatedAt)
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_ListCategories_Error(t *testing.T) {
	serviceMock := new(categoryServiceMock)
	serviceMock.On("ListCategories", mock.Anything).Return(nil, errors.New("store is down")).Once()

	rec := serve(newCategoryRouter(serviceMock), http.MethodGet, "/api/categories", "", translator.LanguageEn)

	requireAPIError(t, rec, http.StatusInternalServerError, "failed to list categories")
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_GetCategory_NotFound(t *testing.T) {
	serviceMock := new(categoryServiceMock)
	serviceMock.On("GetCategory", mock.Anything, "42").Return(domain.Category{}, domain.ErrCategoryNotFound).Once()

	rec := serve(newCategoryRouter(serviceMock), http.MethodGet, "/api/categories/42", "", translator.LanguageFr)

	requireAPIError(t, rec, http.StatusNotFound, "Catégorie introuvable")
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_CreateCategory_Success(t *testing.T) {
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)

	serviceMock := new(categoryServiceMock)
	serviceMock.On("CreateCategory", mock.Anything, domain.CreateCategoryInput{Name: "Work", Color: "#3b82f6"}).Return(
		domain.Category{ID: "4", Name: "Work", Color: "#3b82f6", CreatedAt: createdAt},
		nil,
	).Once()

	rec := serve(
		newCategoryRouter(serviceMock),
		http.MethodPost,
		"/api/categories",
		`{"name":"  Work  ","color":"#3b82f6"}`,
		translator.LanguageEn,
	)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.CategoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "4", got.ID)
	require.Equal(t, "Work", got.Name)
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_CreateCategory_InvalidPayload(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed json", `{"name":`, "Invalid category payload"},
		{"name wrong type", `{"name":12,"color":"#fff"}`, "Invalid category payload"},
		{"missing name", `{"color":"#fff"}`, "Category name is required and must be 50 characters or less"},
		{"blank name", `{"name":"   ","color":"#fff"}`, "Category name is required and must be 50 characters or less"},
		{"name too long", `{"name":"` + strings.Repeat("a", 51) + `","color":"#fff"}`, "Category name is required and must be 50 characters or less"},
		{"missing color", `{"name":"Work"}`, "Valid color hex code is required (e.g., #3b82f6)"},
		{"bad color", `{"name":"Work","color":"#12345"}`, "Valid color hex code is required (e.g., #3b82f6)"},
		{"null color", `{"name":"Work","color":null}`, "Valid color hex code is required (e.g., #3b82f6)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			serviceMock := new(categoryServiceMock)

			rec := serve(newCategoryRouter(serviceMock), http.MethodPost, "/api/categories", tc.body, translator.LanguageEn)

			requireAPIError(t, rec, http.StatusBadRequest, tc.message)
			serviceMock.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
		})
	}
}

func TestCategoryHandler_UpdateCategory_OnlyProvidedFields(t *testing.T) {
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)

	serviceMock := new(categoryServiceMock)
	serviceMock.On("UpdateCategory", mock.Anything, "1", domain.UpdateCategoryInput{Color: domain.Some("#abc")}).Return(
		domain.Category{ID: "1", Name: "Work", Color: "#abc", CreatedAt: createdAt},
		nil,
	).Once()

	rec := serve(newCategoryRouter(serviceMock), http.MethodPut, "/api/categories/1", `{"color":"#abc"}`, translator.LanguageEn)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.CategoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "#abc", got.Color)
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_UpdateCategory_NullNameRejected(t *testing.T) {
	serviceMock := new(categoryServiceMock)

	rec := serve(newCategoryRouter(serviceMock), http.MethodPut, "/api/categories/1", `{"name":null}`, translator.LanguageEn)

	requireAPIError(t, rec, http.StatusBadRequest, "Category name is required and must be 50 characters or less")
	serviceMock.AssertNotCalled(t, "UpdateCategory", mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryHandler_UpdateCategory_NotFound(t *testing.T) {
	serviceMock := new(categoryServiceMock)
	serviceMock.On("UpdateCategory", mock.Anything, "missing-id", mock.Anything).
		Return(domain.Category{}, domain.ErrCategoryNotFound).Once()

	rec := serve(newCategoryRouter(serviceMock), http.MethodPut, "/api/categories/missing-id", `{"name":"Ghost"}`, translator.LanguageEn)

	requireAPIError(t, rec, http.StatusNotFound, "Category not found")
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	serviceMock := new(categoryServiceMock)
	serviceMock.On("DeleteCategory", mock.Anything, "1").Return(nil).Once()
	serviceMock.On("DeleteCategory", mock.Anything, "9").Return(domain.ErrCategoryNotFound).Once()
	router := newCategoryRouter(serviceMock)

	rec := serve(router, http.MethodDelete, "/api/categories/1", "", translator.LanguageEn)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())

	rec = serve(router, http.MethodDelete, "/api/categories/9", "", translator.LanguageEn)
	requireAPIError(t, rec, http.StatusNotFound, "Category not found")
	serviceMock.AssertExpectations(t)
}
