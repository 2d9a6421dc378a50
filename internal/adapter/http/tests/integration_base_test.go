package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"

	httpadapter "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/memory"
	"todolist/internal/adapter/seed"
	appservice "todolist/internal/app/service"
	"todolist/pkg/apierrors"
	"todolist/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// IntegrationSuiteBase wires the real store, services and handlers behind the router.
// The store is reset before every test.
type IntegrationSuiteBase struct {
	suite.Suite

	Store  *memory.Store
	router *gin.Engine
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	s.Store = memory.NewStore(memory.WithSeed(seed.DefaultCategories()))

	router := gin.New()
	categoryService := appservice.NewCategoryService(s.Store)
	todoService := appservice.NewTodoService(s.Store, s.Store)
	httpadapter.RegisterRoutes(
		router,
		handlers.NewHealthHandler(s.Store),
		handlers.NewCategoryHandler(categoryService),
		handlers.NewTodoHandler(todoService),
	)
	s.router = router
}

func (s *IntegrationSuiteBase) SetupTest() {
	s.Store.Reset()
}

func (s *IntegrationSuiteBase) Do(method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch value := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(value)
	default:
		encoded, err := json.Marshal(value)
		s.Require().NoError(err)
		reader = bytes.NewBuffer(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *IntegrationSuiteBase) Decode(rec *httptest.ResponseRecorder, target any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), target))
}

func (s *IntegrationSuiteBase) RequireError(rec *httptest.ResponseRecorder, code int, message string) {
	s.Require().Equal(code, rec.Code)

	var got apierrors.JsonErr
	s.Decode(rec, &got)
	s.Require().Equal(code, got.ErrDetails.Code)
	s.Require().Equal(message, got.ErrDetails.Message)
}

func (s *IntegrationSuiteBase) RequireStatus(rec *httptest.ResponseRecorder, code int) {
	s.Require().Equal(code, rec.Code, rec.Body.String())
}

