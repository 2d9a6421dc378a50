package tests

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"todolist/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func serve(router *gin.Engine, method, target, body, lang string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	require.Equal(t, code, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, code, got.ErrDetails.Code)
	require.Equal(t, message, got.ErrDetails.Message)
}
