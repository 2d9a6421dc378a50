package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"todolist/internal/adapter/http/middleware"
	"todolist/pkg/apierrors"
)

func respondError(c *gin.Context, status int, msgKey string) {
	c.AbortWithStatusJSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}

// bindJSON decodes the body into req and also returns the raw object, so callers can tell
// an omitted field from an explicit null.
func bindJSON(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		return nil, err
	}
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		return nil, err
	}
	return raw, nil
}
