package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/funfriday/backend/internal/service"
	"github.com/funfriday/backend/pkg/resp"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// validation -> 400, access denied -> 403, not found -> 404, anything else
// (backend unavailable included) -> 500.
func writeServiceError(c *gin.Context, err error) {
	if verr, ok := service.IsValidation(err); ok {
		resp.BadRequest(c, verr.Message)
		return
	}
	if errors.Is(err, service.ErrAccessDenied) {
		resp.Forbidden(c, "access denied")
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		resp.NotFound(c, "not found")
		return
	}
	resp.ServerError(c, err)
}
