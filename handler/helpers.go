// Package handler exposes the HTTP endpoints.
package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"carmarket/ecode"
	"carmarket/logging/logger"
	"carmarket/net/resp"
	"carmarket/service"
	"carmarket/validation"
)

// paramID parses the :id path parameter. On failure it writes a 400 and
// returns false.
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.Fail(c.Writer, resp.BadRequest(ecode.FieldIsInvalid("id")))
		return 0, false
	}
	return id, true
}

// bindJSON binds and validates the request body. On failure it writes a
// 400 with per-field messages and returns false.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if errs := validation.Errors(obj, err); len(errs) > 0 {
			resp.Fail(c.Writer, resp.BadRequest(ecode.Text(ecode.ParamErr), errs))
		} else {
			resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		}
		return false
	}
	return true
}

// bindQuery binds and validates the query string. On failure it writes a
// 400 and returns false.
func bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		if errs := validation.Errors(obj, err); len(errs) > 0 {
			resp.Fail(c.Writer, resp.BadRequest(ecode.Text(ecode.ParamErr), errs))
		} else {
			resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		}
		return false
	}
	return true
}

// failService maps a service error to its HTTP response. Unknown errors
// are logged and reported as 500.
func failService(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		resp.Fail(c.Writer, resp.NotFound(err.Error()))
	case errors.Is(err, service.ErrUserExists), errors.Is(err, service.ErrConflict):
		resp.Fail(c.Writer, resp.Conflict(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		c.Writer.Header().Set("WWW-Authenticate", "Bearer")
		resp.Fail(c.Writer, resp.UnAuthorized(err.Error()))
	default:
		log.Error(c.Request.Context(), "Request failed", "path", c.FullPath(), "error", err)
		resp.Fail(c.Writer, resp.InternalServer(ecode.Text(ecode.ServerErr)))
	}
}
