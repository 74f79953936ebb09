package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carmarket/logging/logger"
	"carmarket/net/resp"
	"carmarket/paging"
	"carmarket/service"
	"carmarket/structs"
)

// User handles the user management endpoints.
type User struct {
	users *service.User
	log   *logger.Logger
}

func NewUser(users *service.User, log *logger.Logger) *User {
	return &User{users: users, log: log}
}

// Create records a user without credentials. Registration is the path for
// accounts that need to log in.
func (h *User) Create(c *gin.Context) {
	var req structs.UserCreate
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.users.Create(c.Request.Context(), &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, user)
}

func (h *User) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, user)
}

func (h *User) List(c *gin.Context) {
	var filter structs.UserListFilter
	var params paging.Params
	if !bindQuery(c, &filter) || !bindQuery(c, &params) {
		return
	}
	page, err := h.users.List(c.Request.Context(), &filter, params)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, page)
}

func (h *User) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req structs.UserUpdate
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.users.Update(c.Request.Context(), id, &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, user)
}

// Delete removes a user. A user with orders on file responds 409.
func (h *User) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		failService(c, h.log, err)
		return
	}
	resp.NoContent(c.Writer)
}

// Profile returns the user with their orders and reviews.
func (h *User) Profile(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	profile, err := h.users.Profile(c.Request.Context(), id)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, profile)
}
