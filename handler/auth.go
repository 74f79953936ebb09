package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carmarket/logging/logger"
	"carmarket/middleware"
	"carmarket/net/resp"
	"carmarket/service"
	"carmarket/structs"
	"carmarket/validation"
)

// Auth handles registration, login and the current-user endpoint.
type Auth struct {
	auth *service.Auth
	log  *logger.Logger
}

func NewAuth(auth *service.Auth, log *logger.Logger) *Auth {
	return &Auth{auth: auth, log: log}
}

// Register creates an account and responds 201 with the public profile.
func (h *Auth) Register(c *gin.Context) {
	var req structs.AuthRegister
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, user)
}

// Token exchanges form credentials for a bearer token. The field is named
// username for OAuth2 password-grant compatibility but carries the email.
func (h *Auth) Token(c *gin.Context) {
	var req struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		if errs := validation.Errors(&req, err); len(errs) > 0 {
			resp.Fail(c.Writer, resp.BadRequest("invalid credentials form", errs))
		} else {
			resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		}
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, token)
}

// Me returns the user resolved by the auth middleware.
func (h *Auth) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Writer.Header().Set("WWW-Authenticate", "Bearer")
		resp.Fail(c.Writer, resp.UnAuthorized("not authenticated"))
		return
	}
	resp.Success(c.Writer, user)
}
