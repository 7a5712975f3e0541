package auth

import (
	"errors"
	"net/http"

	"webiecellar/apps/gateway/handlers/middleware"
	"webiecellar/internal/auth"
	"webiecellar/internal/responses"
	"webiecellar/internal/structs"
	"webiecellar/pkg/logger"
	"webiecellar/pkg/reply"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		Login(c *gin.Context)
		Me(c *gin.Context)
		Logout(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger      logger.Logger
		AuthService auth.Service
	}

	handler struct {
		logger      logger.Logger
		authService auth.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		authService: p.AuthService,
	}
}

func (h *handler) Login(c *gin.Context) {
	var (
		response structs.Response
		request  structs.LoginRequest
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	respond, err := h.authService.Login(ctx, request)
	if err != nil {
		if errors.Is(err, structs.ErrUnauthorized) {
			response = responses.Unauthorized
			return
		}
		h.logger.Error(ctx, " err on h.authService.Login", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = respond
}

func (h *handler) Me(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	member, err := h.authService.Me(ctx, middleware.BearerToken(c))
	if err != nil {
		response = responses.Unauthorized
		return
	}

	response = responses.Success
	response.Payload = member
}

func (h *handler) Logout(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	if err := h.authService.Logout(ctx, middleware.BearerToken(c)); err != nil {
		if errors.Is(err, structs.ErrUnauthorized) {
			response = responses.Unauthorized
			return
		}
		h.logger.Error(ctx, " err on h.authService.Logout", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
}
