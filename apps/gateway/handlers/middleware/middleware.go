package middleware

import (
	"strings"

	"webiecellar/internal/auth"
	"webiecellar/internal/responses"
	"webiecellar/internal/structs"
	"webiecellar/pkg/logger"
	"webiecellar/pkg/reply"
	"webiecellar/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(NewMiddleware)
)

// Context keys set by CheckAuth for downstream handlers.
const (
	KeyMemberEmail = "member_email"
	KeyMemberName  = "member_name"
)

type (
	Middleware interface {
		CheckAuth() gin.HandlerFunc
		Ctx() gin.HandlerFunc
	}

	Params struct {
		fx.In

		Logger  logger.Logger
		AuthSvc auth.Service
	}

	mw struct {
		logger  logger.Logger
		authSvc auth.Service
	}
)

func NewMiddleware(params Params) Middleware {
	return &mw{
		logger:  params.Logger,
		authSvc: params.AuthSvc,
	}
}

// BearerToken extracts the session token from the Authorization header.
func BearerToken(c *gin.Context) string {
	return strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
}

func (m *mw) CheckAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			response structs.Response
			ctx      = c.Request.Context()
		)

		token := BearerToken(c)
		if utils.StrEmpty(token) {
			m.logger.Warn(ctx, " empty auth token")
			response = responses.Unauthorized

			c.Abort()
			reply.Json(c.Writer, responses.UnauthorizedCode, &response)
			return
		}

		member, err := m.authSvc.Me(ctx, token)
		if err != nil {
			m.logger.Warn(ctx, " invalid session token", zap.Error(err))
			response = responses.Unauthorized

			c.Abort()
			reply.Json(c.Writer, responses.UnauthorizedCode, &response)
			return
		}

		c.Set(KeyMemberEmail, member.Email)
		c.Set(KeyMemberName, member.Name)

		c.Next()
	}
}

func (m *mw) Ctx() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := m.logger.Context(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
