package category

import (
	"net/http"

	category "webiecellar/internal/category"
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
		GetListCategory(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger          logger.Logger
		CategoryService category.Service
	}

	handler struct {
		logger          logger.Logger
		categoryService category.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:          p.Logger,
		categoryService: p.CategoryService,
	}
}

func (h *handler) GetListCategory(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	list, err := h.categoryService.GetList(ctx)
	if err != nil {
		h.logger.Error(ctx, " err on h.categoryService.GetList", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = list
}
