package product

import (
	"errors"
	"net/http"

	product "webiecellar/internal/product"
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
	Module = fx.Provide(New)
)

type (
	Handler interface {
		GetListProduct(c *gin.Context)
		GetByIDProduct(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger         logger.Logger
		ProductService product.Service
	}

	handler struct {
		logger         logger.Logger
		productService product.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:         p.Logger,
		productService: p.ProductService,
	}
}

func (h *handler) GetListProduct(c *gin.Context) {
	var (
		response structs.Response
		filter   structs.GetListProductRequest
		ctx      = c.Request.Context()

		offset   = c.Query("offset")
		limit    = c.Query("limit")
		search   = c.Query("search")
		category = c.Query("category")
		maxPrice = c.Query("max_price")
		sortBy   = c.Query("sort")
	)

	filter.Limit = utils.StrToInt64(limit)
	filter.Offset = utils.StrToInt64(offset)
	filter.Search = search
	filter.Category = category
	filter.MaxPrice = utils.StrToInt64(maxPrice)
	filter.Sort = sortBy

	defer reply.Json(c.Writer, http.StatusOK, &response)

	list, err := h.productService.GetList(ctx, filter)
	if err != nil {
		h.logger.Error(ctx, " err on h.productService.GetList", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = list
}

func (h *handler) GetByIDProduct(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	respond, err := h.productService.GetByID(ctx, utils.StrToInt64(id))
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.BadRequest
			return
		}
		h.logger.Error(ctx, " err on h.productService.GetByID", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = respond
}
