package store

import (
	"errors"
	"net/http"

	"webiecellar/internal/responses"
	store "webiecellar/internal/store"
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
		GetListStore(c *gin.Context)
		GetPrimaryStore(c *gin.Context)
		GetSlots(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger       logger.Logger
		StoreService store.Service
	}

	handler struct {
		logger       logger.Logger
		storeService store.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:       p.Logger,
		storeService: p.StoreService,
	}
}

func (h *handler) GetListStore(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	list, err := h.storeService.GetList(ctx)
	if err != nil {
		h.logger.Error(ctx, " err on h.storeService.GetList", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = list
}

func (h *handler) GetPrimaryStore(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	respond, err := h.storeService.Primary(ctx)
	if err != nil {
		h.logger.Error(ctx, " err on h.storeService.Primary", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = respond
}

func (h *handler) GetSlots(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		date     = c.Query("date")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	respond, err := h.storeService.Slots(ctx, id, date)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.BadRequest
			return
		}
		h.logger.Error(ctx, " err on h.storeService.Slots", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = respond
}
