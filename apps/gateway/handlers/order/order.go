package order

import (
	"errors"
	"net/http"

	"webiecellar/apps/gateway/handlers/middleware"
	orderflow "webiecellar/internal/orderflow"
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
		StartFlow(c *gin.Context)
		GetFlow(c *gin.Context)
		SwitchMode(c *gin.Context)
		SearchAddress(c *gin.Context)
		SetLocation(c *gin.Context)
		Checkout(c *gin.Context)
		SchedulePickup(c *gin.Context)
		EndFlow(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger      logger.Logger
		FlowService orderflow.Service
	}

	handler struct {
		logger      logger.Logger
		flowService orderflow.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		flowService: p.FlowService,
	}
}

// flowResponse maps the order-flow error taxonomy onto canned responses.
// false means the error is unexpected and the caller should log it.
func flowResponse(err error) (structs.Response, bool) {
	switch {
	case errors.Is(err, structs.ErrBadRequest):
		return responses.BadRequest, true
	case errors.Is(err, structs.ErrSessionNotFound), errors.Is(err, structs.ErrNotFound):
		return responses.NotFound, true
	case errors.Is(err, structs.ErrPermissionDenied):
		return responses.Forbidden, true
	case errors.Is(err, structs.ErrAddressNotFound):
		return responses.AddressNotFound, true
	case errors.Is(err, structs.ErrMissingDeliveryInfo):
		return responses.MissingDeliveryInfo, true
	case errors.Is(err, structs.ErrProcessing), errors.Is(err, structs.ErrStaleRequest):
		return responses.Processing, true
	case errors.Is(err, structs.ErrStoreClosed), errors.Is(err, structs.ErrSlotUnavailable):
		return responses.BadRequest, true
	}
	return responses.InternalErr, false
}

func (h *handler) StartFlow(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	respond, err := h.flowService.Start(ctx, c.GetString(middleware.KeyMemberEmail))
	if err != nil {
		h.logger.Error(ctx, " err on h.flowService.Start", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = respond
}

func (h *handler) GetFlow(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	respond, err := h.flowService.Get(ctx, c.GetString(middleware.KeyMemberEmail), id)
	if err != nil {
		var mapped bool
		if response, mapped = flowResponse(err); !mapped {
			h.logger.Error(ctx, " err on h.flowService.Get", zap.Error(err))
		}
		return
	}

	response = responses.Success
	response.Payload = respond
}

func (h *handler) SwitchMode(c *gin.Context) {
	var (
		response structs.Response
		request  structs.SwitchModeRequest
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	respond, err := h.flowService.SwitchMode(ctx, c.GetString(middleware.KeyMemberEmail), id, request)
	if err != nil {
		var mapped bool
		if response, mapped = flowResponse(err); !mapped {
			h.logger.Error(ctx, " err on h.flowService.SwitchMode", zap.Error(err))
		}
		return
	}

	response = responses.Success
	response.Payload = respond
}

func (h *handler) SearchAddress(c *gin.Context) {
	var (
		response structs.Response
		request  structs.SearchAddressRequest
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	respond, err := h.flowService.SearchAddress(ctx, c.GetString(middleware.KeyMemberEmail), id, request)
	if err != nil {
		var mapped bool
		if response, mapped = flowResponse(err); !mapped {
			h.logger.Error(ctx, " err on h.flowService.SearchAddress", zap.Error(err))
		}
		if respond.ID != "" {
			// the not-found toast still carries the updated session
			response.Payload = respond
		}
		return
	}

	response = responses.Success
	response.Payload = respond
}

func (h *handler) SetLocation(c *gin.Context) {
	var (
		response structs.Response
		request  structs.SetLocationRequest
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	respond, err := h.flowService.SetLocation(ctx, c.GetString(middleware.KeyMemberEmail), id, request)
	if err != nil {
		var mapped bool
		if response, mapped = flowResponse(err); !mapped {
			h.logger.Error(ctx, " err on h.flowService.SetLocation", zap.Error(err))
		}
		return
	}

	response = responses.Success
	response.Payload = respond
}

func (h *handler) Checkout(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	respond, err := h.flowService.Checkout(ctx, c.GetString(middleware.KeyMemberEmail), id)
	if err != nil {
		var mapped bool
		if response, mapped = flowResponse(err); !mapped {
			h.logger.Error(ctx, " err on h.flowService.Checkout", zap.Error(err))
		}
		return
	}

	response = responses.Success
	response.Payload = respond
}

func (h *handler) SchedulePickup(c *gin.Context) {
	var (
		response structs.Response
		request  structs.SchedulePickupRequest
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	respond, err := h.flowService.SchedulePickup(ctx, c.GetString(middleware.KeyMemberEmail), id, request)
	if err != nil {
		var mapped bool
		if response, mapped = flowResponse(err); !mapped {
			h.logger.Error(ctx, " err on h.flowService.SchedulePickup", zap.Error(err))
		}
		return
	}

	response = responses.Success
	response.Payload = respond
}

func (h *handler) EndFlow(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	if err := h.flowService.End(ctx, c.GetString(middleware.KeyMemberEmail), id); err != nil {
		var mapped bool
		if response, mapped = flowResponse(err); !mapped {
			h.logger.Error(ctx, " err on h.flowService.End", zap.Error(err))
		}
		return
	}

	response = responses.Success
}
