package responses

import (
	"net/http"

	"webiecellar/internal/structs"
)

const (
	SuccessCode      = http.StatusOK
	UnauthorizedCode = http.StatusUnauthorized
	ForbiddenCode    = http.StatusForbidden
)

var (
	Success = structs.Response{
		Status:      "OK",
		Description: "success",
	}
	BadRequest = structs.Response{
		Status:      "BAD_REQUEST",
		Description: "invalid request",
	}
	NotFound = structs.Response{
		Status:      "NOT_FOUND",
		Description: "not found",
	}
	Unauthorized = structs.Response{
		Status:      "UNAUTHORIZED",
		Description: "authorization required",
	}
	Forbidden = structs.Response{
		Status:      "FORBIDDEN",
		Description: "access denied",
	}
	AddressNotFound = structs.Response{
		Status:      "ADDRESS_NOT_FOUND",
		Description: "no matching address",
	}
	MissingDeliveryInfo = structs.Response{
		Status:      "MISSING_DELIVERY_INFO",
		Description: "delivery location not selected",
	}
	Processing = structs.Response{
		Status:      "PROCESSING",
		Description: "a previous request is still processing",
	}
	InternalErr = structs.Response{
		Status:      "INTERNAL_ERROR",
		Description: "internal server error",
	}
)
