package structs

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("no rows in result set")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrAddressNotFound     = errors.New("address not found")
	ErrMissingDeliveryInfo = errors.New("delivery info missing")
	ErrPermissionDenied    = errors.New("session does not belong to user")
	ErrSessionNotFound     = errors.New("order flow session not found")
	ErrStaleRequest        = errors.New("stale request superseded by newer input")
	ErrProcessing          = errors.New("another request is already processing")
	ErrStoreClosed         = errors.New("store closed on requested date")
	ErrSlotUnavailable     = errors.New("pickup slot unavailable")
)
