package internal

import (
	"webiecellar/internal/auth"
	"webiecellar/internal/category"
	"webiecellar/internal/delivery"
	"webiecellar/internal/geocode"
	"webiecellar/internal/orderflow"
	"webiecellar/internal/pickup"
	"webiecellar/internal/product"
	"webiecellar/internal/store"

	"go.uber.org/fx"
)

var Module = fx.Options(
	auth.Module,
	category.Module,
	delivery.Module,
	geocode.Module,
	orderflow.Module,
	pickup.Module,
	product.Module,
	store.Module,
)
