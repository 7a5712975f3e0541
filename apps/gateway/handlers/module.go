package handlers

import (
	"webiecellar/apps/gateway/handlers/auth"
	"webiecellar/apps/gateway/handlers/category"
	"webiecellar/apps/gateway/handlers/middleware"
	"webiecellar/apps/gateway/handlers/order"
	"webiecellar/apps/gateway/handlers/product"
	"webiecellar/apps/gateway/handlers/store"

	"go.uber.org/fx"
)

var Module = fx.Options(
	middleware.Module,
	auth.Module,
	category.Module,
	product.Module,
	store.Module,
	order.Module,
)
