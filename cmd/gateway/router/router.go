package router

import (
	"context"
	"net/http"

	"webiecellar/apps/gateway/handlers/auth"
	"webiecellar/apps/gateway/handlers/category"
	"webiecellar/apps/gateway/handlers/middleware"
	"webiecellar/apps/gateway/handlers/order"
	"webiecellar/apps/gateway/handlers/product"
	"webiecellar/apps/gateway/handlers/store"
	"webiecellar/pkg/config"
	"webiecellar/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
	Auth      auth.Handler
	Category  category.Handler
	Product   product.Handler
	Store     store.Handler
	Order     order.Handler
}

func NewRouter(params Params) {
	r := gin.New()
	if proxies := params.Config.GetStringSlice("gin.trusted_proxies"); len(proxies) > 0 {
		_ = r.SetTrustedProxies(proxies)
	}
	baseUrl := "/api/v1"

	out := r.Group(baseUrl)
	out.Use(params.Ctx(), gin.Logger(), gin.Recovery())

	authGroup := out.Group("/auth")
	{
		authGroup.POST("/login", params.Auth.Login)
		authGroup.GET("/me", params.CheckAuth(), params.Auth.Me)
		authGroup.POST("/logout", params.CheckAuth(), params.Auth.Logout)
	}

	{
		out.GET("/product", params.Product.GetListProduct)
		out.GET("/product/:id", params.Product.GetByIDProduct)
		out.GET("/category", params.Category.GetListCategory)
	}

	storeGroup := out.Group("/store")
	{
		storeGroup.GET("", params.Store.GetListStore)
		storeGroup.GET("/primary", params.Store.GetPrimaryStore)
		storeGroup.GET("/:id/slots", params.Store.GetSlots)
	}

	orderGroup := out.Group("/order", params.CheckAuth())
	{
		orderGroup.POST("/flow", params.Order.StartFlow)
		orderGroup.GET("/flow/:id", params.Order.GetFlow)
		orderGroup.POST("/flow/:id/mode", params.Order.SwitchMode)
		orderGroup.POST("/flow/:id/search", params.Order.SearchAddress)
		orderGroup.POST("/flow/:id/location", params.Order.SetLocation)
		orderGroup.POST("/flow/:id/checkout", params.Order.Checkout)
		orderGroup.POST("/flow/:id/pickup", params.Order.SchedulePickup)
		orderGroup.DELETE("/flow/:id", params.Order.EndFlow)
	}

	server := http.Server{
		Addr: params.Config.GetString("server.port"),
		Handler: cors.New(cors.Options{
			AllowedHeaders:   []string{"*"},
			AllowedOrigins:   []string{"http://localhost:5173"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
			AllowCredentials: true,
			AllowOriginVaryRequestFunc: func(r *http.Request, origin string) (bool, []string) {
				return true, []string{"*"}
			},
		}).Handler(r),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Starting application")
				go func() {
					if err := server.ListenAndServe(); err != nil {
						params.Logger.Error(ctx, "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Application starting on port", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Error(ctx, "Application stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}
