package pkg

import (
	"go.uber.org/fx"

	"webiecellar/pkg/cache"
	"webiecellar/pkg/config"
	"webiecellar/pkg/logger"
	"webiecellar/pkg/redis"
	"webiecellar/pkg/reply"
	"webiecellar/pkg/repository"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	repository.Module,
	cache.Module,
	reply.Module,
	redis.Module,
)
