package repository

import (
	"go.uber.org/fx"

	"webiecellar/pkg/repository/flowstate"
	"webiecellar/pkg/repository/memory"
)

var Module = fx.Options(
	memory.Module,
	flowstate.Module,
)
