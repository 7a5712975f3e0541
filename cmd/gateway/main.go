package main

import (
	"webiecellar/apps/gateway"
	"webiecellar/cmd/gateway/router"
	"webiecellar/internal"
	"webiecellar/pkg"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		gateway.Module,
		router.Module,
		pkg.Module,
		internal.Module,
	).Run()
}
