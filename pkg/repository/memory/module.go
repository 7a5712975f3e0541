package memory

import (
	categoryrepo "webiecellar/pkg/repository/memory/category_repo"
	productrepo "webiecellar/pkg/repository/memory/product_repo"
	storerepo "webiecellar/pkg/repository/memory/store_repo"

	"go.uber.org/fx"
)

var Module = fx.Options(
	productrepo.Module,
	categoryrepo.Module,
	storerepo.Module,
)
