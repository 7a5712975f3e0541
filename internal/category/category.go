package category

import (
	"context"

	"go.uber.org/fx"

	"webiecellar/internal/structs"
	categoryrepo "webiecellar/pkg/repository/memory/category_repo"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Repo categoryrepo.Repo
	}

	Service interface {
		GetList(ctx context.Context) ([]structs.Category, error)
	}

	service struct {
		repo categoryrepo.Repo
	}
)

func New(p Params) Service {
	return &service{repo: p.Repo}
}

func (s *service) GetList(ctx context.Context) ([]structs.Category, error) {
	return s.repo.GetList(ctx)
}
