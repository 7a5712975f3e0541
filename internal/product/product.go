package product

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"

	"webiecellar/internal/structs"
	"webiecellar/pkg/cache"
	"webiecellar/pkg/logger"
	productrepo "webiecellar/pkg/repository/memory/product_repo"
)

var Module = fx.Provide(New)

const (
	defaultPageSize = 12
	maxPageSize     = 100

	detailCacheTTL = 10 * time.Minute
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
		Cache  cache.ICache
		Repo   productrepo.Repo
	}

	Service interface {
		GetList(ctx context.Context, req structs.GetListProductRequest) (structs.GetListProductResponse, error)
		GetByID(ctx context.Context, id int64) (structs.Product, error)
	}

	service struct {
		logger logger.Logger
		cache  cache.ICache
		repo   productrepo.Repo
	}
)

func New(p Params) Service {
	return &service{
		logger: p.Logger,
		cache:  p.Cache,
		repo:   p.Repo,
	}
}

func (s *service) GetList(ctx context.Context, req structs.GetListProductRequest) (structs.GetListProductResponse, error) {
	if req.Limit <= 0 {
		req.Limit = defaultPageSize
	}
	if req.Limit > maxPageSize {
		req.Limit = maxPageSize
	}
	return s.repo.GetList(ctx, req)
}

func (s *service) GetByID(ctx context.Context, id int64) (structs.Product, error) {
	if id <= 0 {
		return structs.Product{}, structs.ErrBadRequest
	}

	cacheKey := fmt.Sprintf("product.%d", id)

	var cached structs.Product
	if err := s.cache.GetObj(cacheKey, &cached); err == nil {
		return cached, nil
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return structs.Product{}, err
	}

	_ = s.cache.SaveObj(cacheKey, product, detailCacheTTL)
	return product, nil
}
