package productrepo

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/fx"

	"webiecellar/internal/structs"
	"webiecellar/pkg/logger"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Logger logger.Logger
}

type Repo interface {
	GetList(ctx context.Context, req structs.GetListProductRequest) (structs.GetListProductResponse, error)
	GetByID(ctx context.Context, id int64) (structs.Product, error)
}

type repo struct {
	logger   logger.Logger
	products []structs.Product
}

func New(p Params) Repo {
	return &repo{
		logger:   p.Logger,
		products: catalogSeed,
	}
}

func (r *repo) GetList(ctx context.Context, req structs.GetListProductRequest) (structs.GetListProductResponse, error) {
	filtered := make([]structs.Product, 0, len(r.products))
	search := strings.ToLower(strings.TrimSpace(req.Search))

	for _, p := range r.products {
		if req.Category != "" && req.Category != "all" && p.Category != req.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if req.MaxPrice > 0 && p.Price > req.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	switch req.Sort {
	case "price-asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case "price-desc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	}

	resp := structs.GetListProductResponse{Count: int64(len(filtered))}

	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= int64(len(filtered)) {
		resp.Products = []structs.Product{}
		return resp, nil
	}

	end := int64(len(filtered))
	if req.Limit > 0 && offset+req.Limit < end {
		end = offset + req.Limit
	}

	resp.Products = filtered[offset:end]
	return resp, nil
}

func (r *repo) GetByID(ctx context.Context, id int64) (structs.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return structs.Product{}, structs.ErrNotFound
}
