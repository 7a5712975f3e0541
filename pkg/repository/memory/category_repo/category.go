package categoryrepo

import (
	"context"

	"go.uber.org/fx"

	"webiecellar/internal/structs"
)

var Module = fx.Provide(New)

type Repo interface {
	GetList(ctx context.Context) ([]structs.Category, error)
}

type repo struct {
	categories []structs.Category
}

func New() Repo {
	return &repo{
		categories: []structs.Category{
			{ID: "all", Label: "All Spirits"},
			{ID: "whiskey", Label: "Whiskey"},
			{ID: "red-wine", Label: "Red Wine"},
			{ID: "white-wine", Label: "White Wine"},
			{ID: "champagne", Label: "Champagne"},
			{ID: "vodka", Label: "Vodka"},
			{ID: "gin", Label: "Gin"},
			{ID: "rum", Label: "Rum"},
		},
	}
}

func (r *repo) GetList(ctx context.Context) ([]structs.Category, error) {
	return r.categories, nil
}
