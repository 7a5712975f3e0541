package storerepo

import (
	"context"
	"time"

	"go.uber.org/fx"

	"webiecellar/internal/structs"
)

var Module = fx.Provide(New)

type Repo interface {
	GetList(ctx context.Context) ([]structs.StoreLocation, error)
	GetByID(ctx context.Context, id string) (structs.StoreLocation, error)
}

type repo struct {
	stores []structs.StoreLocation
}

// weekHours mirrors the storefront opening schedule: weekdays 9-21,
// Friday/Saturday 9-22, Sunday 10-22.
var weekHours = map[time.Weekday]structs.OpenHours{
	time.Sunday:    {Open: 10, Close: 22},
	time.Monday:    {Open: 9, Close: 21},
	time.Tuesday:   {Open: 9, Close: 21},
	time.Wednesday: {Open: 9, Close: 21},
	time.Thursday:  {Open: 9, Close: 21},
	time.Friday:    {Open: 9, Close: 22},
	time.Saturday:  {Open: 9, Close: 22},
}

func New() Repo {
	return &repo{
		stores: []structs.StoreLocation{
			{
				ID:       "webie-cellar-district1",
				Name:     "Webie Cellar — District 1 Flagship",
				Address:  "42 Đồng Khởi, Phường Bến Nghé, Quận 1, TP. Hồ Chí Minh",
				Location: structs.Coordinate{Lat: 10.776389, Lng: 106.701139},
				Phone:    "+84 28 3822 4041",
				Hours:    weekHours,
			},
			{
				ID:       "webie-cellar-thao-dien",
				Name:     "Webie Cellar — Thảo Điền",
				Address:  "12 Quốc Hương, Phường Thảo Điền, TP. Thủ Đức, TP. Hồ Chí Minh",
				Location: structs.Coordinate{Lat: 10.803511, Lng: 106.733906},
				Phone:    "+84 28 3744 6688",
				Hours:    weekHours,
			},
		},
	}
}

func (r *repo) GetList(ctx context.Context) ([]structs.StoreLocation, error) {
	return r.stores, nil
}

func (r *repo) GetByID(ctx context.Context, id string) (structs.StoreLocation, error) {
	for _, s := range r.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return structs.StoreLocation{}, structs.ErrNotFound
}
