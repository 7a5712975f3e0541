package store

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"webiecellar/internal/pickup"
	"webiecellar/internal/structs"
	"webiecellar/pkg/config"
	storerepo "webiecellar/pkg/repository/memory/store_repo"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Config config.IConfig
		Repo   storerepo.Repo
		Pickup pickup.Service
	}

	Service interface {
		GetList(ctx context.Context) (structs.GetListStoreResponse, error)
		GetByID(ctx context.Context, id string) (structs.StoreLocation, error)
		Primary(ctx context.Context) (structs.StoreLocation, error)
		Slots(ctx context.Context, storeID, dateISO string) (structs.PickupSlotsResponse, error)
	}

	service struct {
		repo           storerepo.Repo
		pickup         pickup.Service
		primaryStoreID string
	}
)

// New fails fast when the configured primary store does not exist: every
// delivery quote is computed against it.
func New(p Params) (Service, error) {
	primaryID := p.Config.GetString("store.primary_id")
	if _, err := p.Repo.GetByID(context.Background(), primaryID); err != nil {
		return nil, fmt.Errorf("primary store %q not found: %w", primaryID, err)
	}

	return &service{
		repo:           p.Repo,
		pickup:         p.Pickup,
		primaryStoreID: primaryID,
	}, nil
}

func (s *service) GetList(ctx context.Context) (structs.GetListStoreResponse, error) {
	stores, err := s.repo.GetList(ctx)
	if err != nil {
		return structs.GetListStoreResponse{}, err
	}
	return structs.GetListStoreResponse{Count: len(stores), Stores: stores}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (structs.StoreLocation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Primary(ctx context.Context) (structs.StoreLocation, error) {
	return s.repo.GetByID(ctx, s.primaryStoreID)
}

func (s *service) Slots(ctx context.Context, storeID, dateISO string) (structs.PickupSlotsResponse, error) {
	loc, err := s.repo.GetByID(ctx, storeID)
	if err != nil {
		return structs.PickupSlotsResponse{}, err
	}

	slots, err := s.pickup.Slots(ctx, loc, dateISO)
	if err != nil {
		return structs.PickupSlotsResponse{}, err
	}

	return structs.PickupSlotsResponse{
		StoreID: loc.ID,
		Date:    dateISO,
		Slots:   slots,
	}, nil
}
