package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"webiecellar/internal/pickup"
	"webiecellar/internal/structs"
	"webiecellar/pkg/logger"
	storerepo "webiecellar/pkg/repository/memory/store_repo"
)

func newTestService() *service {
	return &service{
		repo:           storerepo.New(),
		pickup:         pickup.New(pickup.Params{Logger: logger.New("error")}),
		primaryStoreID: "webie-cellar-district1",
	}
}

func TestGetList(t *testing.T) {
	svc := newTestService()

	out, err := svc.GetList(context.Background())
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	if out.Count != len(out.Stores) || out.Count == 0 {
		t.Errorf("count = %d with %d stores", out.Count, len(out.Stores))
	}
}

func TestPrimary(t *testing.T) {
	svc := newTestService()

	loc, err := svc.Primary(context.Background())
	if err != nil {
		t.Fatalf("Primary() error = %v", err)
	}
	if loc.ID != "webie-cellar-district1" {
		t.Errorf("primary store = %q", loc.ID)
	}
	if loc.Location.Lat == 0 || loc.Location.Lng == 0 {
		t.Error("primary store has no coordinate")
	}
}

func TestGetByID_Unknown(t *testing.T) {
	svc := newTestService()

	if _, err := svc.GetByID(context.Background(), "no-such-store"); !errors.Is(err, structs.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestSlots(t *testing.T) {
	svc := newTestService()

	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	out, err := svc.Slots(context.Background(), "webie-cellar-district1", date)
	if err != nil {
		t.Fatalf("Slots() error = %v", err)
	}
	if out.StoreID != "webie-cellar-district1" || out.Date != date {
		t.Errorf("response = %+v", out)
	}
	if len(out.Slots) == 0 {
		t.Error("no slots for a future date")
	}
}

func TestSlots_UnknownStore(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Slots(context.Background(), "no-such-store", "2026-03-04"); !errors.Is(err, structs.ErrNotFound) {
		t.Errorf("Slots() error = %v, want ErrNotFound", err)
	}
}
