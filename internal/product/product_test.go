package product

import (
	"context"
	"errors"
	"testing"

	"webiecellar/internal/structs"
	"webiecellar/pkg/cache"
	"webiecellar/pkg/logger"
	productrepo "webiecellar/pkg/repository/memory/product_repo"
)

type countingRepo struct {
	inner productrepo.Repo
	byID  int
}

func (c *countingRepo) GetList(ctx context.Context, req structs.GetListProductRequest) (structs.GetListProductResponse, error) {
	return c.inner.GetList(ctx, req)
}

func (c *countingRepo) GetByID(ctx context.Context, id int64) (structs.Product, error) {
	c.byID++
	return c.inner.GetByID(ctx, id)
}

func newTestService() (*service, *countingRepo) {
	lg := logger.New("error")
	repo := &countingRepo{inner: productrepo.New(productrepo.Params{Logger: lg})}
	return &service{
		logger: lg,
		cache:  cache.New(cache.Params{Logger: lg}),
		repo:   repo,
	}, repo
}

func TestGetList_DefaultPageSize(t *testing.T) {
	svc, _ := newTestService()

	out, err := svc.GetList(context.Background(), structs.GetListProductRequest{})
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	if len(out.Products) != defaultPageSize {
		t.Errorf("got %d products, want %d", len(out.Products), defaultPageSize)
	}
	if out.Count <= int64(defaultPageSize) {
		t.Errorf("count = %d, want the full catalog size", out.Count)
	}
}

func TestGetList_SecondPage(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.GetList(ctx, structs.GetListProductRequest{})
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	second, err := svc.GetList(ctx, structs.GetListProductRequest{Offset: defaultPageSize})
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}

	if int64(len(first.Products)+len(second.Products)) != first.Count {
		t.Errorf("pages hold %d products, catalog has %d", len(first.Products)+len(second.Products), first.Count)
	}
	if second.Products[0].ID == first.Products[0].ID {
		t.Error("second page repeats the first")
	}
}

func TestGetList_CategoryFilter(t *testing.T) {
	svc, _ := newTestService()

	out, err := svc.GetList(context.Background(), structs.GetListProductRequest{Category: "whiskey"})
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	if len(out.Products) == 0 {
		t.Fatal("no whiskey in the catalog")
	}
	for _, p := range out.Products {
		if p.Category != "whiskey" {
			t.Errorf("product %d has category %q", p.ID, p.Category)
		}
	}
}

func TestGetList_SortPriceAsc(t *testing.T) {
	svc, _ := newTestService()

	out, err := svc.GetList(context.Background(), structs.GetListProductRequest{Sort: "price-asc"})
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	for i := 1; i < len(out.Products); i++ {
		if out.Products[i].Price < out.Products[i-1].Price {
			t.Fatalf("products not sorted by ascending price at index %d", i)
		}
	}
}

func TestGetByID_Cached(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	first, err := svc.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	second, err := svc.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if first.ID != second.ID || first.Name != second.Name {
		t.Errorf("cached product differs: %+v vs %+v", first, second)
	}
	if repo.byID != 1 {
		t.Errorf("repo hit %d times, want 1", repo.byID)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.GetByID(context.Background(), 9999); !errors.Is(err, structs.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestGetByID_InvalidID(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.GetByID(context.Background(), 0); !errors.Is(err, structs.ErrBadRequest) {
		t.Errorf("GetByID() error = %v, want ErrBadRequest", err)
	}
}
