package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webiecellar/internal/structs"
	"webiecellar/pkg/cache"
	"webiecellar/pkg/logger"
)

func newTestService(baseURL string) *service {
	lg := logger.New("error")
	return &service{
		logger:      lg,
		cache:       cache.New(cache.Params{Logger: lg}),
		baseURL:     baseURL,
		countryHint: "Vietnam",
		client:      &http.Client{Timeout: 2 * time.Second},
	}
}

func TestResolve_StreetLevelHit(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		w.Write([]byte(`[{"lat":"10.7725","lon":"106.6980","display_name":"Đường Lê Lợi, Bến Thành, Quận 1"}]`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	got, err := svc.Resolve(context.Background(), "123 Đường Lê Lợi Phường Bến Thành Quận 1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if got.Confidence != structs.ConfidenceOptimized {
		t.Errorf("confidence = %q, want optimized", got.Confidence)
	}
	if got.Location.Lat != 10.7725 || got.Location.Lng != 106.698 {
		t.Errorf("unexpected coordinate: %+v", got.Location)
	}
	if len(queries) != 1 {
		t.Fatalf("geocoder hit %d times, want 1", len(queries))
	}
	if queries[0] != "đường lê lợi, bến thành, 1, Vietnam" {
		t.Errorf("stage-1 query = %q", queries[0])
	}
}

func TestResolve_AdministrativeFallback(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`[{"lat":"10.78","lon":"106.69","display_name":"Phường 5, Quận 3"}]`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	got, err := svc.Resolve(context.Background(), "999 đường không tồn tại, phường 5, quận 3")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if calls != 3 {
		t.Errorf("geocoder hit %d times, want 3", calls)
	}
	if got.Confidence != structs.ConfidenceAdministrative {
		t.Errorf("confidence = %q, want administrative", got.Confidence)
	}
}

func TestResolve_StageErrorAdvances(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`[{"lat":"10.80","lon":"106.73","display_name":"Thảo Điền"}]`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	got, err := svc.Resolve(context.Background(), "12 Quốc Hương, Thảo Điền")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Confidence != structs.ConfidenceExact {
		t.Errorf("confidence = %q, want exact after stage-1 failure", got.Confidence)
	}
}

func TestResolve_AllStagesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	_, err := svc.Resolve(context.Background(), "nowhere street, nowhere ward, nowhere district")
	if !errors.Is(err, structs.ErrAddressNotFound) {
		t.Errorf("Resolve() error = %v, want ErrAddressNotFound", err)
	}
}

func TestResolve_InvalidCoordinateTreatedAsMiss(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Write([]byte(`[{"lat":"not-a-number","lon":"106.70","display_name":"broken"}]`))
			return
		}
		w.Write([]byte(`[{"lat":"10.77","lon":"106.70","display_name":"Quận 1"}]`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	got, err := svc.Resolve(context.Background(), "Somewhere in District 1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Confidence != structs.ConfidenceExact {
		t.Errorf("confidence = %q, want exact (stage 1 had an unparseable candidate)", got.Confidence)
	}
}

func TestResolve_EmptyInput(t *testing.T) {
	svc := newTestService("http://127.0.0.1:0")
	_, err := svc.Resolve(context.Background(), "   ")
	if !errors.Is(err, structs.ErrBadRequest) {
		t.Errorf("Resolve() error = %v, want ErrBadRequest", err)
	}
}
