package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"webiecellar/internal/structs"
	"webiecellar/pkg/cache"
	"webiecellar/pkg/config"
	"webiecellar/pkg/logger"
)

var Module = fx.Provide(New)

const cacheTTL = 10 * time.Minute

type (
	Params struct {
		fx.In
		Logger logger.Logger
		Config config.IConfig
		Cache  cache.ICache
	}

	// Service resolves free-text addresses against the public geocoder,
	// trying progressively coarser query scopes.
	Service interface {
		Resolve(ctx context.Context, freeText string) (structs.GeocodeResult, error)
	}

	service struct {
		logger      logger.Logger
		cache       cache.ICache
		baseURL     string
		countryHint string
		client      *http.Client
	}
)

func New(p Params) Service {
	return &service{
		logger:      p.Logger,
		cache:       p.Cache,
		baseURL:     p.Config.GetString("geocoder.base_url"),
		countryHint: p.Config.GetString("geocoder.country_hint"),
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// place is a single geocoder candidate. Lat/Lon arrive as strings; values
// that do not parse are treated as "not found".
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (s *service) Resolve(ctx context.Context, freeText string) (structs.GeocodeResult, error) {
	input := strings.TrimSpace(freeText)
	if input == "" {
		return structs.GeocodeResult{}, structs.ErrBadRequest
	}

	clean := cleanAdministrative(input)
	street := streetPart(clean)

	type stage struct {
		query      string
		confidence string
	}

	stages := []stage{
		{query: street, confidence: structs.ConfidenceOptimized},
		{query: input, confidence: structs.ConfidenceExact},
	}
	if area, ok := lastAdminSegments(street, 2); ok {
		stages = append(stages, stage{query: area, confidence: structs.ConfidenceAdministrative})
	}

	for _, st := range stages {
		candidates := s.search(ctx, st.query)
		if len(candidates) == 0 {
			continue
		}

		lat, latErr := strconv.ParseFloat(candidates[0].Lat, 64)
		lng, lngErr := strconv.ParseFloat(candidates[0].Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}

		return structs.GeocodeResult{
			Location:    structs.Coordinate{Lat: lat, Lng: lng},
			DisplayName: candidates[0].DisplayName,
			Confidence:  st.confidence,
		}, nil
	}

	return structs.GeocodeResult{}, structs.ErrAddressNotFound
}

// search runs one geocoder query. Any transport or parse failure counts as
// zero results so the caller can move on to the next stage.
func (s *service) search(ctx context.Context, query string) []place {
	q := query
	if !strings.Contains(strings.ToLower(q), strings.ToLower(s.countryHint)) {
		q = q + ", " + s.countryHint
	}

	cacheKey := "geocode." + q
	var cached []place
	if err := s.cache.GetObj(cacheKey, &cached); err == nil {
		return cached
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", q)
	params.Set("limit", "1")
	params.Set("addressdetails", "1")

	reqURL := s.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn(ctx, "geocoder request failed", zap.String("query", q), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn(ctx, "geocoder returned non-2xx", zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return nil
	}

	var candidates []place
	if err := json.Unmarshal(body, &candidates); err != nil {
		s.logger.Warn(ctx, "failed to unmarshal geocoder response", zap.Error(err))
		return nil
	}

	_ = s.cache.SaveObj(cacheKey, candidates, cacheTTL)
	return candidates
}
