package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"webiecellar/internal/geo"
	"webiecellar/internal/structs"
	"webiecellar/pkg/config"
	"webiecellar/pkg/logger"
)

var Module = fx.Provide(New)

const (
	// Base shipping fee plus a per-kilometre rate, both in VND.
	baseFeeVND  = 15000
	perKmFeeVND = 5000

	// Kitchen/packing time added on top of the driving estimate.
	prepMinutes = 15

	// Below this straight-line distance the customer is effectively at the
	// store and no routing call is made.
	atStoreThresholdKm = 0.03

	// Deliveries beyond this distance get a long-distance warning.
	longDistanceKm = 15
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
		Config config.IConfig
	}

	// Service quotes a delivery from the customer's coordinate to a store.
	Service interface {
		ComputeDelivery(ctx context.Context, origin structs.Coordinate, store structs.StoreLocation) structs.DeliveryQuote
		Fee(distanceKm float64) int64
	}

	service struct {
		logger  logger.Logger
		baseURL string
		client  *http.Client
	}
)

func New(p Params) Service {
	return &service{
		logger:  p.Logger,
		baseURL: p.Config.GetString("router.base_url"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type (
	osrmResponse struct {
		Code   string      `json:"code"`
		Routes []osrmRoute `json:"routes"`
	}

	osrmRoute struct {
		Distance float64      `json:"distance"` // meters
		Duration float64      `json:"duration"` // seconds
		Geometry osrmGeometry `json:"geometry"`
	}

	osrmGeometry struct {
		Coordinates [][]float64 `json:"coordinates"` // [lng, lat] pairs
	}
)

// ComputeDelivery never fails: when the routing service is unreachable it
// falls back to a straight-line estimate without a polyline.
func (s *service) ComputeDelivery(ctx context.Context, origin structs.Coordinate, store structs.StoreLocation) structs.DeliveryQuote {
	direct := geo.DistanceKm(origin.Lat, origin.Lng, store.Location.Lat, store.Location.Lng)
	if direct < atStoreThresholdKm {
		return structs.DeliveryQuote{AtStore: true}
	}

	quote, err := s.route(ctx, origin, store.Location)
	if err != nil {
		s.logger.Warn(ctx, "routing failed, using straight-line estimate", zap.Error(err))
		quote = structs.DeliveryQuote{
			Info: structs.DeliveryInfo{
				DistanceKm: direct,
				EtaMinutes: int(math.Ceil(direct*3)) + prepMinutes,
			},
		}
	}

	quote.LongDistance = quote.Info.DistanceKm > longDistanceKm
	return quote
}

// Fee is the shipping fee in VND, rounded to the nearest thousand.
func (s *service) Fee(distanceKm float64) int64 {
	return int64(math.Round((baseFeeVND+distanceKm*perKmFeeVND)/1000)) * 1000
}

func (s *service) route(ctx context.Context, from, to structs.Coordinate) (structs.DeliveryQuote, error) {
	reqURL := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		s.baseURL, from.Lng, from.Lat, to.Lng, to.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return structs.DeliveryQuote{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return structs.DeliveryQuote{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return structs.DeliveryQuote{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return structs.DeliveryQuote{}, fmt.Errorf("router returned status %d", resp.StatusCode)
	}

	var parsed osrmResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return structs.DeliveryQuote{}, err
	}
	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return structs.DeliveryQuote{}, fmt.Errorf("router found no route (code %q)", parsed.Code)
	}

	route := parsed.Routes[0]
	polyline := make([]structs.Coordinate, 0, len(route.Geometry.Coordinates))
	for _, pair := range route.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		polyline = append(polyline, structs.Coordinate{Lat: pair[1], Lng: pair[0]})
	}

	return structs.DeliveryQuote{
		Info: structs.DeliveryInfo{
			DistanceKm: math.Round(route.Distance/100) / 10,
			EtaMinutes: int(math.Ceil(route.Duration/60)) + prepMinutes,
		},
		Polyline: polyline,
	}, nil
}
