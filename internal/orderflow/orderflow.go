package orderflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"webiecellar/internal/delivery"
	"webiecellar/internal/geocode"
	"webiecellar/internal/pickup"
	"webiecellar/internal/structs"
	"webiecellar/internal/texts"
	"webiecellar/pkg/config"
	"webiecellar/pkg/logger"
	"webiecellar/pkg/repository/flowstate"
	storerepo "webiecellar/pkg/repository/memory/store_repo"
	"webiecellar/pkg/utils"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Logger   logger.Logger
		Config   config.IConfig
		Sessions flowstate.Repo
		Stores   storerepo.Repo
		Geocoder geocode.Service
		Delivery delivery.Service
		Pickup   pickup.Service
	}

	// Service drives a user's order flow from mode selection through checkout
	// or pickup scheduling. All state lives in the session repository; every
	// call loads, mutates and writes back a single FlowSession.
	Service interface {
		Start(ctx context.Context, userID string) (structs.FlowSession, error)
		Get(ctx context.Context, userID, sessionID string) (structs.FlowSession, error)
		SwitchMode(ctx context.Context, userID, sessionID string, req structs.SwitchModeRequest) (structs.FlowSession, error)
		SearchAddress(ctx context.Context, userID, sessionID string, req structs.SearchAddressRequest) (structs.FlowSession, error)
		SetLocation(ctx context.Context, userID, sessionID string, req structs.SetLocationRequest) (structs.FlowSession, error)
		Checkout(ctx context.Context, userID, sessionID string) (structs.CheckoutResponse, error)
		SchedulePickup(ctx context.Context, userID, sessionID string, req structs.SchedulePickupRequest) (structs.PickupConfirmation, error)
		End(ctx context.Context, userID, sessionID string) error
	}

	service struct {
		logger         logger.Logger
		sessions       flowstate.Repo
		stores         storerepo.Repo
		geocoder       geocode.Service
		delivery       delivery.Service
		pickup         pickup.Service
		primaryStoreID string
	}
)

func New(p Params) Service {
	return &service{
		logger:         p.Logger,
		sessions:       p.Sessions,
		stores:         p.Stores,
		geocoder:       p.Geocoder,
		delivery:       p.Delivery,
		pickup:         p.Pickup,
		primaryStoreID: p.Config.GetString("store.primary_id"),
	}
}

func (s *service) Start(ctx context.Context, userID string) (structs.FlowSession, error) {
	sess := structs.FlowSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mode:      structs.ModeDelivery,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Set(ctx, sess); err != nil {
		return structs.FlowSession{}, err
	}
	return sess, nil
}

func (s *service) Get(ctx context.Context, userID, sessionID string) (structs.FlowSession, error) {
	return s.load(ctx, userID, sessionID)
}

// SwitchMode resets everything derived from the previous mode. The revision
// bump makes any in-flight search commit against the old mode fail as stale.
func (s *service) SwitchMode(ctx context.Context, userID, sessionID string, req structs.SwitchModeRequest) (structs.FlowSession, error) {
	sess, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return structs.FlowSession{}, err
	}

	mode, err := structs.NormalizeMode(req.Mode)
	if err != nil {
		return structs.FlowSession{}, structs.ErrBadRequest
	}
	if mode == sess.Mode {
		return sess, nil
	}

	sess.Mode = mode
	sess.ClearDelivery()
	sess.Notification = nil
	sess.Processing = false
	sess.Revision++

	if err := s.sessions.Set(ctx, sess); err != nil {
		return structs.FlowSession{}, err
	}
	return sess, nil
}

func (s *service) SearchAddress(ctx context.Context, userID, sessionID string, req structs.SearchAddressRequest) (structs.FlowSession, error) {
	sess, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return structs.FlowSession{}, err
	}
	if sess.Mode != structs.ModeDelivery {
		return structs.FlowSession{}, structs.ErrBadRequest
	}
	if strings.TrimSpace(req.Address) == "" {
		return structs.FlowSession{}, structs.ErrBadRequest
	}
	if sess.Processing {
		return structs.FlowSession{}, structs.ErrProcessing
	}

	// A new search invalidates the previous quote immediately; a failed
	// resolve must not leave a checkout-able session behind.
	sess.Processing = true
	sess.DeliveryInfo = nil
	sess.Polyline = nil
	if err := s.sessions.Set(ctx, sess); err != nil {
		return structs.FlowSession{}, err
	}
	revision := sess.Revision

	store, err := s.primaryStore(ctx)
	if err != nil {
		s.clearProcessing(ctx, sessionID)
		return structs.FlowSession{}, err
	}

	result, err := s.geocoder.Resolve(ctx, req.Address)
	if err != nil {
		sess, commitErr := s.commit(ctx, sessionID, revision, func(cur *structs.FlowSession) {
			cur.Notification = &structs.Notification{
				Type:    structs.NotificationError,
				Title:   texts.TitleNotFound,
				Message: texts.MsgNotFound,
			}
		})
		if commitErr != nil {
			return structs.FlowSession{}, commitErr
		}
		return sess, err
	}

	quote := s.delivery.ComputeDelivery(ctx, result.Location, store)

	return s.commit(ctx, sessionID, revision, func(cur *structs.FlowSession) {
		cur.Location = &structs.Coordinate{Lat: result.Location.Lat, Lng: result.Location.Lng}
		cur.AddressInput = req.Address
		cur.Confidence = result.Confidence
		cur.DeliveryInfo = &quote.Info
		cur.Polyline = quote.Polyline
		cur.Notification = searchNotification(result, quote)
	})
}

func (s *service) SetLocation(ctx context.Context, userID, sessionID string, req structs.SetLocationRequest) (structs.FlowSession, error) {
	sess, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return structs.FlowSession{}, err
	}
	if sess.Mode != structs.ModeDelivery {
		return structs.FlowSession{}, structs.ErrBadRequest
	}

	if req.Denied {
		sess.Notification = &structs.Notification{
			Type:    structs.NotificationError,
			Title:   texts.TitleLocationDenied,
			Message: texts.MsgLocationDenied,
		}
		if err := s.sessions.Set(ctx, sess); err != nil {
			return structs.FlowSession{}, err
		}
		return sess, nil
	}

	if req.Location == nil {
		return structs.FlowSession{}, structs.ErrBadRequest
	}
	switch req.Source {
	case structs.LocationSourceGeolocation, structs.LocationSourcePinDrag:
	default:
		return structs.FlowSession{}, structs.ErrBadRequest
	}
	if sess.Processing {
		return structs.FlowSession{}, structs.ErrProcessing
	}

	sess.Processing = true
	sess.DeliveryInfo = nil
	sess.Polyline = nil
	if err := s.sessions.Set(ctx, sess); err != nil {
		return structs.FlowSession{}, err
	}
	revision := sess.Revision

	store, err := s.primaryStore(ctx)
	if err != nil {
		s.clearProcessing(ctx, sessionID)
		return structs.FlowSession{}, err
	}

	quote := s.delivery.ComputeDelivery(ctx, *req.Location, store)

	return s.commit(ctx, sessionID, revision, func(cur *structs.FlowSession) {
		cur.Location = req.Location
		cur.Confidence = ""
		cur.DeliveryInfo = &quote.Info
		cur.Polyline = quote.Polyline
		cur.Notification = quoteNotification(quote)
	})
}

func (s *service) Checkout(ctx context.Context, userID, sessionID string) (structs.CheckoutResponse, error) {
	sess, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return structs.CheckoutResponse{}, err
	}
	if sess.Mode != structs.ModeDelivery {
		return structs.CheckoutResponse{}, structs.ErrBadRequest
	}
	if sess.Location == nil || sess.DeliveryInfo == nil {
		sess.Notification = &structs.Notification{
			Type:    structs.NotificationError,
			Title:   texts.TitleMissingInfo,
			Message: texts.MsgMissingInfo,
		}
		if setErr := s.sessions.Set(ctx, sess); setErr != nil {
			return structs.CheckoutResponse{}, setErr
		}
		return structs.CheckoutResponse{}, structs.ErrMissingDeliveryInfo
	}

	km := sess.DeliveryInfo.DistanceKm
	fee := s.delivery.Fee(km)

	return structs.CheckoutResponse{
		ShippingFee: fee,
		DistanceKm:  km,
		EtaMinutes:  sess.DeliveryInfo.EtaMinutes,
		Notification: structs.Notification{
			Type:    structs.NotificationSuccess,
			Title:   texts.TitleCheckout,
			Message: fmt.Sprintf(texts.MsgCheckoutFmt, utils.FCurrency(float64(fee)), km),
		},
	}, nil
}

func (s *service) SchedulePickup(ctx context.Context, userID, sessionID string, req structs.SchedulePickupRequest) (structs.PickupConfirmation, error) {
	sess, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return structs.PickupConfirmation{}, err
	}
	if sess.Mode != structs.ModePickup {
		return structs.PickupConfirmation{}, structs.ErrBadRequest
	}

	storeID := req.StoreID
	if storeID == "" {
		storeID = s.primaryStoreID
	}
	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return structs.PickupConfirmation{}, err
	}

	conf, err := s.pickup.Confirm(ctx, store, req.Date, req.Slot)
	if err != nil {
		return structs.PickupConfirmation{}, err
	}

	sess.Notification = &conf.Notification
	if err := s.sessions.Set(ctx, sess); err != nil {
		return structs.PickupConfirmation{}, err
	}
	return conf, nil
}

func (s *service) End(ctx context.Context, userID, sessionID string) error {
	if _, err := s.load(ctx, userID, sessionID); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *service) load(ctx context.Context, userID, sessionID string) (structs.FlowSession, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return structs.FlowSession{}, err
	}
	if sess.UserID != userID {
		return structs.FlowSession{}, structs.ErrPermissionDenied
	}
	return sess, nil
}

func (s *service) primaryStore(ctx context.Context) (structs.StoreLocation, error) {
	return s.stores.GetByID(ctx, s.primaryStoreID)
}

// commit reloads the session and applies mutate only when the revision is
// still the one captured before the outbound calls. A bumped revision means
// the user switched mode or issued a newer request while this one was in
// flight, so the result is discarded.
func (s *service) commit(ctx context.Context, sessionID string, revision int64, mutate func(*structs.FlowSession)) (structs.FlowSession, error) {
	cur, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return structs.FlowSession{}, err
	}
	if cur.Revision != revision {
		s.logger.Debug(ctx, "discarding stale flow result",
			zap.String("session_id", sessionID),
			zap.Int64("captured", revision),
			zap.Int64("current", cur.Revision))
		return structs.FlowSession{}, structs.ErrStaleRequest
	}

	cur.Processing = false
	mutate(&cur)
	cur.Revision++

	if err := s.sessions.Set(ctx, cur); err != nil {
		return structs.FlowSession{}, err
	}
	return cur, nil
}

func (s *service) clearProcessing(ctx context.Context, sessionID string) {
	cur, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return
	}
	cur.Processing = false
	if err := s.sessions.Set(ctx, cur); err != nil {
		s.logger.Error(ctx, "err on sessions.Set", zap.Error(err))
	}
}

// searchNotification picks the toast for a completed address search. Distance
// conditions win over geocoder confidence.
func searchNotification(result structs.GeocodeResult, quote structs.DeliveryQuote) *structs.Notification {
	if n := quoteNotification(quote); n.Type != structs.NotificationSuccess || quote.AtStore {
		return n
	}

	switch result.Confidence {
	case structs.ConfidenceAdministrative:
		// the full display name is a long administrative chain; only its
		// first segment names the pinned area
		area, _, _ := strings.Cut(result.DisplayName, ",")
		return &structs.Notification{
			Type:    structs.NotificationWarning,
			Title:   texts.TitleApproximate,
			Message: fmt.Sprintf(texts.MsgApproximateFmt, area),
		}
	case structs.ConfidenceOptimized:
		return &structs.Notification{
			Type:    structs.NotificationSuccess,
			Title:   texts.TitleStreetFound,
			Message: texts.MsgStreetFound,
		}
	default:
		return &structs.Notification{
			Type:    structs.NotificationSuccess,
			Title:   texts.TitleCheckPin,
			Message: texts.MsgCheckPin,
		}
	}
}

func quoteNotification(quote structs.DeliveryQuote) *structs.Notification {
	switch {
	case quote.AtStore:
		return &structs.Notification{
			Type:    structs.NotificationSuccess,
			Title:   texts.TitleAtStore,
			Message: texts.MsgAtStore,
		}
	case quote.LongDistance:
		return &structs.Notification{
			Type:    structs.NotificationWarning,
			Title:   texts.TitleOverLimit,
			Message: texts.MsgOverLimit,
		}
	default:
		return &structs.Notification{
			Type:    structs.NotificationSuccess,
			Title:   texts.TitleCheckPin,
			Message: texts.MsgCheckPin,
		}
	}
}
