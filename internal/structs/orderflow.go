package structs

import (
	"fmt"
	"strings"
	"time"
)

const (
	ModeDelivery = "DELIVERY"
	ModePickup   = "PICKUP"
)

func NormalizeMode(v string) (string, error) {
	switch strings.TrimSpace(strings.ToUpper(v)) {
	case "DELIVERY":
		return ModeDelivery, nil
	case "PICKUP":
		return ModePickup, nil
	default:
		return "", fmt.Errorf("invalid mode: %q", v)
	}
}

// Resolver confidence tags, highest precision first.
const (
	ConfidenceExact          = "exact"
	ConfidenceOptimized      = "optimized"
	ConfidenceAdministrative = "administrative"
)

// Location input sources for SetLocation.
const (
	LocationSourceGeolocation = "geolocation"
	LocationSourcePinDrag     = "pin_drag"
)

const (
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

type Notification struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type DeliveryInfo struct {
	DistanceKm float64 `json:"distanceKm"`
	EtaMinutes int     `json:"etaMinutes"`
}

type GeocodeResult struct {
	Location    Coordinate `json:"location"`
	DisplayName string     `json:"displayName"`
	Confidence  string     `json:"confidence"`
}

type DeliveryQuote struct {
	Info         DeliveryInfo `json:"info"`
	Polyline     []Coordinate `json:"polyline"`
	AtStore      bool         `json:"atStore"`
	LongDistance bool         `json:"longDistance"`
}

// FlowSession is the per-user view of the order flow. DeliveryInfo, the
// polyline and the selected coordinate are always derived together from the
// current search and must be cleared together.
type FlowSession struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	Mode         string        `json:"mode"`
	Location     *Coordinate   `json:"location,omitempty"`
	AddressInput string        `json:"addressInput,omitempty"`
	Confidence   string        `json:"confidence,omitempty"`
	DeliveryInfo *DeliveryInfo `json:"deliveryInfo,omitempty"`
	Polyline     []Coordinate  `json:"polyline,omitempty"`
	Processing   bool          `json:"processing"`
	Revision     int64         `json:"revision"`
	Notification *Notification `json:"notification,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// ClearDelivery drops all state derived from the selected coordinate.
func (s *FlowSession) ClearDelivery() {
	s.Location = nil
	s.AddressInput = ""
	s.Confidence = ""
	s.DeliveryInfo = nil
	s.Polyline = nil
}

type SwitchModeRequest struct {
	Mode string `json:"mode"`
}

type SearchAddressRequest struct {
	Address string `json:"address"`
}

type SetLocationRequest struct {
	Location *Coordinate `json:"location"`
	Source   string      `json:"source"`
	Denied   bool        `json:"denied"`
}

type SchedulePickupRequest struct {
	StoreID string `json:"storeId"`
	Date    string `json:"date"`
	Slot    string `json:"slot"`
}

type CheckoutResponse struct {
	ShippingFee  int64        `json:"shippingFee"`
	DistanceKm   float64      `json:"distanceKm"`
	EtaMinutes   int          `json:"etaMinutes"`
	Notification Notification `json:"notification"`
}

type PickupConfirmation struct {
	Code         string       `json:"code"`
	StoreID      string       `json:"storeId"`
	Date         string       `json:"date"`
	Slot         string       `json:"slot"`
	QRCodePNG    []byte       `json:"qrCodePng"`
	Notification Notification `json:"notification"`
}
