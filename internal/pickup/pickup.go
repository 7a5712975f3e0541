package pickup

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"webiecellar/internal/structs"
	"webiecellar/internal/texts"
	"webiecellar/pkg/logger"
)

var Module = fx.Provide(New)

const (
	slotStepMinutes = 30

	dateLayout = "2006-01-02"
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
	}

	Service interface {
		Slots(ctx context.Context, store structs.StoreLocation, dateISO string) ([]string, error)
		Confirm(ctx context.Context, store structs.StoreLocation, dateISO, slot string) (structs.PickupConfirmation, error)
	}

	service struct {
		logger logger.Logger
		now    func() time.Time
	}
)

func New(p Params) Service {
	return &service{
		logger: p.Logger,
		now:    time.Now,
	}
}

// Slots enumerates the 30-minute pickup boundaries for the store on the given
// date. For today, slots at or before now+1h are dropped; an empty result
// means the store is closed or nothing remains.
func (s *service) Slots(ctx context.Context, store structs.StoreLocation, dateISO string) ([]string, error) {
	date, err := time.ParseInLocation(dateLayout, dateISO, s.now().Location())
	if err != nil {
		return nil, structs.ErrBadRequest
	}

	hours := store.HoursFor(date.Weekday())

	now := s.now()
	isToday := now.Format(dateLayout) == dateISO
	currentHour, currentMin := now.Hour(), now.Minute()

	slots := []string{}
	for h := hours.Open; h < hours.Close; h++ {
		for m := 0; m < 60; m += slotStepMinutes {
			if isToday {
				// same-day pickups need at least an hour of lead time
				if !(h > currentHour+1 || (h == currentHour+1 && m > currentMin)) {
					continue
				}
			}
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots, nil
}

func (s *service) Confirm(ctx context.Context, store structs.StoreLocation, dateISO, slot string) (structs.PickupConfirmation, error) {
	slots, err := s.Slots(ctx, store, dateISO)
	if err != nil {
		return structs.PickupConfirmation{}, err
	}
	if len(slots) == 0 {
		return structs.PickupConfirmation{}, structs.ErrStoreClosed
	}

	valid := false
	for _, v := range slots {
		if v == slot {
			valid = true
			break
		}
	}
	if !valid {
		return structs.PickupConfirmation{}, structs.ErrSlotUnavailable
	}

	code := "WC-" + ksuid.New().String()

	png, err := qrcode.Encode(fmt.Sprintf("%s|%s|%s %s", code, store.ID, dateISO, slot), qrcode.Medium, 256)
	if err != nil {
		s.logger.Error(ctx, "err on qrcode.Encode", zap.Error(err))
		return structs.PickupConfirmation{}, err
	}

	return structs.PickupConfirmation{
		Code:      code,
		StoreID:   store.ID,
		Date:      dateISO,
		Slot:      slot,
		QRCodePNG: png,
		Notification: structs.Notification{
			Type:    structs.NotificationSuccess,
			Title:   texts.TitlePickup,
			Message: texts.MsgPickup,
		},
	}, nil
}
