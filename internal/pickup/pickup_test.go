package pickup

import (
	"context"
	"testing"
	"time"

	"webiecellar/internal/structs"
	"webiecellar/pkg/logger"
)

var testHours = map[time.Weekday]structs.OpenHours{
	time.Sunday:    {Open: 10, Close: 22},
	time.Monday:    {Open: 9, Close: 21},
	time.Tuesday:   {Open: 9, Close: 21},
	time.Wednesday: {Open: 9, Close: 21},
	time.Thursday:  {Open: 9, Close: 21},
	time.Friday:    {Open: 9, Close: 22},
	time.Saturday:  {Open: 9, Close: 22},
}

func testStore() structs.StoreLocation {
	return structs.StoreLocation{
		ID:    "webie-cellar-district1",
		Name:  "Webie Cellar — District 1 Flagship",
		Hours: testHours,
	}
}

func newTestService(now time.Time) *service {
	return &service{
		logger: logger.New("error"),
		now:    func() time.Time { return now },
	}
}

func TestSlots_FutureWeekday(t *testing.T) {
	// now is a Monday; ask for Wednesday (9-21).
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	slots, err := svc.Slots(context.Background(), testStore(), "2026-03-04")
	if err != nil {
		t.Fatalf("Slots() error = %v", err)
	}

	if len(slots) != 24 {
		t.Fatalf("got %d slots, want 24", len(slots))
	}
	if slots[0] != "09:00" {
		t.Errorf("first slot = %q, want 09:00", slots[0])
	}
	if slots[len(slots)-1] != "20:30" {
		t.Errorf("last slot = %q, want 20:30", slots[len(slots)-1])
	}
}

func TestSlots_TodayExcludesLeadTime(t *testing.T) {
	// Wednesday 14:10: slots at or before 15:10 are gone, first is 15:30.
	now := time.Date(2026, 3, 4, 14, 10, 0, 0, time.UTC)
	svc := newTestService(now)

	slots, err := svc.Slots(context.Background(), testStore(), "2026-03-04")
	if err != nil {
		t.Fatalf("Slots() error = %v", err)
	}

	if len(slots) == 0 {
		t.Fatal("expected remaining slots for today")
	}
	if slots[0] != "15:30" {
		t.Errorf("first slot = %q, want 15:30", slots[0])
	}
	for _, s := range slots {
		if s <= "15:10" {
			t.Errorf("slot %q is within the 1-hour lead time", s)
		}
	}
}

func TestSlots_TodayExactBoundaryExcluded(t *testing.T) {
	// 14:00 sharp: the 15:00 slot (h == currentHour+1, m == 0) is excluded,
	// 15:30 is the first valid one.
	now := time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	slots, err := svc.Slots(context.Background(), testStore(), "2026-03-04")
	if err != nil {
		t.Fatalf("Slots() error = %v", err)
	}
	if slots[0] != "15:30" {
		t.Errorf("first slot = %q, want 15:30", slots[0])
	}
}

func TestSlots_TodayNoneRemaining(t *testing.T) {
	// Wednesday 20:45: last boundary is 20:30, nothing left.
	now := time.Date(2026, 3, 4, 20, 45, 0, 0, time.UTC)
	svc := newTestService(now)

	slots, err := svc.Slots(context.Background(), testStore(), "2026-03-04")
	if err != nil {
		t.Fatalf("Slots() error = %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("got %d slots, want 0", len(slots))
	}
}

func TestSlots_BadDate(t *testing.T) {
	svc := newTestService(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))

	_, err := svc.Slots(context.Background(), testStore(), "04-03-2026")
	if err != structs.ErrBadRequest {
		t.Errorf("Slots() error = %v, want ErrBadRequest", err)
	}
}

func TestConfirm_ValidSlot(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	conf, err := svc.Confirm(context.Background(), testStore(), "2026-03-04", "10:30")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if conf.Slot != "10:30" || conf.Date != "2026-03-04" {
		t.Errorf("unexpected confirmation: %+v", conf)
	}
	if conf.Code == "" {
		t.Error("confirmation code is empty")
	}
	if len(conf.QRCodePNG) == 0 {
		t.Error("QR code payload is empty")
	}
	if conf.Notification.Type != structs.NotificationSuccess {
		t.Errorf("notification type = %q, want success", conf.Notification.Type)
	}
}

func TestConfirm_SlotOutsideHours(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	_, err := svc.Confirm(context.Background(), testStore(), "2026-03-04", "22:00")
	if err != structs.ErrSlotUnavailable {
		t.Errorf("Confirm() error = %v, want ErrSlotUnavailable", err)
	}
}

func TestConfirm_NothingLeftToday(t *testing.T) {
	now := time.Date(2026, 3, 4, 20, 45, 0, 0, time.UTC)
	svc := newTestService(now)

	_, err := svc.Confirm(context.Background(), testStore(), "2026-03-04", "20:00")
	if err != structs.ErrStoreClosed {
		t.Errorf("Confirm() error = %v, want ErrStoreClosed", err)
	}
}
