package structs

import "time"

// OpenHours is a whole-hour open/close pair; Close is exclusive.
type OpenHours struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

type StoreLocation struct {
	ID       string                     `json:"id"`
	Name     string                     `json:"name"`
	Address  string                     `json:"address"`
	Location Coordinate                 `json:"location"`
	Phone    string                     `json:"phone"`
	Hours    map[time.Weekday]OpenHours `json:"hours"`
}

// HoursFor returns the open hours for the given weekday, falling back to the
// default weekday schedule when the table has no entry.
func (s StoreLocation) HoursFor(day time.Weekday) OpenHours {
	if h, ok := s.Hours[day]; ok {
		return h
	}
	return OpenHours{Open: 9, Close: 21}
}

type GetListStoreResponse struct {
	Count  int             `json:"count"`
	Stores []StoreLocation `json:"stores"`
}

type PickupSlotsResponse struct {
	StoreID string   `json:"storeId"`
	Date    string   `json:"date"`
	Slots   []string `json:"slots"`
}
