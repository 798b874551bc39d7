package model

import (
	"posada/shared/failure"
)

const (
	FileName   = "hotels.json"
	EntityName = "hotel"

	FieldID             = "hotel_id"
	FieldName           = "name"
	FieldRoomsTotal     = "rooms_total"
	FieldRoomsAvailable = "rooms_available"
)

type Hotel struct {
	ID             string `json:"hotel_id"`
	Name           string `json:"name"`
	RoomsTotal     int    `json:"rooms_total"`
	RoomsAvailable int    `json:"rooms_available"`
}

// Validate checks the room-inventory invariants. It runs on every construction
// and merge, and on every row decoded from the store.
func (h Hotel) Validate() error {
	if h.ID == "" {
		return failure.Validation("hotel_id must not be empty")
	}

	if h.RoomsTotal < 0 || h.RoomsAvailable < 0 {
		return failure.Validation("room counts must be non-negative")
	}

	if h.RoomsAvailable > h.RoomsTotal {
		return failure.Validation("rooms_available cannot exceed rooms_total")
	}

	return nil
}
