package model

import (
	"time"

	"posada/shared/failure"
)

const (
	FileName   = "reservations.json"
	EntityName = "reservation"

	FieldID         = "reservation_id"
	FieldCustomerID = "customer_id"
	FieldHotelID    = "hotel_id"
	FieldRoomCount  = "room_count"
	FieldStatus     = "status"
	FieldCreatedAt  = "created_at"
)

// Reservation lifecycle: rows are created ACTIVE and transition exactly once
// to CANCELLED. CANCELLED is terminal; rows are never physically removed.
const (
	StatusActive    = "ACTIVE"
	StatusCancelled = "CANCELLED"
)

type Reservation struct {
	ID         string    `json:"reservation_id"`
	CustomerID string    `json:"customer_id"`
	HotelID    string    `json:"hotel_id"`
	RoomCount  int       `json:"room_count"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r Reservation) Validate() error {
	if r.ID == "" {
		return failure.Validation("reservation_id must not be empty")
	}

	if r.CustomerID == "" || r.HotelID == "" {
		return failure.Validation("customer_id and hotel_id must not be empty")
	}

	if r.RoomCount <= 0 {
		return failure.Validation("room_count must be positive")
	}

	if r.Status != StatusActive && r.Status != StatusCancelled {
		return failure.Validation("status must be ACTIVE or CANCELLED")
	}

	return nil
}

func (r Reservation) IsActive() bool {
	return r.Status == StatusActive
}
