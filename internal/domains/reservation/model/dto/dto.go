package dto

import (
	"posada/internal/domains/reservation/model"
	"posada/shared/constant"
	"posada/shared/timezone"
)

type CreateReservationRequest struct {
	ID         string `json:"reservation_id" validate:"required"`
	CustomerID string `json:"customer_id"    validate:"required"`
	HotelID    string `json:"hotel_id"       validate:"required"`
	RoomCount  *int   `json:"room_count"     validate:"omitempty,gte=1"`
}

// Count returns the requested number of rooms, defaulting to one.
func (c *CreateReservationRequest) Count() int {
	if c.RoomCount == nil {
		return 1
	}

	return *c.RoomCount
}

func (c *CreateReservationRequest) ToModel() model.Reservation {
	return model.Reservation{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		HotelID:    c.HotelID,
		RoomCount:  c.Count(),
		Status:     model.StatusActive,
		CreatedAt:  timezone.Now(),
	}
}

type ReservationResponse struct {
	ID         string `json:"reservation_id"`
	CustomerID string `json:"customer_id"`
	HotelID    string `json:"hotel_id"`
	RoomCount  int    `json:"room_count"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.HotelID = model.HotelID
	r.RoomCount = model.RoomCount
	r.Status = model.Status
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation) {
	r.TotalData = len(models)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type ActiveReservationResponse struct {
	HasActive bool `json:"has_active"`
}
