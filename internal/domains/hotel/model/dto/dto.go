package dto

import (
	"posada/internal/domains/hotel/model"
)

type CreateHotelRequest struct {
	ID             string `json:"hotel_id"        validate:"required"`
	Name           string `json:"name"            validate:"required"`
	RoomsTotal     int    `json:"rooms_total"     validate:"gte=0"`
	RoomsAvailable *int   `json:"rooms_available" validate:"omitempty,gte=0"`
}

func (c *CreateHotelRequest) ToModel() model.Hotel {
	// rooms_available defaults to the full inventory
	available := c.RoomsTotal
	if c.RoomsAvailable != nil {
		available = *c.RoomsAvailable
	}

	return model.Hotel{
		ID:             c.ID,
		Name:           c.Name,
		RoomsTotal:     c.RoomsTotal,
		RoomsAvailable: available,
	}
}

type UpdateHotelRequest struct {
	Name           *string `json:"name"            validate:"omitempty"`
	RoomsTotal     *int    `json:"rooms_total"     validate:"omitempty,gte=0"`
	RoomsAvailable *int    `json:"rooms_available" validate:"omitempty,gte=0"`
}

// Merge lays the supplied fields over the current row; omitted fields keep
// their prior value. The combined result is revalidated by the service.
func (u *UpdateHotelRequest) Merge(current model.Hotel) model.Hotel {
	merged := current

	if u.Name != nil {
		merged.Name = *u.Name
	}

	if u.RoomsTotal != nil {
		merged.RoomsTotal = *u.RoomsTotal
	}

	if u.RoomsAvailable != nil {
		merged.RoomsAvailable = *u.RoomsAvailable
	}

	return merged
}

type ReserveRoomsRequest struct {
	RoomCount *int `json:"room_count" validate:"omitempty,gte=1"`
}

func (r *ReserveRoomsRequest) Count() int {
	if r.RoomCount == nil {
		return 1
	}

	return *r.RoomCount
}

type HotelResponse struct {
	ID             string `json:"hotel_id"`
	Name           string `json:"name"`
	RoomsTotal     int    `json:"rooms_total"`
	RoomsAvailable int    `json:"rooms_available"`
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.RoomsTotal = model.RoomsTotal
	r.RoomsAvailable = model.RoomsAvailable
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel) {
	r.TotalData = len(models)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
