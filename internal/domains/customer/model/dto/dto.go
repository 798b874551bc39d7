package dto

import (
	"posada/internal/domains/customer/model"
)

type CreateCustomerRequest struct {
	ID    string `json:"customer_id" validate:"required"`
	Name  string `json:"name"        validate:"required"`
	Email string `json:"email"       validate:"required"`
}

func (c *CreateCustomerRequest) ToModel() model.Customer {
	return model.Customer{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name"  validate:"omitempty"`
	Email *string `json:"email" validate:"omitempty"`
}

// Merge lays the supplied fields over the current row; omitted fields keep
// their prior value. The combined result is revalidated by the service.
func (u *UpdateCustomerRequest) Merge(current model.Customer) model.Customer {
	merged := current

	if u.Name != nil {
		merged.Name = *u.Name
	}

	if u.Email != nil {
		merged.Email = *u.Email
	}

	return merged
}

type CustomerResponse struct {
	ID    string `json:"customer_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer) {
	r.TotalData = len(models)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
