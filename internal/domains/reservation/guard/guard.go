// Package guard exposes the active-reservation query consumed by the hotel and
// customer domains as their deletion guard. Keeping it apart from the
// reservation service breaks the dependency cycle between the three domains:
// hotels and customers see only this narrow query, never the full registry.
package guard

import (
	"context"

	"posada/internal/domains/reservation/repository"
)

type Query struct {
	repo repository.Reservation
}

func New(repo repository.Reservation) *Query {
	return &Query{
		repo: repo,
	}
}

// HasActiveForHotel reports whether any ACTIVE reservation references the hotel.
func (q *Query) HasActiveForHotel(ctx context.Context, hotelID string) bool {
	for _, r := range q.repo.LoadAll(ctx) {
		if r.HotelID == hotelID && r.IsActive() {
			return true
		}
	}

	return false
}

// HasActiveForCustomer reports whether any ACTIVE reservation references the customer.
func (q *Query) HasActiveForCustomer(ctx context.Context, customerID string) bool {
	for _, r := range q.repo.LoadAll(ctx) {
		if r.CustomerID == customerID && r.IsActive() {
			return true
		}
	}

	return false
}
