package service

import (
	"context"
	"errors"

	"carmarket/data/repository"
	"carmarket/paging"
	"carmarket/structs"
)

// DeliveryRepo is the delivery repository surface the delivery service
// needs.
type DeliveryRepo interface {
	Create(ctx context.Context, d *structs.Delivery) (*structs.Delivery, error)
	GetByID(ctx context.Context, id int) (*structs.Delivery, error)
	List(ctx context.Context, f *structs.DeliveryListFilter, limit, offset int) ([]*structs.Delivery, int, error)
	Update(ctx context.Context, id int, d *structs.DeliveryUpdate) (*structs.Delivery, error)
	Delete(ctx context.Context, id int) error
}

// DeliveryRelatedRepos bundles the lookups the delivery details endpoint
// needs.
type DeliveryRelatedRepos struct {
	Orders interface {
		GetByID(ctx context.Context, id int) (*structs.Order, error)
	}
	Cars interface {
		GetByID(ctx context.Context, id int) (*structs.Car, error)
	}
	Users interface {
		GetByID(ctx context.Context, id int) (*structs.User, error)
	}
	Payments interface {
		ListByOrder(ctx context.Context, orderID int) ([]*structs.Payment, error)
	}
}

// Delivery implements delivery management.
type Delivery struct {
	deliveries DeliveryRepo
	related    DeliveryRelatedRepos
}

func NewDelivery(deliveries DeliveryRepo, related DeliveryRelatedRepos) *Delivery {
	return &Delivery{deliveries: deliveries, related: related}
}

// Create schedules a delivery for an existing order.
func (s *Delivery) Create(ctx context.Context, req *structs.DeliveryCreate) (*structs.Delivery, error) {
	if _, err := s.related.Orders.GetByID(ctx, req.OrderID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.deliveries.Create(ctx, &structs.Delivery{
		OrderID:        req.OrderID,
		Status:         structs.DeliveryPending,
		TrackingNumber: req.TrackingNumber,
	})
}

func (s *Delivery) Get(ctx context.Context, id int) (*structs.Delivery, error) {
	delivery, err := s.deliveries.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return delivery, nil
}

func (s *Delivery) List(ctx context.Context, f *structs.DeliveryListFilter, params paging.Params) (*paging.Result[*structs.Delivery], error) {
	return paging.Paginate(params, func(limit, offset int) ([]*structs.Delivery, int, error) {
		return s.deliveries.List(ctx, f, limit, offset)
	})
}

func (s *Delivery) Update(ctx context.Context, id int, u *structs.DeliveryUpdate) (*structs.Delivery, error) {
	delivery, err := s.deliveries.Update(ctx, id, u)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return delivery, nil
}

func (s *Delivery) Delete(ctx context.Context, id int) error {
	return mapNotFound(s.deliveries.Delete(ctx, id))
}

// Details returns a delivery with its order, the order's car and user, and
// the order's payments.
func (s *Delivery) Details(ctx context.Context, id int) (*structs.DeliveryDetails, error) {
	delivery, err := s.deliveries.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	order, err := s.related.Orders.GetByID(ctx, delivery.OrderID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	details := &structs.DeliveryDetails{Delivery: delivery, Order: order}

	if car, err := s.related.Cars.GetByID(ctx, order.CarID); err == nil {
		details.Car = car
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if order.UserID != nil {
		user, err := s.related.Users.GetByID(ctx, *order.UserID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if user != nil {
			details.User = user.Public()
		}
	}

	if details.Payments, err = s.related.Payments.ListByOrder(ctx, order.ID); err != nil {
		return nil, err
	}
	return details, nil
}
