package service

import (
	"context"
	"errors"

	"carmarket/data/repository"
	"carmarket/paging"
	"carmarket/structs"
)

// OrderRepo is the order repository surface the order service needs.
type OrderRepo interface {
	Create(ctx context.Context, o *structs.Order) (*structs.Order, error)
	GetByID(ctx context.Context, id int) (*structs.Order, error)
	List(ctx context.Context, f *structs.OrderListFilter, limit, offset int) ([]*structs.Order, int, error)
	Update(ctx context.Context, id int, o *structs.OrderUpdate) (*structs.Order, error)
	Delete(ctx context.Context, id int) error
}

// OrderRelatedRepos bundles the lookups the order details endpoint needs.
type OrderRelatedRepos struct {
	Users interface {
		GetByID(ctx context.Context, id int) (*structs.User, error)
	}
	Cars interface {
		GetByID(ctx context.Context, id int) (*structs.Car, error)
	}
	Payments interface {
		ListByOrder(ctx context.Context, orderID int) ([]*structs.Payment, error)
	}
	Deliveries interface {
		ListByOrder(ctx context.Context, orderID int) ([]*structs.Delivery, error)
	}
}

// Order implements order management.
type Order struct {
	orders  OrderRepo
	related OrderRelatedRepos
}

func NewOrder(orders OrderRepo, related OrderRelatedRepos) *Order {
	return &Order{orders: orders, related: related}
}

// Create places an order. The referenced car must exist; a referenced
// user, when given, must exist too.
func (s *Order) Create(ctx context.Context, req *structs.OrderCreate) (*structs.Order, error) {
	if _, err := s.related.Cars.GetByID(ctx, req.CarID); err != nil {
		return nil, mapNotFound(err)
	}
	if req.UserID != nil {
		if _, err := s.related.Users.GetByID(ctx, *req.UserID); err != nil {
			return nil, mapNotFound(err)
		}
	}
	return s.orders.Create(ctx, &structs.Order{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		UserID:          req.UserID,
		CarID:           req.CarID,
		Status:          structs.OrderPending,
		PaymentMethod:   req.PaymentMethod,
		TotalAmount:     req.TotalAmount,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
	})
}

func (s *Order) Get(ctx context.Context, id int) (*structs.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return order, nil
}

func (s *Order) List(ctx context.Context, f *structs.OrderListFilter, params paging.Params) (*paging.Result[*structs.Order], error) {
	return paging.Paginate(params, func(limit, offset int) ([]*structs.Order, int, error) {
		return s.orders.List(ctx, f, limit, offset)
	})
}

func (s *Order) Update(ctx context.Context, id int, u *structs.OrderUpdate) (*structs.Order, error) {
	order, err := s.orders.Update(ctx, id, u)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return order, nil
}

func (s *Order) Delete(ctx context.Context, id int) error {
	return mapNotFound(s.orders.Delete(ctx, id))
}

// Details returns an order with its user, car, payments and deliveries.
func (s *Order) Details(ctx context.Context, id int) (*structs.OrderDetails, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	details := &structs.OrderDetails{Order: order}

	if order.UserID != nil {
		user, err := s.related.Users.GetByID(ctx, *order.UserID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if user != nil {
			details.User = user.Public()
		}
	}

	car, err := s.related.Cars.GetByID(ctx, order.CarID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	details.Car = car

	if details.Payments, err = s.related.Payments.ListByOrder(ctx, id); err != nil {
		return nil, err
	}
	if details.Deliveries, err = s.related.Deliveries.ListByOrder(ctx, id); err != nil {
		return nil, err
	}
	return details, nil
}
