package service

import (
	"context"

	"carmarket/paging"
	"carmarket/structs"
)

// PaymentRepo is the payment repository surface the payment service needs.
type PaymentRepo interface {
	Create(ctx context.Context, p *structs.Payment) (*structs.Payment, error)
	GetByID(ctx context.Context, id int) (*structs.Payment, error)
	List(ctx context.Context, f *structs.PaymentListFilter, limit, offset int) ([]*structs.Payment, int, error)
	Update(ctx context.Context, id int, p *structs.PaymentUpdate) (*structs.Payment, error)
	Delete(ctx context.Context, id int) error
}

// PaymentOrderRepo verifies the referenced order exists.
type PaymentOrderRepo interface {
	GetByID(ctx context.Context, id int) (*structs.Order, error)
}

// Payment implements payment management.
type Payment struct {
	payments PaymentRepo
	orders   PaymentOrderRepo
}

func NewPayment(payments PaymentRepo, orders PaymentOrderRepo) *Payment {
	return &Payment{payments: payments, orders: orders}
}

// Create records a payment against an existing order.
func (s *Payment) Create(ctx context.Context, req *structs.PaymentCreate) (*structs.Payment, error) {
	if _, err := s.orders.GetByID(ctx, req.OrderID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.payments.Create(ctx, &structs.Payment{
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Status:        structs.PaymentPending,
		PaymentType:   req.PaymentType,
		TransactionID: req.TransactionID,
	})
}

func (s *Payment) Get(ctx context.Context, id int) (*structs.Payment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return payment, nil
}

func (s *Payment) List(ctx context.Context, f *structs.PaymentListFilter, params paging.Params) (*paging.Result[*structs.Payment], error) {
	return paging.Paginate(params, func(limit, offset int) ([]*structs.Payment, int, error) {
		return s.payments.List(ctx, f, limit, offset)
	})
}

func (s *Payment) Update(ctx context.Context, id int, u *structs.PaymentUpdate) (*structs.Payment, error) {
	payment, err := s.payments.Update(ctx, id, u)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return payment, nil
}

func (s *Payment) Delete(ctx context.Context, id int) error {
	return mapNotFound(s.payments.Delete(ctx, id))
}
