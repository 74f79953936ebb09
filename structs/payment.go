package structs

import "time"

// PaymentStatus enumerates payment states.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentType enumerates payment kinds.
type PaymentType string

const (
	PaymentFull        PaymentType = "full"
	PaymentInstallment PaymentType = "installment"
	PaymentDeposit     PaymentType = "deposit"
)

// Payment is a payment against an order.
type Payment struct {
	ID            int           `json:"id"`
	OrderID       int           `json:"order_id"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	PaymentType   PaymentType   `json:"payment_type"`
	TransactionID *string       `json:"transaction_id,omitempty"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// PaymentCreate is the payment creation request.
type PaymentCreate struct {
	OrderID       int         `json:"order_id" binding:"required,gt=0"`
	Amount        float64     `json:"amount" binding:"required,gt=0"`
	PaymentType   PaymentType `json:"payment_type" binding:"required,oneof=full installment deposit"`
	TransactionID *string     `json:"transaction_id" binding:"omitempty,max=128"`
}

// PaymentUpdate carries optional field updates.
type PaymentUpdate struct {
	Amount        *float64       `json:"amount" binding:"omitempty,gt=0"`
	Status        *PaymentStatus `json:"status" binding:"omitempty,oneof=pending paid failed"`
	PaymentType   *PaymentType   `json:"payment_type" binding:"omitempty,oneof=full installment deposit"`
	TransactionID *string        `json:"transaction_id" binding:"omitempty,max=128"`
	PaidAt        *time.Time     `json:"paid_at"`
}

// PaymentListFilter narrows payment listings.
type PaymentListFilter struct {
	OrderID *int   `form:"order_id"`
	Status  string `form:"status" binding:"omitempty,oneof=pending paid failed"`
}
