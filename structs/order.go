package structs

import "time"

// OrderStatus enumerates order states.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderPaid       OrderStatus = "paid"
	OrderProcessing OrderStatus = "processing"
	OrderInDelivery OrderStatus = "in_delivery"
	OrderCompleted  OrderStatus = "completed"
	OrderCanceled   OrderStatus = "canceled"
)

// PaymentMethod enumerates how an order is paid.
type PaymentMethod string

const (
	MethodCash  PaymentMethod = "cash"
	MethodCard  PaymentMethod = "card"
	MethodLoan  PaymentMethod = "loan"
	MethodLease PaymentMethod = "lease"
)

// Order is a purchase or rental order for one car.
type Order struct {
	ID              int           `json:"id"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerEmail   *string       `json:"customer_email,omitempty"`
	UserID          *int          `json:"user_id,omitempty"`
	CarID           int           `json:"car_id"`
	Status          OrderStatus   `json:"status"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	TotalAmount     float64       `json:"total_amount"`
	DeliveryAddress *string       `json:"delivery_address,omitempty"`
	DeliveryDate    *time.Time    `json:"delivery_date,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderCreate is the order creation request.
type OrderCreate struct {
	CustomerName    string        `json:"customer_name" binding:"required,max=128"`
	CustomerPhone   string        `json:"customer_phone" binding:"required,max=64"`
	CustomerEmail   *string       `json:"customer_email" binding:"omitempty,email"`
	UserID          *int          `json:"user_id"`
	CarID           int           `json:"car_id" binding:"required,gt=0"`
	PaymentMethod   PaymentMethod `json:"payment_method" binding:"required,oneof=cash card loan lease"`
	TotalAmount     float64       `json:"total_amount" binding:"required,gt=0"`
	DeliveryAddress *string       `json:"delivery_address"`
	DeliveryDate    *time.Time    `json:"delivery_date"`
}

// OrderUpdate carries optional field updates.
type OrderUpdate struct {
	CustomerName    *string        `json:"customer_name" binding:"omitempty,max=128"`
	CustomerPhone   *string        `json:"customer_phone" binding:"omitempty,max=64"`
	CustomerEmail   *string        `json:"customer_email" binding:"omitempty,email"`
	Status          *OrderStatus   `json:"status" binding:"omitempty,oneof=pending paid processing in_delivery completed canceled"`
	PaymentMethod   *PaymentMethod `json:"payment_method" binding:"omitempty,oneof=cash card loan lease"`
	TotalAmount     *float64       `json:"total_amount" binding:"omitempty,gt=0"`
	DeliveryAddress *string        `json:"delivery_address"`
	DeliveryDate    *time.Time     `json:"delivery_date"`
}

// OrderListFilter narrows order listings. Q matches customer name, phone
// or email.
type OrderListFilter struct {
	UserID        *int   `form:"user_id"`
	CarID         *int   `form:"car_id"`
	Status        string `form:"status" binding:"omitempty,oneof=pending paid processing in_delivery completed canceled"`
	PaymentMethod string `form:"payment_method" binding:"omitempty,oneof=cash card loan lease"`
	Q             string `form:"q" binding:"omitempty,max=128"`
}

// OrderDetails aggregates an order with its related rows.
type OrderDetails struct {
	Order      *Order      `json:"order"`
	User       *UserRead   `json:"user,omitempty"`
	Car        *Car        `json:"car"`
	Payments   []*Payment  `json:"payments"`
	Deliveries []*Delivery `json:"deliveries"`
}
