package structs

import "time"

// DeliveryStatus enumerates delivery states.
type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "pending"
	DeliveryInProgress DeliveryStatus = "in_progress"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryFailed     DeliveryStatus = "failed"
)

// Delivery is a delivery attempt for an order.
type Delivery struct {
	ID             int            `json:"id"`
	OrderID        int            `json:"order_id"`
	Status         DeliveryStatus `json:"status"`
	TrackingNumber *string        `json:"tracking_number,omitempty"`
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// DeliveryCreate is the delivery creation request.
type DeliveryCreate struct {
	OrderID        int     `json:"order_id" binding:"required,gt=0"`
	TrackingNumber *string `json:"tracking_number" binding:"omitempty,max=128"`
}

// DeliveryUpdate carries optional field updates.
type DeliveryUpdate struct {
	Status         *DeliveryStatus `json:"status" binding:"omitempty,oneof=pending in_progress delivered failed"`
	TrackingNumber *string         `json:"tracking_number" binding:"omitempty,max=128"`
	DeliveredAt    *time.Time      `json:"delivered_at"`
}

// DeliveryListFilter narrows delivery listings.
type DeliveryListFilter struct {
	OrderID *int   `form:"order_id"`
	Status  string `form:"status" binding:"omitempty,oneof=pending in_progress delivered failed"`
}

// DeliveryDetails aggregates a delivery with its order context.
type DeliveryDetails struct {
	Delivery *Delivery  `json:"delivery"`
	Order    *Order     `json:"order"`
	Car      *Car       `json:"car,omitempty"`
	User     *UserRead  `json:"user,omitempty"`
	Payments []*Payment `json:"payments"`
}
