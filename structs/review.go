package structs

import "time"

// Review is a customer review for a car.
type Review struct {
	ID           int       `json:"id"`
	CarID        int       `json:"car_id"`
	UserID       *int      `json:"user_id,omitempty"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewCreate is the review creation request.
type ReviewCreate struct {
	CarID        int     `json:"car_id" binding:"required,gt=0"`
	UserID       *int    `json:"user_id" binding:"omitempty,gt=0"`
	CustomerName string  `json:"customer_name" binding:"required,max=255"`
	Rating       int     `json:"rating" binding:"required,min=1,max=5"`
	Comment      *string `json:"comment" binding:"omitempty,max=2000"`
}

// ReviewUpdate carries optional field updates.
type ReviewUpdate struct {
	CustomerName *string `json:"customer_name" binding:"omitempty,max=255"`
	Rating       *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment      *string `json:"comment" binding:"omitempty,max=2000"`
}

// ReviewListFilter narrows review listings.
type ReviewListFilter struct {
	CarID     *int `form:"car_id"`
	UserID    *int `form:"user_id"`
	RatingMin *int `form:"rating_min" binding:"omitempty,min=1,max=5"`
	RatingMax *int `form:"rating_max" binding:"omitempty,min=1,max=5"`
}
