package structs

import "time"

// CarPhoto is a photo attached to a car listing.
type CarPhoto struct {
	ID        int       `json:"id"`
	CarID     int       `json:"car_id"`
	URL       string    `json:"url"`
	IsMain    bool      `json:"is_main"`
	CreatedAt time.Time `json:"created_at"`
}

// CarPhotoCreate is the photo creation request.
type CarPhotoCreate struct {
	CarID  int    `json:"car_id" binding:"required,gt=0"`
	URL    string `json:"url" binding:"required,url,max=1024"`
	IsMain bool   `json:"is_main"`
}

// CarPhotoUpdate carries optional field updates.
type CarPhotoUpdate struct {
	URL    *string `json:"url" binding:"omitempty,url,max=1024"`
	IsMain *bool   `json:"is_main"`
}

// CarPhotoListFilter narrows photo listings.
type CarPhotoListFilter struct {
	CarID  *int  `form:"car_id"`
	IsMain *bool `form:"is_main"`
}
