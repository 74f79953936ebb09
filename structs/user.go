// Package structs defines the domain models and request/response shapes.
package structs

import "time"

// UserRole enumerates user roles.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleManager  UserRole = "manager"
	RoleAdmin    UserRole = "admin"
)

// User is the stored user record, including credentials.
type User struct {
	ID             int       `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	FullName       *string   `json:"full_name,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Role           UserRole  `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Public returns the user projection safe to hand to clients.
func (u *User) Public() *UserRead {
	return &UserRead{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// UserRead is the public user projection. It never carries the hash.
type UserRead struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	FullName  *string   `json:"full_name,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreate is an administrative create request.
type UserCreate struct {
	Email    string   `json:"email" binding:"required,email"`
	FullName *string  `json:"full_name" binding:"omitempty,max=128"`
	Phone    *string  `json:"phone" binding:"omitempty,max=32"`
	Role     UserRole `json:"role" binding:"omitempty,oneof=customer manager admin"`
}

// UserUpdate carries optional field updates.
type UserUpdate struct {
	FullName *string   `json:"full_name" binding:"omitempty,max=128"`
	Phone    *string   `json:"phone" binding:"omitempty,max=32"`
	IsActive *bool     `json:"is_active"`
	Role     *UserRole `json:"role" binding:"omitempty,oneof=customer manager admin"`
}

// UserListFilter narrows user listings.
type UserListFilter struct {
	IsActive *bool `form:"is_active"`
}

// UserProfile aggregates a user with their orders and reviews.
type UserProfile struct {
	User    *UserRead `json:"user"`
	Orders  []*Order  `json:"orders"`
	Reviews []*Review `json:"reviews"`
}

// AuthRegister is the registration request.
type AuthRegister struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6,max=128"`
	FullName *string `json:"full_name" binding:"omitempty,max=128"`
	Phone    *string `json:"phone" binding:"omitempty,max=32"`
}

// Token is the login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
