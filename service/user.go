package service

import (
	"context"
	"errors"

	"carmarket/data/repository"
	"carmarket/paging"
	"carmarket/structs"
)

// UserRepo is the user repository surface the user service needs.
type UserRepo interface {
	AuthUserRepo
	List(ctx context.Context, f *structs.UserListFilter, limit, offset int) ([]*structs.User, int, error)
	Update(ctx context.Context, id int, u *structs.UserUpdate) (*structs.User, error)
	Delete(ctx context.Context, id int) error
}

// UserOrderRepo provides the order lookups the user service needs.
type UserOrderRepo interface {
	ListByUser(ctx context.Context, userID int) ([]*structs.Order, error)
	CountByUser(ctx context.Context, userID int) (int, error)
}

// UserReviewRepo provides the review lookups the user service needs.
type UserReviewRepo interface {
	ListByUser(ctx context.Context, userID int) ([]*structs.Review, error)
}

// User implements user management.
type User struct {
	users   UserRepo
	orders  UserOrderRepo
	reviews UserReviewRepo
}

func NewUser(users UserRepo, orders UserOrderRepo, reviews UserReviewRepo) *User {
	return &User{users: users, orders: orders, reviews: reviews}
}

// Create records a user without credentials, the administrative path.
// Accounts that can log in go through Auth.Register instead.
func (s *User) Create(ctx context.Context, req *structs.UserCreate) (*structs.UserRead, error) {
	role := req.Role
	if role == "" {
		role = structs.RoleCustomer
	}
	user, err := s.users.Create(ctx, &structs.User{
		Email:    req.Email,
		IsActive: true,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     role,
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user.Public(), nil
}

func (s *User) Get(ctx context.Context, id int) (*structs.UserRead, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return user.Public(), nil
}

func (s *User) List(ctx context.Context, f *structs.UserListFilter, params paging.Params) (*paging.Result[*structs.UserRead], error) {
	return paging.Paginate(params, func(limit, offset int) ([]*structs.UserRead, int, error) {
		users, total, err := s.users.List(ctx, f, limit, offset)
		if err != nil {
			return nil, 0, err
		}
		out := make([]*structs.UserRead, 0, len(users))
		for _, u := range users {
			out = append(out, u.Public())
		}
		return out, total, nil
	})
}

func (s *User) Update(ctx context.Context, id int, u *structs.UserUpdate) (*structs.UserRead, error) {
	user, err := s.users.Update(ctx, id, u)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return user.Public(), nil
}

// Delete removes a user. Users with orders on file cannot be removed.
func (s *User) Delete(ctx context.Context, id int) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	n, err := s.orders.CountByUser(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	return mapNotFound(s.users.Delete(ctx, id))
}

// Profile aggregates a user with their orders and reviews.
func (s *User) Profile(ctx context.Context, id int) (*structs.UserProfile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	orders, err := s.orders.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &structs.UserProfile{User: user.Public(), Orders: orders, Reviews: reviews}, nil
}

// mapNotFound converts repository.ErrNotFound to the service error.
func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
