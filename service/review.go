package service

import (
	"context"

	"carmarket/paging"
	"carmarket/structs"
)

// ReviewRepo is the review repository surface the review service needs.
type ReviewRepo interface {
	Create(ctx context.Context, v *structs.Review) (*structs.Review, error)
	GetByID(ctx context.Context, id int) (*structs.Review, error)
	List(ctx context.Context, f *structs.ReviewListFilter, limit, offset int) ([]*structs.Review, int, error)
	Update(ctx context.Context, id int, v *structs.ReviewUpdate) (*structs.Review, error)
	Delete(ctx context.Context, id int) error
}

// ReviewCarRepo verifies the referenced car exists.
type ReviewCarRepo interface {
	GetByID(ctx context.Context, id int) (*structs.Car, error)
}

// ReviewUserRepo verifies the referenced user exists.
type ReviewUserRepo interface {
	GetByID(ctx context.Context, id int) (*structs.User, error)
}

// Review implements review management.
type Review struct {
	reviews ReviewRepo
	cars    ReviewCarRepo
	users   ReviewUserRepo
}

func NewReview(reviews ReviewRepo, cars ReviewCarRepo, users ReviewUserRepo) *Review {
	return &Review{reviews: reviews, cars: cars, users: users}
}

// Create adds a review for an existing car. An optional user reference
// must resolve too.
func (s *Review) Create(ctx context.Context, req *structs.ReviewCreate) (*structs.Review, error) {
	if _, err := s.cars.GetByID(ctx, req.CarID); err != nil {
		return nil, mapNotFound(err)
	}
	if req.UserID != nil {
		if _, err := s.users.GetByID(ctx, *req.UserID); err != nil {
			return nil, mapNotFound(err)
		}
	}
	return s.reviews.Create(ctx, &structs.Review{
		CarID:        req.CarID,
		UserID:       req.UserID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
}

func (s *Review) Get(ctx context.Context, id int) (*structs.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return review, nil
}

func (s *Review) List(ctx context.Context, f *structs.ReviewListFilter, params paging.Params) (*paging.Result[*structs.Review], error) {
	return paging.Paginate(params, func(limit, offset int) ([]*structs.Review, int, error) {
		return s.reviews.List(ctx, f, limit, offset)
	})
}

func (s *Review) Update(ctx context.Context, id int, u *structs.ReviewUpdate) (*structs.Review, error) {
	review, err := s.reviews.Update(ctx, id, u)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return review, nil
}

func (s *Review) Delete(ctx context.Context, id int) error {
	return mapNotFound(s.reviews.Delete(ctx, id))
}
