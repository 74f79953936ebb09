package service

import (
	"context"

	"carmarket/paging"
	"carmarket/structs"
)

// CarPhotoRepo is the photo repository surface the photo service needs.
type CarPhotoRepo interface {
	Create(ctx context.Context, p *structs.CarPhoto) (*structs.CarPhoto, error)
	GetByID(ctx context.Context, id int) (*structs.CarPhoto, error)
	List(ctx context.Context, f *structs.CarPhotoListFilter, limit, offset int) ([]*structs.CarPhoto, int, error)
	Update(ctx context.Context, id int, p *structs.CarPhotoUpdate) (*structs.CarPhoto, error)
	Delete(ctx context.Context, id int) error
	ClearMain(ctx context.Context, carID int) error
}

// CarPhoto implements photo management. At most one photo per car carries
// the main flag.
type CarPhoto struct {
	photos CarPhotoRepo
	cars   ReviewCarRepo
}

func NewCarPhoto(photos CarPhotoRepo, cars ReviewCarRepo) *CarPhoto {
	return &CarPhoto{photos: photos, cars: cars}
}

func (s *CarPhoto) Create(ctx context.Context, req *structs.CarPhotoCreate) (*structs.CarPhoto, error) {
	if _, err := s.cars.GetByID(ctx, req.CarID); err != nil {
		return nil, mapNotFound(err)
	}
	if req.IsMain {
		if err := s.photos.ClearMain(ctx, req.CarID); err != nil {
			return nil, err
		}
	}
	return s.photos.Create(ctx, &structs.CarPhoto{
		CarID:  req.CarID,
		URL:    req.URL,
		IsMain: req.IsMain,
	})
}

func (s *CarPhoto) Get(ctx context.Context, id int) (*structs.CarPhoto, error) {
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return photo, nil
}

func (s *CarPhoto) List(ctx context.Context, f *structs.CarPhotoListFilter, params paging.Params) (*paging.Result[*structs.CarPhoto], error) {
	return paging.Paginate(params, func(limit, offset int) ([]*structs.CarPhoto, int, error) {
		return s.photos.List(ctx, f, limit, offset)
	})
}

func (s *CarPhoto) Update(ctx context.Context, id int, u *structs.CarPhotoUpdate) (*structs.CarPhoto, error) {
	if u.IsMain != nil && *u.IsMain {
		photo, err := s.photos.GetByID(ctx, id)
		if err != nil {
			return nil, mapNotFound(err)
		}
		if err := s.photos.ClearMain(ctx, photo.CarID); err != nil {
			return nil, err
		}
	}
	photo, err := s.photos.Update(ctx, id, u)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return photo, nil
}

func (s *CarPhoto) Delete(ctx context.Context, id int) error {
	return mapNotFound(s.photos.Delete(ctx, id))
}
