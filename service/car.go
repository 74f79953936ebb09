package service

import (
	"context"

	"carmarket/data/repository"
	"carmarket/paging"
	"carmarket/structs"
)

// CarRepo is the car repository surface the car service needs.
type CarRepo interface {
	Create(ctx context.Context, c *structs.Car) (*structs.Car, error)
	GetByID(ctx context.Context, id int) (*structs.Car, error)
	List(ctx context.Context, f *structs.CarListFilter, limit, offset int) ([]*structs.Car, int, error)
	Update(ctx context.Context, id int, c *structs.CarUpdate) (*structs.Car, error)
	Delete(ctx context.Context, id int) error
}

// CarRelatedRepos bundles the lookups the car details endpoint needs.
type CarRelatedRepos struct {
	Photos interface {
		ListByCar(ctx context.Context, carID int) ([]*structs.CarPhoto, error)
	}
	Reports interface {
		ListByCar(ctx context.Context, carID int) ([]*structs.CarReport, error)
	}
	Reviews interface {
		ListByCar(ctx context.Context, carID int) ([]*structs.Review, error)
	}
	Orders interface {
		ListByCar(ctx context.Context, carID int) ([]*structs.Order, error)
	}
}

// Car implements the car catalog.
type Car struct {
	cars    CarRepo
	related CarRelatedRepos
}

func NewCar(cars CarRepo, related CarRelatedRepos) *Car {
	return &Car{cars: cars, related: related}
}

// Create adds a car. A duplicate VIN is a conflict.
func (s *Car) Create(ctx context.Context, req *structs.CarCreate) (*structs.Car, error) {
	status := req.Status
	if status == "" {
		status = structs.CarAvailable
	}
	car, err := s.cars.Create(ctx, &structs.Car{
		VIN:          req.VIN,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Mileage:      req.Mileage,
		Price:        req.Price,
		Condition:    req.Condition,
		Color:        req.Color,
		EngineType:   req.EngineType,
		Transmission: req.Transmission,
		Status:       status,
		Description:  req.Description,
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return car, nil
}

func (s *Car) Get(ctx context.Context, id int) (*structs.Car, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return car, nil
}

func (s *Car) List(ctx context.Context, f *structs.CarListFilter, params paging.Params) (*paging.Result[*structs.Car], error) {
	return paging.Paginate(params, func(limit, offset int) ([]*structs.Car, int, error) {
		return s.cars.List(ctx, f, limit, offset)
	})
}

func (s *Car) Update(ctx context.Context, id int, u *structs.CarUpdate) (*structs.Car, error) {
	car, err := s.cars.Update(ctx, id, u)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return car, nil
}

func (s *Car) Delete(ctx context.Context, id int) error {
	return mapNotFound(s.cars.Delete(ctx, id))
}

// Details returns a car with its photos, reports, reviews and orders.
func (s *Car) Details(ctx context.Context, id int) (*structs.CarDetails, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	photos, err := s.related.Photos.ListByCar(ctx, id)
	if err != nil {
		return nil, err
	}
	reports, err := s.related.Reports.ListByCar(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.related.Reviews.ListByCar(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, err := s.related.Orders.ListByCar(ctx, id)
	if err != nil {
		return nil, err
	}
	return &structs.CarDetails{
		Car:     car,
		Photos:  photos,
		Reports: reports,
		Reviews: reviews,
		Orders:  orders,
	}, nil
}
