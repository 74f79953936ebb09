package service

import (
	"time"

	"carmarket/config"
	"carmarket/data"
	"carmarket/data/repository"
	"carmarket/logging/logger"
	"carmarket/security/jwt"
	"carmarket/security/password"
)

// Service bundles every business service behind one constructor.
type Service struct {
	Auth       *Auth
	Users      *User
	Cars       *Car
	Orders     *Order
	Payments   *Payment
	Deliveries *Delivery
	Reviews    *Review
	Photos     *CarPhoto
	Reports    *CarReport
}

// New wires the repositories and services from the shared database handle.
func New(d *data.Data, cfg *config.Config, publisher RegistrationPublisher, log *logger.Logger) *Service {
	db := d.DB()

	users := repository.NewUser(db)
	cars := repository.NewCar(db)
	orders := repository.NewOrder(db)
	payments := repository.NewPayment(db)
	deliveries := repository.NewDelivery(db)
	reviews := repository.NewReview(db)
	photos := repository.NewCarPhoto(db)
	reports := repository.NewCarReport(db)

	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	tokens := jwt.NewTokenManager(cfg.Auth.JWT.Secret, time.Duration(cfg.Auth.JWT.Expire)*time.Minute)

	return &Service{
		Auth:  NewAuth(users, hasher, tokens, publisher, log),
		Users: NewUser(users, orders, reviews),
		Cars: NewCar(cars, CarRelatedRepos{
			Photos:  photos,
			Reports: reports,
			Reviews: reviews,
			Orders:  orders,
		}),
		Orders: NewOrder(orders, OrderRelatedRepos{
			Users:      users,
			Cars:       cars,
			Payments:   payments,
			Deliveries: deliveries,
		}),
		Payments: NewPayment(payments, orders),
		Deliveries: NewDelivery(deliveries, DeliveryRelatedRepos{
			Orders:   orders,
			Cars:     cars,
			Users:    users,
			Payments: payments,
		}),
		Reviews: NewReview(reviews, cars, users),
		Photos:  NewCarPhoto(photos, cars),
		Reports: NewCarReport(reports, cars),
	}
}
