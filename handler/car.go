package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carmarket/logging/logger"
	"carmarket/net/resp"
	"carmarket/paging"
	"carmarket/service"
	"carmarket/structs"
)

// Car handles the car catalog endpoints.
type Car struct {
	cars *service.Car
	log  *logger.Logger
}

func NewCar(cars *service.Car, log *logger.Logger) *Car {
	return &Car{cars: cars, log: log}
}

func (h *Car) Create(c *gin.Context) {
	var req structs.CarCreate
	if !bindJSON(c, &req) {
		return
	}
	car, err := h.cars.Create(c.Request.Context(), &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, car)
}

func (h *Car) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	car, err := h.cars.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, car)
}

func (h *Car) List(c *gin.Context) {
	var filter structs.CarListFilter
	var params paging.Params
	if !bindQuery(c, &filter) || !bindQuery(c, &params) {
		return
	}
	page, err := h.cars.List(c.Request.Context(), &filter, params)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, page)
}

func (h *Car) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req structs.CarUpdate
	if !bindJSON(c, &req) {
		return
	}
	car, err := h.cars.Update(c.Request.Context(), id, &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, car)
}

func (h *Car) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.cars.Delete(c.Request.Context(), id); err != nil {
		failService(c, h.log, err)
		return
	}
	resp.NoContent(c.Writer)
}

// Details returns the car with photos, reports, reviews and orders.
func (h *Car) Details(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	details, err := h.cars.Details(c.Request.Context(), id)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, details)
}
