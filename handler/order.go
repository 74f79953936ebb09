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

// Order handles the order endpoints.
type Order struct {
	orders *service.Order
	log    *logger.Logger
}

func NewOrder(orders *service.Order, log *logger.Logger) *Order {
	return &Order{orders: orders, log: log}
}

func (h *Order) Create(c *gin.Context) {
	var req structs.OrderCreate
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.orders.Create(c.Request.Context(), &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, order)
}

func (h *Order) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, order)
}

func (h *Order) List(c *gin.Context) {
	var filter structs.OrderListFilter
	var params paging.Params
	if !bindQuery(c, &filter) || !bindQuery(c, &params) {
		return
	}
	page, err := h.orders.List(c.Request.Context(), &filter, params)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, page)
}

func (h *Order) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req structs.OrderUpdate
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.orders.Update(c.Request.Context(), id, &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, order)
}

func (h *Order) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		failService(c, h.log, err)
		return
	}
	resp.NoContent(c.Writer)
}

// Details returns the order with its user, car, payments and deliveries.
func (h *Order) Details(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	details, err := h.orders.Details(c.Request.Context(), id)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, details)
}
