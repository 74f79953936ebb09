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

// Delivery handles the delivery endpoints.
type Delivery struct {
	deliveries *service.Delivery
	log        *logger.Logger
}

func NewDelivery(deliveries *service.Delivery, log *logger.Logger) *Delivery {
	return &Delivery{deliveries: deliveries, log: log}
}

func (h *Delivery) Create(c *gin.Context) {
	var req structs.DeliveryCreate
	if !bindJSON(c, &req) {
		return
	}
	delivery, err := h.deliveries.Create(c.Request.Context(), &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, delivery)
}

func (h *Delivery) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	delivery, err := h.deliveries.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, delivery)
}

func (h *Delivery) List(c *gin.Context) {
	var filter structs.DeliveryListFilter
	var params paging.Params
	if !bindQuery(c, &filter) || !bindQuery(c, &params) {
		return
	}
	page, err := h.deliveries.List(c.Request.Context(), &filter, params)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, page)
}

func (h *Delivery) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req structs.DeliveryUpdate
	if !bindJSON(c, &req) {
		return
	}
	delivery, err := h.deliveries.Update(c.Request.Context(), id, &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, delivery)
}

func (h *Delivery) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.deliveries.Delete(c.Request.Context(), id); err != nil {
		failService(c, h.log, err)
		return
	}
	resp.NoContent(c.Writer)
}

// Details returns the delivery with its order context.
func (h *Delivery) Details(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	details, err := h.deliveries.Details(c.Request.Context(), id)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, details)
}
