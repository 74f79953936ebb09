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

// Payment handles the payment endpoints.
type Payment struct {
	payments *service.Payment
	log      *logger.Logger
}

func NewPayment(payments *service.Payment, log *logger.Logger) *Payment {
	return &Payment{payments: payments, log: log}
}

func (h *Payment) Create(c *gin.Context) {
	var req structs.PaymentCreate
	if !bindJSON(c, &req) {
		return
	}
	payment, err := h.payments.Create(c.Request.Context(), &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, payment)
}

func (h *Payment) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	payment, err := h.payments.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, payment)
}

func (h *Payment) List(c *gin.Context) {
	var filter structs.PaymentListFilter
	var params paging.Params
	if !bindQuery(c, &filter) || !bindQuery(c, &params) {
		return
	}
	page, err := h.payments.List(c.Request.Context(), &filter, params)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, page)
}

func (h *Payment) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req structs.PaymentUpdate
	if !bindJSON(c, &req) {
		return
	}
	payment, err := h.payments.Update(c.Request.Context(), id, &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, payment)
}

func (h *Payment) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.payments.Delete(c.Request.Context(), id); err != nil {
		failService(c, h.log, err)
		return
	}
	resp.NoContent(c.Writer)
}
