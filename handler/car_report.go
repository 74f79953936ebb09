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

// CarReport handles the car report endpoints.
type CarReport struct {
	reports *service.CarReport
	log     *logger.Logger
}

func NewCarReport(reports *service.CarReport, log *logger.Logger) *CarReport {
	return &CarReport{reports: reports, log: log}
}

func (h *CarReport) Create(c *gin.Context) {
	var req structs.CarReportCreate
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.reports.Create(c.Request.Context(), &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, report)
}

func (h *CarReport) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	report, err := h.reports.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, report)
}

func (h *CarReport) List(c *gin.Context) {
	var filter structs.CarReportListFilter
	var params paging.Params
	if !bindQuery(c, &filter) || !bindQuery(c, &params) {
		return
	}
	page, err := h.reports.List(c.Request.Context(), &filter, params)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, page)
}

func (h *CarReport) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req structs.CarReportUpdate
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.reports.Update(c.Request.Context(), id, &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, report)
}

func (h *CarReport) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.reports.Delete(c.Request.Context(), id); err != nil {
		failService(c, h.log, err)
		return
	}
	resp.NoContent(c.Writer)
}
