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

// CarPhoto handles the car photo endpoints.
type CarPhoto struct {
	photos *service.CarPhoto
	log    *logger.Logger
}

func NewCarPhoto(photos *service.CarPhoto, log *logger.Logger) *CarPhoto {
	return &CarPhoto{photos: photos, log: log}
}

func (h *CarPhoto) Create(c *gin.Context) {
	var req structs.CarPhotoCreate
	if !bindJSON(c, &req) {
		return
	}
	photo, err := h.photos.Create(c.Request.Context(), &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, photo)
}

func (h *CarPhoto) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	photo, err := h.photos.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, photo)
}

func (h *CarPhoto) List(c *gin.Context) {
	var filter structs.CarPhotoListFilter
	var params paging.Params
	if !bindQuery(c, &filter) || !bindQuery(c, &params) {
		return
	}
	page, err := h.photos.List(c.Request.Context(), &filter, params)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, page)
}

func (h *CarPhoto) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req structs.CarPhotoUpdate
	if !bindJSON(c, &req) {
		return
	}
	photo, err := h.photos.Update(c.Request.Context(), id, &req)
	if err != nil {
		failService(c, h.log, err)
		return
	}
	resp.Success(c.Writer, photo)
}

func (h *CarPhoto) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.photos.Delete(c.Request.Context(), id); err != nil {
		failService(c, h.log, err)
		return
	}
	resp.NoContent(c.Writer)
}
