package handler

import (
	"github.com/gin-gonic/gin"

	"recharge-order-api/internal/dto"
	"recharge-order-api/internal/service"
)

// CountryHandler 国家配置管理接口
type CountryHandler struct{ svc *service.CountryService }

func NewCountryHandler(svc *service.CountryService) *CountryHandler {
	return &CountryHandler{svc: svc}
}

func (h *CountryHandler) Create(c *gin.Context) {
	var req dto.CreateCountryReq
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.Create(req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, resp)
}

func (h *CountryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, resp)
}

func (h *CountryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCountryReq
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.Update(id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, resp)
}

func (h *CountryHandler) Enable(c *gin.Context) {
	h.setEnabled(c, true)
}

func (h *CountryHandler) Disable(c *gin.Context) {
	h.setEnabled(c, false)
}

func (h *CountryHandler) setEnabled(c *gin.Context, enabled bool) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.svc.SetEnabled(id, enabled)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, resp)
}

func (h *CountryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, gin.H{"id": id, "deleted": true})
}
