package handler

import (
	"github.com/gin-gonic/gin"

	"recharge-order-api/internal/dto"
	"recharge-order-api/internal/service"
)

// MerchantHandler 商户管理接口
type MerchantHandler struct{ svc *service.MerchantService }

func NewMerchantHandler(svc *service.MerchantService) *MerchantHandler {
	return &MerchantHandler{svc: svc}
}

// Create 新增商户，响应一次性回传明文密钥
func (h *MerchantHandler) Create(c *gin.Context) {
	var req dto.CreateMerchantReq
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

func (h *MerchantHandler) Get(c *gin.Context) {
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

func (h *MerchantHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateMerchantReq
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

func (h *MerchantHandler) Enable(c *gin.Context) {
	h.setEnabled(c, true)
}

func (h *MerchantHandler) Disable(c *gin.Context) {
	h.setEnabled(c, false)
}

func (h *MerchantHandler) setEnabled(c *gin.Context, enabled bool) {
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

// 密钥重置三个入口；新密钥明文仅在本次响应回传

func (h *MerchantHandler) RegenerateKeys(c *gin.Context) {
	h.regenerate(c, func(id uint64) (dto.MerchantResp, error) { return h.svc.RegenerateBoth(id) })
}

func (h *MerchantHandler) RegenerateApiKey(c *gin.Context) {
	h.regenerate(c, func(id uint64) (dto.MerchantResp, error) { return h.svc.RegenerateApiKey(id) })
}

func (h *MerchantHandler) RegenerateSecretKey(c *gin.Context) {
	h.regenerate(c, func(id uint64) (dto.MerchantResp, error) { return h.svc.RegenerateSecretKey(id) })
}

func (h *MerchantHandler) regenerate(c *gin.Context, fn func(uint64) (dto.MerchantResp, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := fn(id)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, resp)
}

func (h *MerchantHandler) Delete(c *gin.Context) {
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
