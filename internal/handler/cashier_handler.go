package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recharge-order-api/internal/dto"
	"recharge-order-api/internal/service"
)

// CashierHandler 收银台接口，付款人侧无签名，凭平台订单号访问
type CashierHandler struct{ svc *service.OrderService }

func NewCashierHandler(svc *service.OrderService) *CashierHandler {
	return &CashierHandler{svc: svc}
}

// Info 收银台页面信息
func (h *CashierHandler) Info(c *gin.Context) {
	pid := c.Param("platform_order_id")

	ctx := auditCtx(c)
	ctx.PlatformOrderID = pid

	resp, err := h.svc.CashierInfo(pid)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, resp)
}

// Submit 收银台提交付款凭证
func (h *CashierHandler) Submit(c *gin.Context) {
	var req dto.CashierSubmitReq
	if !bindJSON(c, &req) {
		return
	}

	ctx := auditCtx(c)
	ctx.PlatformOrderID = req.PlatformOrderID

	resp, err := h.svc.SubmitProofCashier(req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, resp)
}

// Status 收银台订单状态轮询
func (h *CashierHandler) Status(c *gin.Context) {
	pid := c.Param("platform_order_id")

	ctx := auditCtx(c)
	ctx.PlatformOrderID = pid

	resp, err := h.svc.CashierStatus(pid)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, resp)
}

// Redirect 支付完成同步跳转，配置了同步地址则 302 回商户页面
func (h *CashierHandler) Redirect(c *gin.Context) {
	pid := c.Param("platform_order_id")

	ctx := auditCtx(c)
	ctx.PlatformOrderID = pid

	resp, err := h.svc.CashierRedirect(pid)
	if err != nil {
		writeError(c, err)
		return
	}
	if resp.RedirectURL != "" {
		ctx.Status = "success"
		c.Redirect(http.StatusFound, resp.RedirectURL)
		return
	}
	writeSuccess(c, resp)
}
