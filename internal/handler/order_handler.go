package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"recharge-order-api/internal/constant"
	"recharge-order-api/internal/dto"
	"recharge-order-api/internal/service"
	"recharge-order-api/internal/utils"
)

// OrderHandler 订单接口
type OrderHandler struct{ svc *service.OrderService }

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		msg := "参数错误"
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			msg = utils.ValidationMsg(ves[0])
		}
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, msg))
		return false
	}
	return true
}

func auditCtx(c *gin.Context) *dto.AuditContextPayload {
	if v, ok := c.Get("audit_ctx"); ok {
		if ctx, ok := v.(*dto.AuditContextPayload); ok {
			return ctx
		}
	}
	return &dto.AuditContextPayload{}
}

// writeError 统一错误出口，审计上下文同步标记失败
func writeError(c *gin.Context, err error) {
	ctx := auditCtx(c)
	ctx.Status = "failed"
	ctx.ErrorMsg = err.Error()

	resp := utils.FromError(err)
	resp.TraceID = ctx.TraceID
	ctx.ResponseBody = utils.MapToJSON(resp)
	c.JSON(utils.HTTPStatus(resp.Code), resp)
}

func writeSuccess(c *gin.Context, data interface{}) {
	ctx := auditCtx(c)
	ctx.Status = "success"

	resp := utils.Success(data)
	resp.TraceID = ctx.TraceID
	respJson, _ := json.Marshal(resp)
	ctx.ResponseBody = string(respJson)
	c.JSON(http.StatusOK, resp)
}

// Create 商户下单
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderReq
	if !bindJSON(c, &req) {
		return
	}

	ctx := auditCtx(c)
	ctx.ApiKey = req.ApiKey
	ctx.OrderID = req.OrderID

	resp, err := h.svc.Create(req)
	if err != nil {
		writeError(c, err)
		return
	}
	ctx.PlatformOrderID = resp.PlatformOrderID
	writeSuccess(c, resp)
}

// Submit 商户提交付款凭证
func (h *OrderHandler) Submit(c *gin.Context) {
	var req dto.SubmitOrderReq
	if !bindJSON(c, &req) {
		return
	}

	ctx := auditCtx(c)
	ctx.ApiKey = req.ApiKey
	ctx.OrderID = req.OrderID
	ctx.PlatformOrderID = req.PlatformOrderID

	if err := h.svc.SubmitProofMerchant(req); err != nil {
		writeError(c, err)
		return
	}
	// 商户通道提交成功不回传订单数据，结果以回调通知为准
	writeSuccess(c, nil)
}

// Query 商户订单查询
func (h *OrderHandler) Query(c *gin.Context) {
	var req dto.QueryOrderReq
	if !bindJSON(c, &req) {
		return
	}

	ctx := auditCtx(c)
	ctx.ApiKey = req.ApiKey
	ctx.OrderID = req.OrderID

	resp, err := h.svc.Query(req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, resp)
}

// Settle 管理端结算单笔订单
func (h *OrderHandler) Settle(c *gin.Context) {
	orderID := c.Param("order_id")
	var req dto.SettleOrderReq
	if !bindJSON(c, &req) {
		return
	}

	ctx := auditCtx(c)
	ctx.OrderID = orderID

	if err := h.svc.Settle(orderID, *req.Status, req.ErrorMsg); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, gin.H{
		"order_id":    orderID,
		"status":      *req.Status,
		"status_text": constant.StatusText(*req.Status),
	})
}

// Delete 管理端删除失败订单
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID := c.Param("order_id")

	ctx := auditCtx(c)
	ctx.OrderID = orderID

	if err := h.svc.Delete(orderID); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, gin.H{"order_id": orderID, "deleted": true})
}

// Batch 管理端批量结算/删除
func (h *OrderHandler) Batch(c *gin.Context) {
	var req dto.BatchOrdersReq
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.Batch(req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, resp)
}

// parseID 路径 ID 解析，管理端接口共用
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, "无效的 ID 参数"))
		return 0, false
	}
	return id, true
}
