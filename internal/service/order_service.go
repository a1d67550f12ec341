package service

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"recharge-order-api/internal/config"
	"recharge-order-api/internal/constant"
	"recharge-order-api/internal/dal"
	"recharge-order-api/internal/dao"
	"recharge-order-api/internal/dto"
	"recharge-order-api/internal/idgen"
	"recharge-order-api/internal/logger"
	ordermodel "recharge-order-api/internal/model/order"
	"recharge-order-api/internal/mq"
	"recharge-order-api/internal/utils"
)

// OrderService 订单生命周期：下单、双通道凭证提交、结算、批量处理与查询。
// 商户通道逐请求验签，收银台通道仅凭平台订单号定位，二者是刻意区分的信任边界。
type OrderService struct {
	mainDao   MerchantStore
	countries CountryStore
	orderDao  OrderStore
	gen       idgen.Generator
	scheduler SettlementScheduler

	cashierBase string
	now         func() time.Time
}

func NewOrderService(gen idgen.Generator) *OrderService {
	mainDao := dao.NewMainDao()
	return &OrderService{
		mainDao:     mainDao,
		countries:   mainDao,
		orderDao:    dao.NewOrderDao(),
		gen:         gen,
		cashierBase: config.C.Cashier.BaseURL,
		now:         time.Now,
	}
}

// NewOrderServiceWith 测试用构造
func NewOrderServiceWith(merchants MerchantStore, countries CountryStore, orders OrderStore, gen idgen.Generator, cashierBase string) *OrderService {
	return &OrderService{
		mainDao:     merchants,
		countries:   countries,
		orderDao:    orders,
		gen:         gen,
		cashierBase: cashierBase,
		now:         time.Now,
	}
}

// SetScheduler 注入模拟结算调度器（启动时由 main 装配，允许为空）
func (s *OrderService) SetScheduler(sched SettlementScheduler) {
	s.scheduler = sched
}

// Create 商户下单。验签 → 商户 → 国家 → 订单号唯一 → 落库，任一步失败不产生任何写入。
func (s *OrderService) Create(req dto.CreateOrderReq) (dto.CreateOrderResp, error) {
	var resp dto.CreateOrderResp

	merchant, err := s.mainDao.GetActiveMerchantByApiKey(req.ApiKey)
	if err != nil {
		return resp, err
	}
	if merchant == nil {
		return resp, constant.NewError(constant.CodeMerchantInvalid)
	}

	if !utils.VerifySign(req.SignParams(), merchant.SecretKey) {
		return resp, constant.NewError(constant.CodeSignatureError)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return resp, constant.NewError(constant.CodeInvalidParams).WithMessage("订单金额无效")
	}

	country, err := s.countries.GetActiveCountryByCode(req.Code)
	if err != nil {
		return resp, err
	}
	if country == nil {
		return resp, constant.NewError(constant.CodeCountryInvalid)
	}

	exist, err := s.orderDao.GetByOrderID(req.OrderID)
	if err != nil {
		return resp, err
	}
	if exist != nil {
		return resp, constant.NewError(constant.CodeOrderAlreadyExist)
	}

	pid := s.gen.Next()
	payURL := s.cashierBase + "/pay/" + pid

	notifyURL := req.NotifyURL
	if notifyURL == "" {
		notifyURL = merchant.CallbackURL
	}

	now := s.now()
	order := &ordermodel.RechargeOrder{
		OrderID:         req.OrderID,
		PlatformOrderID: pid,
		Amount:          amount,
		Code:            country.Code,
		ApiKey:          req.ApiKey,
		Sign:            req.Sign,
		SynCallbackURL:  utils.PtrString(req.SynCallbackURL),
		NotifyURL:       utils.PtrString(notifyURL),
		PayURL:          &payURL,
		Status:          constant.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.orderDao.Insert(order); err != nil {
		// 唯一索引兜底并发下的重复订单号
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return resp, constant.NewError(constant.CodeOrderAlreadyExist)
		}
		return resp, err
	}

	s.cacheOrder(order)
	_ = mq.PublishOrderCreated(dto.OrderCreatedEvent{
		OrderID:         order.OrderID,
		PlatformOrderID: pid,
		ApiKey:          order.ApiKey,
		Amount:          amount.StringFixed(2),
		Code:            order.Code,
		CreatedAt:       now.Unix(),
	})

	resp.PlatformOrderID = pid
	resp.Amount = amount.InexactFloat64()
	resp.PayURL = payURL
	return resp, nil
}

// SubmitProofMerchant 商户通道提交付款凭证，仅待付款订单可提交
func (s *OrderService) SubmitProofMerchant(req dto.SubmitOrderReq) error {
	if req.CallbackStr == "" && req.CallbackImg == "" {
		return constant.NewError(constant.CodeProofRequired)
	}

	merchant, err := s.mainDao.GetActiveMerchantByApiKey(req.ApiKey)
	if err != nil {
		return err
	}
	if merchant == nil {
		return constant.NewError(constant.CodeMerchantInvalid)
	}
	if !utils.VerifySign(req.SignParams(), merchant.SecretKey) {
		return constant.NewError(constant.CodeSignatureError)
	}

	order, err := s.orderDao.GetMerchantOrder(req.OrderID, req.PlatformOrderID, req.ApiKey)
	if err != nil {
		return err
	}
	if order == nil {
		return constant.NewError(constant.CodeOrderNotFound)
	}

	ok, err := s.orderDao.MarkSubmitted(order.ID,
		utils.PtrString(req.CallbackStr), utils.PtrString(req.CallbackImg), nil, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return constant.NewError(constant.CodeOrderStatusInvalid)
	}

	s.dropOrderCache(order.PlatformOrderID)
	if s.scheduler != nil {
		s.scheduler.Schedule(order.PlatformOrderID)
	}
	return nil
}

// SubmitProofCashier 收银台提交付款凭证。无签名校验，持有平台订单号即可提交，
// 可额外记录付款人自报的实际金额。
func (s *OrderService) SubmitProofCashier(req dto.CashierSubmitReq) (dto.CashierSubmitResp, error) {
	var resp dto.CashierSubmitResp

	if req.CallbackStr == "" && req.CallbackImg == "" {
		return resp, constant.NewError(constant.CodeProofRequired)
	}

	order, err := s.orderDao.GetByPlatformID(req.PlatformOrderID)
	if err != nil {
		return resp, err
	}
	if order == nil {
		return resp, constant.NewError(constant.CodeOrderNotFound)
	}

	var actualAmount *decimal.Decimal
	if req.ActualAmount != "" {
		d, err := decimal.NewFromString(req.ActualAmount)
		if err != nil {
			return resp, constant.NewError(constant.CodeInvalidParams).WithMessage("实际金额格式错误")
		}
		if d.GreaterThan(decimal.Zero) {
			actualAmount = &d
		}
	}

	now := s.now()
	ok, err := s.orderDao.MarkSubmitted(order.ID,
		utils.PtrString(req.CallbackStr), utils.PtrString(req.CallbackImg), actualAmount, now)
	if err != nil {
		return resp, err
	}
	if !ok {
		return resp, constant.NewError(constant.CodeOrderStatusInvalid)
	}

	s.dropOrderCache(order.PlatformOrderID)

	resp.PlatformOrderID = order.PlatformOrderID
	resp.Status = constant.OrderStatusSubmitted
	resp.StatusText = constant.StatusText(constant.OrderStatusSubmitted)
	resp.SubmittedAt = now
	return resp, nil
}

// Settle 管理端结算，orderRef 为商户订单号。非终态订单均可强制结算。
func (s *OrderService) Settle(orderID string, outcome int8, reason string) error {
	order, err := s.orderDao.GetByOrderID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return constant.NewError(constant.CodeOrderNotFound)
	}
	return s.settle(order, outcome, reason)
}

// SettleByPlatformID 按平台订单号结算，模拟结算路径使用
func (s *OrderService) SettleByPlatformID(platformOrderID string, outcome int8, reason string) error {
	order, err := s.orderDao.GetByPlatformID(platformOrderID)
	if err != nil {
		return err
	}
	if order == nil {
		return constant.NewError(constant.CodeOrderNotFound)
	}
	return s.settle(order, outcome, reason)
}

func (s *OrderService) settle(order *ordermodel.RechargeOrder, outcome int8, reason string) error {
	if !constant.IsSettleOutcome(outcome) {
		return constant.NewError(constant.CodeSettleOutcome)
	}

	var errorMsg *string
	if outcome != constant.OrderStatusSuccess {
		if reason == "" {
			reason = constant.StatusText(outcome)
		}
		errorMsg = &reason
	}

	now := s.now()
	ok, err := s.orderDao.Settle(order.ID, outcome, errorMsg, now)
	if err != nil {
		return err
	}
	if !ok {
		return constant.NewError(constant.CodeOrderStatusInvalid)
	}

	// 管理端先结算则取消挂起的模拟结算
	if s.scheduler != nil {
		s.scheduler.Cancel(order.PlatformOrderID)
	}
	s.dropOrderCache(order.PlatformOrderID)

	evt := dto.OrderSettledEvent{
		OrderID:         order.OrderID,
		PlatformOrderID: order.PlatformOrderID,
		Status:          outcome,
		SettledAt:       now.Unix(),
	}
	if errorMsg != nil {
		evt.ErrorMsg = *errorMsg
	}
	_ = mq.PublishOrderSettled(evt)
	return nil
}

// Delete 删除订单，仅失败终态可删
func (s *OrderService) Delete(orderID string) error {
	order, err := s.orderDao.GetByOrderID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return constant.NewError(constant.CodeOrderNotFound)
	}

	ok, err := s.orderDao.Delete(order.ID)
	if err != nil {
		return err
	}
	if !ok {
		return constant.NewError(constant.CodeOrderNotDeletable)
	}
	s.dropOrderCache(order.PlatformOrderID)
	return nil
}

// Batch 批量结算/删除：逐单独立处理，单项失败不影响其余项
func (s *OrderService) Batch(req dto.BatchOrdersReq) (dto.BatchOrdersResp, error) {
	var resp dto.BatchOrdersResp

	switch req.Action {
	case "update_status":
		if req.Status == nil || !constant.IsSettleOutcome(*req.Status) {
			return resp, constant.NewError(constant.CodeSettleOutcome)
		}
	case "delete":
	default:
		return resp, constant.NewError(constant.CodeInvalidParams).WithMessage("无效的操作类型")
	}

	for _, orderID := range req.OrderIDs {
		var err error
		if req.Action == "update_status" {
			err = s.Settle(orderID, *req.Status, req.ErrorMsg)
		} else {
			err = s.Delete(orderID)
		}

		item := dto.BatchItemResult{OrderID: orderID, Success: err == nil}
		if err != nil {
			var be constant.Error
			if errors.As(err, &be) {
				item.Error = be.Message()
			} else {
				item.Error = err.Error()
			}
			resp.FailureCount++
		} else {
			resp.SuccessCount++
		}
		resp.Results = append(resp.Results, item)
	}
	return resp, nil
}

// Query 商户订单查询，返回含国家展示信息的完整投影
func (s *OrderService) Query(req dto.QueryOrderReq) (dto.QueryOrderResp, error) {
	var resp dto.QueryOrderResp

	merchant, err := s.mainDao.GetActiveMerchantByApiKey(req.ApiKey)
	if err != nil {
		return resp, err
	}
	if merchant == nil {
		return resp, constant.NewError(constant.CodeMerchantInvalid)
	}
	if !utils.VerifySign(req.SignParams(), merchant.SecretKey) {
		return resp, constant.NewError(constant.CodeSignatureError)
	}

	order, err := s.orderDao.GetByOrderIDAndApiKey(req.OrderID, req.ApiKey)
	if err != nil {
		return resp, err
	}
	if order == nil {
		return resp, constant.NewError(constant.CodeOrderNotFound)
	}

	_ = copier.Copy(&resp, order)
	resp.Amount = order.Amount.InexactFloat64()
	if order.ActualAmount != nil {
		v := order.ActualAmount.InexactFloat64()
		resp.ActualAmount = &v
	}
	resp.StatusText = constant.StatusText(order.Status)

	country, err := s.countries.GetCountryByCode(order.Code)
	if err == nil && country != nil {
		resp.Country = &dto.OrderCountryInfo{Name: country.Name, Currency: country.Currency}
	}
	return resp, nil
}

// CashierInfo 收银台页面信息，仅待付款/已提交订单可展示
func (s *OrderService) CashierInfo(platformOrderID string) (dto.CashierInfoResp, error) {
	var resp dto.CashierInfoResp

	if cached, ok := s.cachedCashierInfo(platformOrderID); ok {
		return cached, nil
	}

	order, err := s.orderDao.GetByPlatformID(platformOrderID)
	if err != nil {
		return resp, err
	}
	if order == nil || (order.Status != constant.OrderStatusPending && order.Status != constant.OrderStatusSubmitted) {
		return resp, constant.NewError(constant.CodeOrderNotFound).WithMessage("订单不存在或状态不允许支付")
	}

	country, err := s.countries.GetActiveCountryByCode(order.Code)
	if err != nil {
		return resp, err
	}
	if country == nil {
		return resp, constant.NewError(constant.CodeCountryInvalid)
	}

	merchant, err := s.mainDao.GetActiveMerchantByApiKey(order.ApiKey)
	if err != nil {
		return resp, err
	}
	if merchant == nil {
		return resp, constant.NewError(constant.CodeMerchantInvalid)
	}

	resp = dto.CashierInfoResp{
		PlatformOrderID: order.PlatformOrderID,
		OrderID:         order.OrderID,
		Amount:          order.Amount.InexactFloat64(),
		Currency:        country.Currency,
		CountryName:     country.Name,
		CountryCode:     order.Code,
		MerchantID:      merchant.MerchantID,
		Status:          order.Status,
		StatusText:      constant.StatusText(order.Status),
		CreatedAt:       order.CreatedAt,
		PaymentMethods:  []string{},
	}
	if country.PaymentMethods != nil {
		var methods []string
		if err := json.Unmarshal([]byte(*country.PaymentMethods), &methods); err == nil {
			resp.PaymentMethods = methods
		}
	}
	resp.QrCodeURL = country.QrCodeURL
	if country.BankInfo != nil {
		resp.BankInfo = json.RawMessage(*country.BankInfo)
	}

	s.cacheCashierInfo(platformOrderID, resp)
	return resp, nil
}

// CashierStatus 收银台实时状态查询
func (s *OrderService) CashierStatus(platformOrderID string) (dto.CashierStatusResp, error) {
	var resp dto.CashierStatusResp

	order, err := s.orderDao.GetByPlatformID(platformOrderID)
	if err != nil {
		return resp, err
	}
	if order == nil {
		return resp, constant.NewError(constant.CodeOrderNotFound)
	}

	resp = dto.CashierStatusResp{
		PlatformOrderID: order.PlatformOrderID,
		OrderID:         order.OrderID,
		Status:          order.Status,
		StatusText:      constant.StatusText(order.Status),
		Amount:          order.Amount.InexactFloat64(),
		CreatedAt:       order.CreatedAt,
		SubmittedAt:     order.SubmittedAt,
		UpdatedAt:       order.UpdatedAt,
		ErrorMsg:        order.ErrorMsg,
	}
	if order.ActualAmount != nil {
		v := order.ActualAmount.InexactFloat64()
		resp.ActualAmount = &v
	}
	return resp, nil
}

// CashierRedirect 支付完成后的同步跳转：有同步地址则带参跳转，否则返回订单信息
func (s *OrderService) CashierRedirect(platformOrderID string) (dto.CashierRedirect, error) {
	var resp dto.CashierRedirect

	order, err := s.orderDao.GetByPlatformID(platformOrderID)
	if err != nil {
		return resp, err
	}
	if order == nil {
		return resp, constant.NewError(constant.CodeOrderNotFound)
	}

	resp = dto.CashierRedirect{
		PlatformOrderID: order.PlatformOrderID,
		OrderID:         order.OrderID,
		Status:          order.Status,
		StatusText:      constant.StatusText(order.Status),
		Amount:          order.Amount.InexactFloat64(),
	}
	if order.SynCallbackURL != nil && *order.SynCallbackURL != "" {
		u, err := url.Parse(*order.SynCallbackURL)
		if err != nil {
			return resp, nil
		}
		q := u.Query()
		q.Set("platform_order_id", order.PlatformOrderID)
		q.Set("order_id", order.OrderID)
		q.Set("status", strconv.Itoa(int(order.Status)))
		q.Set("amount", order.Amount.StringFixed(2))
		u.RawQuery = q.Encode()
		resp.RedirectURL = u.String()
	}
	return resp, nil
}

// ---- redis 缓存，未初始化时自动跳过 ----

func (s *OrderService) cacheOrder(order *ordermodel.RechargeOrder) {
	if dal.RedisClient == nil {
		return
	}
	key := dal.OrderCacheKey(order.PlatformOrderID)
	if err := dal.RedisClient.Set(dal.RedisCtx, key, utils.MapToJSON(order), dal.OrderCacheTTL).Err(); err != nil {
		logger.Log.Warnf("缓存订单 %s 失败: %v", order.PlatformOrderID, err)
	}
}

func (s *OrderService) cachedCashierInfo(pid string) (dto.CashierInfoResp, bool) {
	var resp dto.CashierInfoResp
	if dal.RedisClient == nil {
		return resp, false
	}
	raw, err := dal.RedisClient.Get(dal.RedisCtx, dal.CashierCacheKey(pid)).Result()
	if err != nil {
		return resp, false
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return resp, false
	}
	return resp, true
}

func (s *OrderService) cacheCashierInfo(pid string, resp dto.CashierInfoResp) {
	if dal.RedisClient == nil {
		return
	}
	_ = dal.RedisClient.Set(dal.RedisCtx, dal.CashierCacheKey(pid), utils.MapToJSON(resp), dal.CashierCacheTTL).Err()
}

func (s *OrderService) dropOrderCache(pid string) {
	if dal.RedisClient == nil {
		return
	}
	if err := dal.RedisClient.Del(dal.RedisCtx, dal.OrderCacheKey(pid), dal.CashierCacheKey(pid)).Err(); err != nil {
		logger.Log.Warnf("清理订单缓存 %s 失败: %v", pid, err)
	}
}
