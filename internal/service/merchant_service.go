package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"recharge-order-api/internal/constant"
	"recharge-order-api/internal/dao"
	"recharge-order-api/internal/dto"
	mainmodel "recharge-order-api/internal/model/main"
	"recharge-order-api/internal/utils"
)

// MerchantService 商户凭证管理：创建、密钥轮换、启停与带引用保护的删除
type MerchantService struct {
	store  MerchantStore
	orders OrderRefCounter
}

func NewMerchantService() *MerchantService {
	return &MerchantService{
		store:  dao.NewMainDao(),
		orders: dao.NewOrderDao(),
	}
}

func NewMerchantServiceWith(store MerchantStore, orders OrderRefCounter) *MerchantService {
	return &MerchantService{store: store, orders: orders}
}

func merchantResp(m *mainmodel.Merchant, withSecret bool) dto.MerchantResp {
	resp := dto.MerchantResp{
		ID:          m.ID,
		MerchantID:  m.MerchantID,
		ApiKey:      m.ApiKey,
		CallbackURL: m.CallbackURL,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
	if withSecret {
		resp.SecretKey = m.SecretKey
	}
	return resp
}

// Create 创建商户并签发密钥对。密钥仅在本次响应中回传明文。
func (s *MerchantService) Create(req dto.CreateMerchantReq) (dto.MerchantResp, error) {
	var resp dto.MerchantResp

	exist, err := s.store.GetMerchantByMerchantID(req.MerchantID)
	if err != nil {
		return resp, err
	}
	if exist != nil {
		return resp, constant.NewError(constant.CodeMerchantExists)
	}

	apiKey, err := utils.NewSecretKey()
	if err != nil {
		return resp, err
	}
	secretKey, err := utils.NewSecretKey()
	if err != nil {
		return resp, err
	}

	m := &mainmodel.Merchant{
		MerchantID:  req.MerchantID,
		ApiKey:      apiKey,
		SecretKey:   secretKey,
		CallbackURL: req.CallbackURL,
		Status:      mainmodel.MerchantStatusEnabled,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.store.CreateMerchant(m); err != nil {
		// 唯一索引兜底并发下的重复商户号
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return resp, constant.NewError(constant.CodeMerchantExists)
		}
		return resp, err
	}
	return merchantResp(m, true), nil
}

// Get 查询商户，密钥不回传
func (s *MerchantService) Get(id uint64) (dto.MerchantResp, error) {
	var resp dto.MerchantResp
	m, err := s.store.GetMerchantByID(id)
	if err != nil {
		return resp, err
	}
	if m == nil {
		return resp, constant.NewError(constant.CodeMerchantNotFound)
	}
	return merchantResp(m, false), nil
}

// Update 更新商户ID/回调地址，商户ID保持唯一
func (s *MerchantService) Update(id uint64, req dto.UpdateMerchantReq) (dto.MerchantResp, error) {
	var resp dto.MerchantResp
	m, err := s.store.GetMerchantByID(id)
	if err != nil {
		return resp, err
	}
	if m == nil {
		return resp, constant.NewError(constant.CodeMerchantNotFound)
	}

	fields := map[string]interface{}{"updated_at": time.Now()}
	if req.MerchantID != "" && req.MerchantID != m.MerchantID {
		exist, err := s.store.GetMerchantByMerchantID(req.MerchantID)
		if err != nil {
			return resp, err
		}
		if exist != nil {
			return resp, constant.NewError(constant.CodeMerchantExists)
		}
		fields["merchant_id"] = req.MerchantID
		m.MerchantID = req.MerchantID
	}
	if req.CallbackURL != nil {
		fields["callback_url"] = *req.CallbackURL
		m.CallbackURL = *req.CallbackURL
	}
	if err := s.store.UpdateMerchant(id, fields); err != nil {
		return resp, err
	}
	return merchantResp(m, false), nil
}

// SetEnabled 启停商户，不删除账户
func (s *MerchantService) SetEnabled(id uint64, enabled bool) (dto.MerchantResp, error) {
	var resp dto.MerchantResp
	m, err := s.store.GetMerchantByID(id)
	if err != nil {
		return resp, err
	}
	if m == nil {
		return resp, constant.NewError(constant.CodeMerchantNotFound)
	}

	status := mainmodel.MerchantStatusDisabled
	if enabled {
		status = mainmodel.MerchantStatusEnabled
	}
	if err := s.store.UpdateMerchant(id, map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}); err != nil {
		return resp, err
	}
	m.Status = status
	return merchantResp(m, false), nil
}

// regenerateKeys 轮换指定密钥，旧密钥对后续所有验签立即失效
func (s *MerchantService) regenerateKeys(id uint64, apiKey, secretKey bool) (dto.MerchantResp, error) {
	var resp dto.MerchantResp
	m, err := s.store.GetMerchantByID(id)
	if err != nil {
		return resp, err
	}
	if m == nil {
		return resp, constant.NewError(constant.CodeMerchantNotFound)
	}

	fields := map[string]interface{}{"updated_at": time.Now()}
	if apiKey {
		key, err := utils.NewSecretKey()
		if err != nil {
			return resp, err
		}
		fields["api_key"] = key
		m.ApiKey = key
	}
	if secretKey {
		key, err := utils.NewSecretKey()
		if err != nil {
			return resp, err
		}
		fields["secret_key"] = key
		m.SecretKey = key
	}
	if err := s.store.UpdateMerchant(id, fields); err != nil {
		return resp, err
	}
	return merchantResp(m, true), nil
}

func (s *MerchantService) RegenerateApiKey(id uint64) (dto.MerchantResp, error) {
	return s.regenerateKeys(id, true, false)
}

func (s *MerchantService) RegenerateSecretKey(id uint64) (dto.MerchantResp, error) {
	return s.regenerateKeys(id, false, true)
}

func (s *MerchantService) RegenerateBoth(id uint64) (dto.MerchantResp, error) {
	return s.regenerateKeys(id, true, true)
}

// Delete 删除商户，名下存在订单时拒绝
func (s *MerchantService) Delete(id uint64) error {
	m, err := s.store.GetMerchantByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return constant.NewError(constant.CodeMerchantNotFound)
	}

	cnt, err := s.orders.CountByApiKey(m.ApiKey)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return constant.NewError(constant.CodeMerchantInUse)
	}
	return s.store.DeleteMerchant(id)
}
