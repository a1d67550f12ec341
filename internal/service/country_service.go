package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"recharge-order-api/internal/constant"
	"recharge-order-api/internal/dao"
	"recharge-order-api/internal/dto"
	mainmodel "recharge-order-api/internal/model/main"
)

// CountryService 国家编号配置：编号唯一、启停控制、引用保护删除
type CountryService struct {
	store  CountryStore
	orders OrderRefCounter
}

func NewCountryService() *CountryService {
	return &CountryService{
		store:  dao.NewMainDao(),
		orders: dao.NewOrderDao(),
	}
}

func NewCountryServiceWith(store CountryStore, orders OrderRefCounter) *CountryService {
	return &CountryService{store: store, orders: orders}
}

func countryResp(c *mainmodel.Country) dto.CountryResp {
	return dto.CountryResp{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		Currency:  c.Currency,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

// Create 创建国家配置，编号与货币统一大写
func (s *CountryService) Create(req dto.CreateCountryReq) (dto.CountryResp, error) {
	var resp dto.CountryResp

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	exist, err := s.store.GetCountryByCode(code)
	if err != nil {
		return resp, err
	}
	if exist != nil {
		return resp, constant.NewError(constant.CodeCountryExists)
	}

	c := &mainmodel.Country{
		Code:           code,
		Name:           req.Name,
		Currency:       strings.ToUpper(req.Currency),
		Status:         mainmodel.CountryStatusEnabled,
		PaymentMethods: req.PaymentMethods,
		QrCodeURL:      req.QrCodeURL,
		BankInfo:       req.BankInfo,
		CreatedAt:      time.Now(),
	}
	if err := s.store.CreateCountry(c); err != nil {
		// 唯一索引兜底并发下的重复编号
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return resp, constant.NewError(constant.CodeCountryExists)
		}
		return resp, err
	}
	return countryResp(c), nil
}

func (s *CountryService) Get(id uint64) (dto.CountryResp, error) {
	var resp dto.CountryResp
	c, err := s.store.GetCountryByID(id)
	if err != nil {
		return resp, err
	}
	if c == nil {
		return resp, constant.NewError(constant.CodeCountryNotFound)
	}
	return countryResp(c), nil
}

// Update 更新国家配置，编号变更时保持唯一
func (s *CountryService) Update(id uint64, req dto.UpdateCountryReq) (dto.CountryResp, error) {
	var resp dto.CountryResp
	c, err := s.store.GetCountryByID(id)
	if err != nil {
		return resp, err
	}
	if c == nil {
		return resp, constant.NewError(constant.CodeCountryNotFound)
	}

	fields := map[string]interface{}{}
	if req.Code != "" {
		code := strings.ToUpper(strings.TrimSpace(req.Code))
		if code != c.Code {
			exist, err := s.store.GetCountryByCode(code)
			if err != nil {
				return resp, err
			}
			if exist != nil {
				return resp, constant.NewError(constant.CodeCountryExists)
			}
			fields["code"] = code
			c.Code = code
		}
	}
	if req.Name != "" {
		fields["name"] = req.Name
		c.Name = req.Name
	}
	if req.Currency != "" {
		currency := strings.ToUpper(req.Currency)
		fields["currency"] = currency
		c.Currency = currency
	}
	if req.PaymentMethods != nil {
		fields["payment_methods"] = *req.PaymentMethods
		c.PaymentMethods = req.PaymentMethods
	}
	if req.QrCodeURL != nil {
		fields["qr_code_url"] = *req.QrCodeURL
		c.QrCodeURL = req.QrCodeURL
	}
	if req.BankInfo != nil {
		fields["bank_info"] = *req.BankInfo
		c.BankInfo = req.BankInfo
	}
	if len(fields) == 0 {
		return countryResp(c), nil
	}
	if err := s.store.UpdateCountry(id, fields); err != nil {
		return resp, err
	}
	return countryResp(c), nil
}

// SetEnabled 启停国家
func (s *CountryService) SetEnabled(id uint64, enabled bool) (dto.CountryResp, error) {
	var resp dto.CountryResp
	c, err := s.store.GetCountryByID(id)
	if err != nil {
		return resp, err
	}
	if c == nil {
		return resp, constant.NewError(constant.CodeCountryNotFound)
	}

	status := mainmodel.CountryStatusDisabled
	if enabled {
		status = mainmodel.CountryStatusEnabled
	}
	if err := s.store.UpdateCountry(id, map[string]interface{}{"status": status}); err != nil {
		return resp, err
	}
	c.Status = status
	return countryResp(c), nil
}

// Delete 删除国家配置，名下存在订单时拒绝
func (s *CountryService) Delete(id uint64) error {
	c, err := s.store.GetCountryByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return constant.NewError(constant.CodeCountryNotFound)
	}

	cnt, err := s.orders.CountByCode(c.Code)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return constant.NewError(constant.CodeCountryInUse)
	}
	return s.store.DeleteCountry(id)
}
