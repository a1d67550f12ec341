package dao

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"recharge-order-api/internal/dal"
	mainmodel "recharge-order-api/internal/model/main"
)

type MainDao struct {
	DB *gorm.DB
}

// 工厂方法：默认使用 dal.MainDB
func NewMainDao() *MainDao {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &MainDao{DB: dal.MainDB}
}

func (r *MainDao) checkDB() error {
	if r == nil || r.DB == nil {
		return errors.New("DB connection is nil")
	}
	return nil
}

// GetActiveMerchantByApiKey 仅匹配启用商户，禁用与不存在对调用方不可区分
func (r *MainDao) GetActiveMerchantByApiKey(apiKey string) (*mainmodel.Merchant, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get merchant by api key failed: %w", err)
	}
	var m mainmodel.Merchant
	err := r.DB.Where("api_key = ? AND status = ?", apiKey, mainmodel.MerchantStatusEnabled).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// GetMerchantByID 按主键查询商户
func (r *MainDao) GetMerchantByID(id uint64) (*mainmodel.Merchant, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get merchant by id failed: %w", err)
	}
	var m mainmodel.Merchant
	err := r.DB.Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// GetMerchantByMerchantID 按商户ID查询
func (r *MainDao) GetMerchantByMerchantID(mid string) (*mainmodel.Merchant, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get merchant by merchant id failed: %w", err)
	}
	var m mainmodel.Merchant
	err := r.DB.Where("merchant_id = ?", mid).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// CreateMerchant 创建商户，唯一索引兜底并发重复
func (r *MainDao) CreateMerchant(m *mainmodel.Merchant) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("create merchant failed: %w", err)
	}
	return r.DB.Create(m).Error
}

// UpdateMerchant 更新商户字段
func (r *MainDao) UpdateMerchant(id uint64, fields map[string]interface{}) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("update merchant failed: %w", err)
	}
	return r.DB.Model(&mainmodel.Merchant{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteMerchant 删除商户
func (r *MainDao) DeleteMerchant(id uint64) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("delete merchant failed: %w", err)
	}
	return r.DB.Where("id = ?", id).Delete(&mainmodel.Merchant{}).Error
}

// GetActiveCountryByCode 仅匹配启用国家
func (r *MainDao) GetActiveCountryByCode(code string) (*mainmodel.Country, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get country by code failed: %w", err)
	}
	var c mainmodel.Country
	err := r.DB.Where("code = ? AND status = ?", code, mainmodel.CountryStatusEnabled).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &c, nil
}

// GetCountryByID 按主键查询国家
func (r *MainDao) GetCountryByID(id uint64) (*mainmodel.Country, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get country by id failed: %w", err)
	}
	var c mainmodel.Country
	err := r.DB.Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &c, nil
}

// GetCountryByCode 按编号查询国家，不限状态
func (r *MainDao) GetCountryByCode(code string) (*mainmodel.Country, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get country by code failed: %w", err)
	}
	var c mainmodel.Country
	err := r.DB.Where("code = ?", code).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &c, nil
}

// CreateCountry 创建国家配置
func (r *MainDao) CreateCountry(c *mainmodel.Country) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("create country failed: %w", err)
	}
	return r.DB.Create(c).Error
}

// UpdateCountry 更新国家字段
func (r *MainDao) UpdateCountry(id uint64, fields map[string]interface{}) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("update country failed: %w", err)
	}
	return r.DB.Model(&mainmodel.Country{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteCountry 删除国家配置
func (r *MainDao) DeleteCountry(id uint64) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("delete country failed: %w", err)
	}
	return r.DB.Where("id = ?", id).Delete(&mainmodel.Country{}).Error
}
