package service

import (
	"time"

	"github.com/shopspring/decimal"

	mainmodel "recharge-order-api/internal/model/main"
	ordermodel "recharge-order-api/internal/model/order"
)

// 服务层依赖窄接口，生产环境由 dao 实现，测试注入内存实现。

// MerchantStore 商户配置存储
type MerchantStore interface {
	GetActiveMerchantByApiKey(apiKey string) (*mainmodel.Merchant, error)
	GetMerchantByID(id uint64) (*mainmodel.Merchant, error)
	GetMerchantByMerchantID(mid string) (*mainmodel.Merchant, error)
	CreateMerchant(m *mainmodel.Merchant) error
	UpdateMerchant(id uint64, fields map[string]interface{}) error
	DeleteMerchant(id uint64) error
}

// CountryStore 国家配置存储
type CountryStore interface {
	GetActiveCountryByCode(code string) (*mainmodel.Country, error)
	GetCountryByID(id uint64) (*mainmodel.Country, error)
	GetCountryByCode(code string) (*mainmodel.Country, error)
	CreateCountry(c *mainmodel.Country) error
	UpdateCountry(id uint64, fields map[string]interface{}) error
	DeleteCountry(id uint64) error
}

// OrderStore 订单存储，状态前置条件由条件更新保证
type OrderStore interface {
	Insert(o *ordermodel.RechargeOrder) error
	GetByOrderID(orderID string) (*ordermodel.RechargeOrder, error)
	GetByOrderIDAndApiKey(orderID, apiKey string) (*ordermodel.RechargeOrder, error)
	GetByPlatformID(platformOrderID string) (*ordermodel.RechargeOrder, error)
	GetMerchantOrder(orderID, platformOrderID, apiKey string) (*ordermodel.RechargeOrder, error)
	MarkSubmitted(id uint64, callbackStr, callbackImg *string, actualAmount *decimal.Decimal, submittedAt time.Time) (bool, error)
	Settle(id uint64, outcome int8, errorMsg *string, settledAt time.Time) (bool, error)
	Delete(id uint64) (bool, error)
	ListByStatus(status int8) ([]ordermodel.RechargeOrder, error)
	CountByCode(code string) (int64, error)
	CountByApiKey(apiKey string) (int64, error)
}

// OrderRefCounter 配置删除前的订单引用检查
type OrderRefCounter interface {
	CountByCode(code string) (int64, error)
	CountByApiKey(apiKey string) (int64, error)
}

// SettlementScheduler 模拟结算调度，提交凭证后挂起、管理端结算时取消
type SettlementScheduler interface {
	Schedule(platformOrderID string)
	Cancel(platformOrderID string)
}
