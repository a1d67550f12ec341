package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"recharge-order-api/internal/constant"
	mainmodel "recharge-order-api/internal/model/main"
	ordermodel "recharge-order-api/internal/model/order"
)

// memDB 内存实现，替代 MySQL 跑服务层用例
type memDB struct {
	mu        sync.Mutex
	merchants map[uint64]*mainmodel.Merchant
	countries map[uint64]*mainmodel.Country
	orders    map[uint64]*ordermodel.RechargeOrder
	nextID    uint64
}

func newMemDB() *memDB {
	return &memDB{
		merchants: make(map[uint64]*mainmodel.Merchant),
		countries: make(map[uint64]*mainmodel.Country),
		orders:    make(map[uint64]*ordermodel.RechargeOrder),
	}
}

func (db *memDB) id() uint64 {
	db.nextID++
	return db.nextID
}

// ---- MerchantStore ----

func (db *memDB) GetActiveMerchantByApiKey(apiKey string) (*mainmodel.Merchant, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, m := range db.merchants {
		if m.ApiKey == apiKey && m.Status == mainmodel.MerchantStatusEnabled {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (db *memDB) GetMerchantByID(id uint64) (*mainmodel.Merchant, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if m, ok := db.merchants[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (db *memDB) GetMerchantByMerchantID(mid string) (*mainmodel.Merchant, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, m := range db.merchants {
		if m.MerchantID == mid {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (db *memDB) CreateMerchant(m *mainmodel.Merchant) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, exist := range db.merchants {
		if exist.MerchantID == m.MerchantID || exist.ApiKey == m.ApiKey {
			return gorm.ErrDuplicatedKey
		}
	}
	m.ID = db.id()
	cp := *m
	db.merchants[m.ID] = &cp
	return nil
}

func (db *memDB) UpdateMerchant(id uint64, fields map[string]interface{}) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	m, ok := db.merchants[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "merchant_id":
			m.MerchantID = v.(string)
		case "api_key":
			m.ApiKey = v.(string)
		case "secret_key":
			m.SecretKey = v.(string)
		case "callback_url":
			m.CallbackURL = v.(string)
		case "status":
			m.Status = v.(int8)
		case "updated_at":
			m.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (db *memDB) DeleteMerchant(id uint64) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	delete(db.merchants, id)
	return nil
}

// ---- CountryStore ----

func (db *memDB) GetActiveCountryByCode(code string) (*mainmodel.Country, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, c := range db.countries {
		if c.Code == code && c.Status == mainmodel.CountryStatusEnabled {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (db *memDB) GetCountryByID(id uint64) (*mainmodel.Country, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if c, ok := db.countries[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (db *memDB) GetCountryByCode(code string) (*mainmodel.Country, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, c := range db.countries {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (db *memDB) CreateCountry(c *mainmodel.Country) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, exist := range db.countries {
		if exist.Code == c.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	c.ID = db.id()
	cp := *c
	db.countries[c.ID] = &cp
	return nil
}

func (db *memDB) UpdateCountry(id uint64, fields map[string]interface{}) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	c, ok := db.countries[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "code":
			c.Code = v.(string)
		case "name":
			c.Name = v.(string)
		case "currency":
			c.Currency = v.(string)
		case "status":
			c.Status = v.(int8)
		case "payment_methods":
			s := v.(string)
			c.PaymentMethods = &s
		case "qr_code_url":
			s := v.(string)
			c.QrCodeURL = &s
		case "bank_info":
			s := v.(string)
			c.BankInfo = &s
		}
	}
	return nil
}

func (db *memDB) DeleteCountry(id uint64) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	delete(db.countries, id)
	return nil
}

// ---- OrderStore ----

func (db *memDB) Insert(o *ordermodel.RechargeOrder) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, exist := range db.orders {
		if exist.OrderID == o.OrderID || exist.PlatformOrderID == o.PlatformOrderID {
			return gorm.ErrDuplicatedKey
		}
	}
	o.ID = db.id()
	cp := *o
	db.orders[o.ID] = &cp
	return nil
}

func (db *memDB) GetByOrderID(orderID string) (*ordermodel.RechargeOrder, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, o := range db.orders {
		if o.OrderID == orderID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (db *memDB) GetByOrderIDAndApiKey(orderID, apiKey string) (*ordermodel.RechargeOrder, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, o := range db.orders {
		if o.OrderID == orderID && o.ApiKey == apiKey {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (db *memDB) GetByPlatformID(platformOrderID string) (*ordermodel.RechargeOrder, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, o := range db.orders {
		if o.PlatformOrderID == platformOrderID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (db *memDB) GetMerchantOrder(orderID, platformOrderID, apiKey string) (*ordermodel.RechargeOrder, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, o := range db.orders {
		if o.OrderID == orderID && o.PlatformOrderID == platformOrderID && o.ApiKey == apiKey {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (db *memDB) MarkSubmitted(id uint64, callbackStr, callbackImg *string, actualAmount *decimal.Decimal, submittedAt time.Time) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	o, ok := db.orders[id]
	if !ok || o.Status != constant.OrderStatusPending {
		return false, nil
	}
	o.Status = constant.OrderStatusSubmitted
	o.SubmittedAt = &submittedAt
	if callbackStr != nil {
		o.CallbackStr = callbackStr
	}
	if callbackImg != nil {
		o.CallbackImg = callbackImg
	}
	if actualAmount != nil {
		o.ActualAmount = actualAmount
	}
	return true, nil
}

func (db *memDB) Settle(id uint64, outcome int8, errorMsg *string, settledAt time.Time) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	o, ok := db.orders[id]
	if !ok || constant.IsTerminalStatus(o.Status) {
		return false, nil
	}
	o.Status = outcome
	if outcome == constant.OrderStatusSuccess {
		o.CallbackAt = &settledAt
		o.ErrorMsg = nil
	} else {
		o.CallbackAt = nil
		o.ErrorMsg = errorMsg
	}
	return true, nil
}

func (db *memDB) Delete(id uint64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	o, ok := db.orders[id]
	if !ok || !constant.IsFailedStatus(o.Status) {
		return false, nil
	}
	delete(db.orders, id)
	return true, nil
}

func (db *memDB) ListByStatus(status int8) ([]ordermodel.RechargeOrder, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []ordermodel.RechargeOrder
	for _, o := range db.orders {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (db *memDB) CountByCode(code string) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	var cnt int64
	for _, o := range db.orders {
		if o.Code == code {
			cnt++
		}
	}
	return cnt, nil
}

func (db *memDB) CountByApiKey(apiKey string) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	var cnt int64
	for _, o := range db.orders {
		if o.ApiKey == apiKey {
			cnt++
		}
	}
	return cnt, nil
}

// fakeScheduler 记录调度/取消的平台订单号
type fakeScheduler struct {
	mu        sync.Mutex
	scheduled []string
	cancelled []string
}

func (f *fakeScheduler) Schedule(pid string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, pid)
}

func (f *fakeScheduler) Cancel(pid string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, pid)
}

// seqGen 顺序号生成器
type seqGen struct{ n int }

func (g *seqGen) Next() string {
	g.n++
	return fmt.Sprintf("P%08d", g.n)
}
