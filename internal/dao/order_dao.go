package dao

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"recharge-order-api/internal/constant"
	"recharge-order-api/internal/dal"
	ordermodel "recharge-order-api/internal/model/order"
)

type OrderDao struct {
	DB *gorm.DB
}

// 工厂方法：默认使用 dal.OrderDB
func NewOrderDao() *OrderDao {
	if dal.OrderDB == nil {
		log.Panic("[FATAL] dal.OrderDB is nil - database not initialized")
	}
	return &OrderDao{DB: dal.OrderDB}
}

func (r *OrderDao) checkDB() error {
	if r == nil || r.DB == nil {
		return errors.New("DB connection is nil")
	}
	return nil
}

// Insert 插入订单，order_id / platform_order_id 唯一索引兜底并发重复
func (r *OrderDao) Insert(o *ordermodel.RechargeOrder) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("insert order failed: %w", err)
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
}

// GetByOrderID 按商户订单号查询
func (r *OrderDao) GetByOrderID(orderID string) (*ordermodel.RechargeOrder, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get by order id failed: %w", err)
	}
	var m ordermodel.RechargeOrder
	err := r.DB.Where("order_id = ?", orderID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// GetByOrderIDAndApiKey 按商户订单号 + 商户API密钥查询
func (r *OrderDao) GetByOrderIDAndApiKey(orderID, apiKey string) (*ordermodel.RechargeOrder, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get by order id and api key failed: %w", err)
	}
	var m ordermodel.RechargeOrder
	err := r.DB.Where("order_id = ? AND api_key = ?", orderID, apiKey).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// GetByPlatformID 按平台订单号查询
func (r *OrderDao) GetByPlatformID(platformOrderID string) (*ordermodel.RechargeOrder, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get by platform id failed: %w", err)
	}
	var m ordermodel.RechargeOrder
	err := r.DB.Where("platform_order_id = ?", platformOrderID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// GetMerchantOrder 商户提交凭证时按三元组定位订单
func (r *OrderDao) GetMerchantOrder(orderID, platformOrderID, apiKey string) (*ordermodel.RechargeOrder, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get merchant order failed: %w", err)
	}
	var m ordermodel.RechargeOrder
	err := r.DB.Where("order_id = ? AND platform_order_id = ? AND api_key = ?",
		orderID, platformOrderID, apiKey).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// MarkSubmitted 提交凭证：条件更新 WHERE status = 0，返回是否命中。
// 以原子条件更新代替读后写，并发重复提交只会有一次成功。
func (r *OrderDao) MarkSubmitted(id uint64, callbackStr, callbackImg *string, actualAmount *decimal.Decimal, submittedAt time.Time) (bool, error) {
	if err := r.checkDB(); err != nil {
		return false, fmt.Errorf("mark submitted failed: %w", err)
	}
	fields := map[string]interface{}{
		"status":       constant.OrderStatusSubmitted,
		"submitted_at": submittedAt,
	}
	if callbackStr != nil {
		fields["callback_str"] = *callbackStr
	}
	if callbackImg != nil {
		fields["callback_img"] = *callbackImg
	}
	if actualAmount != nil {
		fields["actual_amount"] = *actualAmount
	}

	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&ordermodel.RechargeOrder{}).
			Where("id = ? AND status = ?", id, constant.OrderStatusPending).
			Updates(fields)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return false, fmt.Errorf("update failed: %w", err)
	}
	return affected > 0, nil
}

// Settle 结算：终态订单不可再变更，条件更新 WHERE status NOT IN 终态。
// 成功结果写入 callback_at 并清空 error_msg；失败结果写入 error_msg 并清空 callback_at。
func (r *OrderDao) Settle(id uint64, outcome int8, errorMsg *string, settledAt time.Time) (bool, error) {
	if err := r.checkDB(); err != nil {
		return false, fmt.Errorf("settle order failed: %w", err)
	}
	fields := map[string]interface{}{"status": outcome}
	if outcome == constant.OrderStatusSuccess {
		fields["callback_at"] = settledAt
		fields["error_msg"] = nil
	} else {
		fields["callback_at"] = nil
		fields["error_msg"] = errorMsg
	}

	terminal := []int8{
		constant.OrderStatusSuccess,
		constant.OrderStatusFailedNoFunds,
		constant.OrderStatusFailedFrozen,
		constant.OrderStatusFailedReturned,
	}

	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&ordermodel.RechargeOrder{}).
			Where("id = ? AND status NOT IN ?", id, terminal).
			Updates(fields)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return false, fmt.Errorf("update failed: %w", err)
	}
	return affected > 0, nil
}

// Delete 删除订单：仅失败终态可删，条件删除返回是否命中
func (r *OrderDao) Delete(id uint64) (bool, error) {
	if err := r.checkDB(); err != nil {
		return false, fmt.Errorf("delete order failed: %w", err)
	}
	failed := []int8{
		constant.OrderStatusFailedNoFunds,
		constant.OrderStatusFailedFrozen,
		constant.OrderStatusFailedReturned,
	}

	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND status IN ?", id, failed).
			Delete(&ordermodel.RechargeOrder{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return false, fmt.Errorf("delete failed: %w", err)
	}
	return affected > 0, nil
}

// ListByStatus 按状态查询订单，结算恢复扫描使用
func (r *OrderDao) ListByStatus(status int8) ([]ordermodel.RechargeOrder, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("list by status failed: %w", err)
	}
	var orders []ordermodel.RechargeOrder
	if err := r.DB.Where("status = ?", status).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return orders, nil
}

// CountByCode 国家删除前引用检查
func (r *OrderDao) CountByCode(code string) (int64, error) {
	if err := r.checkDB(); err != nil {
		return 0, fmt.Errorf("count by code failed: %w", err)
	}
	var cnt int64
	if err := r.DB.Model(&ordermodel.RechargeOrder{}).Where("code = ?", code).Count(&cnt).Error; err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return cnt, nil
}

// CountByApiKey 商户删除前引用检查
func (r *OrderDao) CountByApiKey(apiKey string) (int64, error) {
	if err := r.checkDB(); err != nil {
		return 0, fmt.Errorf("count by api key failed: %w", err)
	}
	var cnt int64
	if err := r.DB.Model(&ordermodel.RechargeOrder{}).Where("api_key = ?", apiKey).Count(&cnt).Error; err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return cnt, nil
}
