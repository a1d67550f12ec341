package dao

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"recharge-order-api/internal/dal"
	ordermodel "recharge-order-api/internal/model/order"
)

// CallbackDao 回调流水，只追加
type CallbackDao struct {
	DB *gorm.DB
}

func NewCallbackDao() *CallbackDao {
	if dal.OrderDB == nil {
		log.Panic("[FATAL] dal.OrderDB is nil - database not initialized")
	}
	return &CallbackDao{DB: dal.OrderDB}
}

func (r *CallbackDao) checkDB() error {
	if r == nil || r.DB == nil {
		return errors.New("DB connection is nil")
	}
	return nil
}

// Append 追加一条回调流水
func (r *CallbackDao) Append(entry *ordermodel.CallbackLog) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("append callback log failed: %w", err)
	}
	return r.DB.Create(entry).Error
}
