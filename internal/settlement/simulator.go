package settlement

import (
	"math/rand"
	"sync"
	"time"

	"recharge-order-api/internal/constant"
	"recharge-order-api/internal/logger"
	ordermodel "recharge-order-api/internal/model/order"
)

// Settler 结算执行方，由订单服务实现
type Settler interface {
	SettleByPlatformID(platformOrderID string, outcome int8, reason string) error
}

// OrderLister 已提交订单扫描，启动恢复用
type OrderLister interface {
	ListByStatus(status int8) ([]ordermodel.RechargeOrder, error)
}

// Simulator 模拟上游审核：凭证提交后延迟随机判定结算结果。
// 定时器按平台订单号登记，管理端先结算可取消。
type Simulator struct {
	settler Settler
	orders  OrderLister

	delay       time.Duration
	successRate float64
	rng         func() float64
	failPicker  func() int8

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewSimulator(settler Settler, orders OrderLister, delay time.Duration, successRate float64) *Simulator {
	return &Simulator{
		settler:     settler,
		orders:      orders,
		delay:       delay,
		successRate: successRate,
		rng:         rand.Float64,
		failPicker:  pickFailure,
		timers:      make(map[string]*time.Timer),
	}
}

// 失败结果在三种失败终态中随机取一种
func pickFailure() int8 {
	outcomes := []int8{
		constant.OrderStatusFailedNoFunds,
		constant.OrderStatusFailedFrozen,
		constant.OrderStatusFailedReturned,
	}
	return outcomes[rand.Intn(len(outcomes))]
}

// Schedule 登记一笔待结算订单，重复登记会重置定时器
func (s *Simulator) Schedule(platformOrderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[platformOrderID]; ok {
		t.Stop()
	}
	s.timers[platformOrderID] = time.AfterFunc(s.delay, func() {
		s.fire(platformOrderID)
	})
}

// Cancel 撤销挂起的模拟结算，订单已被处理时调用
func (s *Simulator) Cancel(platformOrderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[platformOrderID]; ok {
		t.Stop()
		delete(s.timers, platformOrderID)
	}
}

func (s *Simulator) fire(platformOrderID string) {
	s.mu.Lock()
	delete(s.timers, platformOrderID)
	s.mu.Unlock()

	outcome := constant.OrderStatusSuccess
	reason := ""
	if s.rng() >= s.successRate {
		outcome = s.failPicker()
		reason = constant.StatusText(outcome)
	}

	err := s.settler.SettleByPlatformID(platformOrderID, outcome, reason)
	if err != nil {
		// 订单可能已被管理端抢先结算，状态冲突按预期静默
		if constant.ErrCode(err) == constant.CodeOrderStatusInvalid {
			return
		}
		logger.Log.Errorf("[SETTLEMENT] 模拟结算失败: 平台订单号=%s, err=%v", platformOrderID, err)
		return
	}
	logger.Log.Infof("[SETTLEMENT] 模拟结算完成: 平台订单号=%s, 结果=%d", platformOrderID, outcome)
}

// RecoverStuck 启动时扫描已提交订单，为进程重启丢失的定时器补登记
func (s *Simulator) RecoverStuck() error {
	orders, err := s.orders.ListByStatus(constant.OrderStatusSubmitted)
	if err != nil {
		return err
	}
	for _, o := range orders {
		s.Schedule(o.PlatformOrderID)
	}
	if len(orders) > 0 {
		logger.Log.Infof("[SETTLEMENT] 恢复 %d 笔待结算订单", len(orders))
	}
	return nil
}

// Stop 停掉全部挂起的定时器
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for pid, t := range s.timers {
		t.Stop()
		delete(s.timers, pid)
	}
}
