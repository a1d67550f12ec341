package settlement

import (
	"sync"
	"testing"
	"time"

	"recharge-order-api/internal/constant"
	ordermodel "recharge-order-api/internal/model/order"
)

type settleCall struct {
	pid     string
	outcome int8
	reason  string
}

type fakeSettler struct {
	mu    sync.Mutex
	calls []settleCall
	fired chan settleCall
	err   error
}

func newFakeSettler() *fakeSettler {
	return &fakeSettler{fired: make(chan settleCall, 16)}
}

func (f *fakeSettler) SettleByPlatformID(pid string, outcome int8, reason string) error {
	f.mu.Lock()
	call := settleCall{pid: pid, outcome: outcome, reason: reason}
	f.calls = append(f.calls, call)
	f.mu.Unlock()
	f.fired <- call
	return f.err
}

func (f *fakeSettler) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeLister struct{ orders []ordermodel.RechargeOrder }

func (f *fakeLister) ListByStatus(status int8) ([]ordermodel.RechargeOrder, error) {
	return f.orders, nil
}

func waitFire(t *testing.T, settler *fakeSettler) settleCall {
	t.Helper()
	select {
	case call := <-settler.fired:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("settlement did not fire in time")
		return settleCall{}
	}
}

func TestScheduleFiresSuccess(t *testing.T) {
	settler := newFakeSettler()
	sim := NewSimulator(settler, &fakeLister{}, 10*time.Millisecond, 0.7)
	sim.rng = func() float64 { return 0.1 } // < successRate

	sim.Schedule("P1")
	call := waitFire(t, settler)

	if call.pid != "P1" {
		t.Errorf("pid = %s", call.pid)
	}
	if call.outcome != constant.OrderStatusSuccess {
		t.Errorf("outcome = %d, want success", call.outcome)
	}
	if call.reason != "" {
		t.Errorf("reason = %s, want empty", call.reason)
	}
}

func TestScheduleFiresFailure(t *testing.T) {
	settler := newFakeSettler()
	sim := NewSimulator(settler, &fakeLister{}, 10*time.Millisecond, 0.7)
	sim.rng = func() float64 { return 0.99 }
	sim.failPicker = func() int8 { return constant.OrderStatusFailedFrozen }

	sim.Schedule("P1")
	call := waitFire(t, settler)

	if call.outcome != constant.OrderStatusFailedFrozen {
		t.Errorf("outcome = %d, want frozen", call.outcome)
	}
	if call.reason != constant.StatusText(constant.OrderStatusFailedFrozen) {
		t.Errorf("reason = %s", call.reason)
	}
}

func TestCancelStopsTimer(t *testing.T) {
	settler := newFakeSettler()
	sim := NewSimulator(settler, &fakeLister{}, 30*time.Millisecond, 1)
	sim.rng = func() float64 { return 0 }

	sim.Schedule("P1")
	sim.Cancel("P1")

	time.Sleep(100 * time.Millisecond)
	if n := settler.callCount(); n != 0 {
		t.Errorf("settlement fired after cancel: %d calls", n)
	}
}

func TestRescheduleResetsTimer(t *testing.T) {
	settler := newFakeSettler()
	sim := NewSimulator(settler, &fakeLister{}, 20*time.Millisecond, 1)
	sim.rng = func() float64 { return 0 }

	sim.Schedule("P1")
	sim.Schedule("P1")
	waitFire(t, settler)

	time.Sleep(60 * time.Millisecond)
	if n := settler.callCount(); n != 1 {
		t.Errorf("duplicate schedule fired %d times, want 1", n)
	}
}

func TestRecoverStuck(t *testing.T) {
	settler := newFakeSettler()
	lister := &fakeLister{orders: []ordermodel.RechargeOrder{
		{PlatformOrderID: "P1", Status: constant.OrderStatusSubmitted},
		{PlatformOrderID: "P2", Status: constant.OrderStatusSubmitted},
	}}
	sim := NewSimulator(settler, lister, 10*time.Millisecond, 1)
	sim.rng = func() float64 { return 0 }

	if err := sim.RecoverStuck(); err != nil {
		t.Fatalf("recover: %v", err)
	}

	got := map[string]bool{}
	got[waitFire(t, settler).pid] = true
	got[waitFire(t, settler).pid] = true
	if !got["P1"] || !got["P2"] {
		t.Errorf("recovered orders = %v", got)
	}
}

func TestStopClearsTimers(t *testing.T) {
	settler := newFakeSettler()
	sim := NewSimulator(settler, &fakeLister{}, 30*time.Millisecond, 1)
	sim.rng = func() float64 { return 0 }

	sim.Schedule("P1")
	sim.Schedule("P2")
	sim.Stop()

	time.Sleep(100 * time.Millisecond)
	if n := settler.callCount(); n != 0 {
		t.Errorf("settlement fired after stop: %d calls", n)
	}
}
