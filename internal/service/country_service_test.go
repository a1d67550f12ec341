package service

import (
	"testing"
	"time"

	"recharge-order-api/internal/constant"
	"recharge-order-api/internal/dto"
	mainmodel "recharge-order-api/internal/model/main"
	ordermodel "recharge-order-api/internal/model/order"
)

func TestCountryCreateNormalizesCode(t *testing.T) {
	db := newMemDB()
	svc := NewCountryServiceWith(db, db)

	resp, err := svc.Create(dto.CreateCountryReq{Code: " br ", Name: "Brazil", Currency: "brl"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Code != "BR" {
		t.Errorf("code = %s, want BR", resp.Code)
	}
	if resp.Currency != "BRL" {
		t.Errorf("currency = %s, want BRL", resp.Currency)
	}
	if resp.Status != mainmodel.CountryStatusEnabled {
		t.Errorf("status = %d, want enabled", resp.Status)
	}

	// 编号唯一，大小写视为同一编号
	if _, err := svc.Create(dto.CreateCountryReq{Code: "br", Name: "Brazil", Currency: "BRL"}); constant.ErrCode(err) != constant.CodeCountryExists {
		t.Errorf("err = %v, want country exists", err)
	}
}

// blindCountryStore 让存在性预检落空，模拟并发窗口中的重复创建
type blindCountryStore struct{ *memDB }

func (s blindCountryStore) GetCountryByCode(string) (*mainmodel.Country, error) {
	return nil, nil
}

func TestCountryCreateDuplicateRace(t *testing.T) {
	db := newMemDB()
	svc := NewCountryServiceWith(blindCountryStore{db}, db)

	if _, err := svc.Create(dto.CreateCountryReq{Code: "BR", Name: "Brazil", Currency: "BRL"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(dto.CreateCountryReq{Code: "BR", Name: "Brazil", Currency: "BRL"}); constant.ErrCode(err) != constant.CodeCountryExists {
		t.Errorf("err = %v, want country exists", err)
	}
}

func TestCountrySetEnabled(t *testing.T) {
	db := newMemDB()
	svc := NewCountryServiceWith(db, db)

	created, _ := svc.Create(dto.CreateCountryReq{Code: "BR", Name: "Brazil", Currency: "BRL"})

	if _, err := svc.SetEnabled(created.ID, false); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if c, _ := db.GetActiveCountryByCode("BR"); c != nil {
		t.Error("disabled country still resolves as active")
	}

	if _, err := svc.SetEnabled(created.ID, true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if c, _ := db.GetActiveCountryByCode("BR"); c == nil {
		t.Error("re-enabled country does not resolve")
	}
}

func TestCountryUpdate(t *testing.T) {
	db := newMemDB()
	svc := NewCountryServiceWith(db, db)

	created, _ := svc.Create(dto.CreateCountryReq{Code: "BR", Name: "Brazil", Currency: "BRL"})
	_, _ = svc.Create(dto.CreateCountryReq{Code: "MX", Name: "Mexico", Currency: "MXN"})

	methods := `["pix"]`
	updated, err := svc.Update(created.ID, dto.UpdateCountryReq{Name: "Brasil", PaymentMethods: &methods})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Brasil" {
		t.Errorf("name = %s", updated.Name)
	}

	c, _ := db.GetCountryByID(created.ID)
	if c.PaymentMethods == nil || *c.PaymentMethods != methods {
		t.Errorf("payment methods = %v", c.PaymentMethods)
	}

	// 改成已占用的编号
	if _, err := svc.Update(created.ID, dto.UpdateCountryReq{Code: "mx"}); constant.ErrCode(err) != constant.CodeCountryExists {
		t.Errorf("err = %v, want country exists", err)
	}
}

func TestCountryDeleteGuardedByOrders(t *testing.T) {
	db := newMemDB()
	svc := NewCountryServiceWith(db, db)

	created, _ := svc.Create(dto.CreateCountryReq{Code: "BR", Name: "Brazil", Currency: "BRL"})

	_ = db.Insert(&ordermodel.RechargeOrder{
		OrderID:         "ORD-1",
		PlatformOrderID: "P1",
		ApiKey:          "ak",
		Code:            "BR",
		Status:          constant.OrderStatusSuccess,
		CreatedAt:       time.Now(),
	})

	if err := svc.Delete(created.ID); constant.ErrCode(err) != constant.CodeCountryInUse {
		t.Errorf("err = %v, want country in use", err)
	}

	for id := range db.orders {
		delete(db.orders, id)
	}
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if c, _ := db.GetCountryByID(created.ID); c != nil {
		t.Error("country still present after delete")
	}
}

func TestCountryNotFound(t *testing.T) {
	db := newMemDB()
	svc := NewCountryServiceWith(db, db)

	if _, err := svc.Get(42); constant.ErrCode(err) != constant.CodeCountryNotFound {
		t.Errorf("get: err = %v, want not found", err)
	}
	if _, err := svc.SetEnabled(42, true); constant.ErrCode(err) != constant.CodeCountryNotFound {
		t.Errorf("enable: err = %v, want not found", err)
	}
}
