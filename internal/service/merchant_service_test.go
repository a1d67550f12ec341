package service

import (
	"testing"
	"time"

	"recharge-order-api/internal/constant"
	"recharge-order-api/internal/dto"
	mainmodel "recharge-order-api/internal/model/main"
	ordermodel "recharge-order-api/internal/model/order"
)

func TestMerchantCreate(t *testing.T) {
	db := newMemDB()
	svc := NewMerchantServiceWith(db, db)

	resp, err := svc.Create(dto.CreateMerchantReq{MerchantID: "M1001", CallbackURL: "https://m.example.com/cb"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.ApiKey == "" || resp.SecretKey == "" {
		t.Fatal("key pair not issued")
	}
	if resp.ApiKey == resp.SecretKey {
		t.Error("api key and secret key must differ")
	}
	if resp.Status != mainmodel.MerchantStatusEnabled {
		t.Errorf("status = %d, want enabled", resp.Status)
	}

	// 商户号唯一
	if _, err := svc.Create(dto.CreateMerchantReq{MerchantID: "M1001"}); constant.ErrCode(err) != constant.CodeMerchantExists {
		t.Errorf("err = %v, want merchant exists", err)
	}
}

// blindMerchantStore 让存在性预检落空，模拟并发窗口中的重复创建
type blindMerchantStore struct{ *memDB }

func (s blindMerchantStore) GetMerchantByMerchantID(string) (*mainmodel.Merchant, error) {
	return nil, nil
}

func TestMerchantCreateDuplicateRace(t *testing.T) {
	db := newMemDB()
	svc := NewMerchantServiceWith(blindMerchantStore{db}, db)

	if _, err := svc.Create(dto.CreateMerchantReq{MerchantID: "M1001"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// 预检没拦住时唯一索引冲突也要映射为业务冲突
	if _, err := svc.Create(dto.CreateMerchantReq{MerchantID: "M1001"}); constant.ErrCode(err) != constant.CodeMerchantExists {
		t.Errorf("err = %v, want merchant exists", err)
	}
}

func TestMerchantGetHidesSecret(t *testing.T) {
	db := newMemDB()
	svc := NewMerchantServiceWith(db, db)

	created, _ := svc.Create(dto.CreateMerchantReq{MerchantID: "M1001"})
	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SecretKey != "" {
		t.Error("secret key must not be returned on get")
	}
}

func TestMerchantRegenerateKeys(t *testing.T) {
	db := newMemDB()
	svc := NewMerchantServiceWith(db, db)

	created, _ := svc.Create(dto.CreateMerchantReq{MerchantID: "M1001"})

	rotated, err := svc.RegenerateBoth(created.ID)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if rotated.ApiKey == created.ApiKey {
		t.Error("api key not rotated")
	}
	if rotated.SecretKey == created.SecretKey {
		t.Error("secret key not rotated")
	}

	// 旧密钥立即失效
	if m, _ := db.GetActiveMerchantByApiKey(created.ApiKey); m != nil {
		t.Error("old api key still resolves")
	}
	if m, _ := db.GetActiveMerchantByApiKey(rotated.ApiKey); m == nil {
		t.Error("new api key does not resolve")
	}
}

func TestMerchantRegenerateSecretOnly(t *testing.T) {
	db := newMemDB()
	svc := NewMerchantServiceWith(db, db)

	created, _ := svc.Create(dto.CreateMerchantReq{MerchantID: "M1001"})
	rotated, err := svc.RegenerateSecretKey(created.ID)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if rotated.ApiKey != created.ApiKey {
		t.Error("api key must stay unchanged")
	}
	if rotated.SecretKey == created.SecretKey {
		t.Error("secret key not rotated")
	}
}

func TestMerchantSetEnabled(t *testing.T) {
	db := newMemDB()
	svc := NewMerchantServiceWith(db, db)

	created, _ := svc.Create(dto.CreateMerchantReq{MerchantID: "M1001"})

	if _, err := svc.SetEnabled(created.ID, false); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if m, _ := db.GetActiveMerchantByApiKey(created.ApiKey); m != nil {
		t.Error("disabled merchant still resolves as active")
	}

	if _, err := svc.SetEnabled(created.ID, true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if m, _ := db.GetActiveMerchantByApiKey(created.ApiKey); m == nil {
		t.Error("re-enabled merchant does not resolve")
	}
}

func TestMerchantUpdate(t *testing.T) {
	db := newMemDB()
	svc := NewMerchantServiceWith(db, db)

	created, _ := svc.Create(dto.CreateMerchantReq{MerchantID: "M1001"})
	_, _ = svc.Create(dto.CreateMerchantReq{MerchantID: "M2002"})

	cb := "https://new.example.com/cb"
	updated, err := svc.Update(created.ID, dto.UpdateMerchantReq{CallbackURL: &cb})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CallbackURL != cb {
		t.Errorf("callback url = %s", updated.CallbackURL)
	}

	// 改成已占用的商户号
	if _, err := svc.Update(created.ID, dto.UpdateMerchantReq{MerchantID: "M2002"}); constant.ErrCode(err) != constant.CodeMerchantExists {
		t.Errorf("err = %v, want merchant exists", err)
	}
}

func TestMerchantDeleteGuardedByOrders(t *testing.T) {
	db := newMemDB()
	svc := NewMerchantServiceWith(db, db)

	created, _ := svc.Create(dto.CreateMerchantReq{MerchantID: "M1001"})

	_ = db.Insert(&ordermodel.RechargeOrder{
		OrderID:         "ORD-1",
		PlatformOrderID: "P1",
		ApiKey:          created.ApiKey,
		Code:            "BR",
		Status:          constant.OrderStatusPending,
		CreatedAt:       time.Now(),
	})

	if err := svc.Delete(created.ID); constant.ErrCode(err) != constant.CodeMerchantInUse {
		t.Errorf("err = %v, want merchant in use", err)
	}

	// 清掉订单后可删
	for id := range db.orders {
		delete(db.orders, id)
	}
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if m, _ := db.GetMerchantByID(created.ID); m != nil {
		t.Error("merchant still present after delete")
	}
}

func TestMerchantNotFound(t *testing.T) {
	db := newMemDB()
	svc := NewMerchantServiceWith(db, db)

	if _, err := svc.Get(42); constant.ErrCode(err) != constant.CodeMerchantNotFound {
		t.Errorf("get: err = %v, want not found", err)
	}
	if err := svc.Delete(42); constant.ErrCode(err) != constant.CodeMerchantNotFound {
		t.Errorf("delete: err = %v, want not found", err)
	}
}
