package utils

import (
	"encoding/hex"
	"testing"
)

func TestNewSecretKey(t *testing.T) {
	k1, err := NewSecretKey()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(k1) != 64 {
		t.Errorf("key length = %d, want 64", len(k1))
	}
	if _, err := hex.DecodeString(k1); err != nil {
		t.Errorf("key is not hex: %v", err)
	}

	k2, _ := NewSecretKey()
	if k1 == k2 {
		t.Error("two generated keys are identical")
	}
}
