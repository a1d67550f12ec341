package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewSecretKey 生成 32 字节随机密钥，hex 编码后 64 位
func NewSecretKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate secret key failed: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
