package utils

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// GenerateSign 生成签名（用于请求或验证）。
// 规则：剔除 sign 和空串字段，按键名字典序拼接 k=v&...&key=secret，MD5 后转大写。
// 仅空串被剔除，空白字符串是合法值、参与签名。
// 无有效参数时签名串退化为 &key=secret，仍是合法签名。
func GenerateSign(params map[string]string, secretKey string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == "sign" || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(params[k])
		if i < len(keys)-1 {
			sb.WriteString("&")
		}
	}
	sb.WriteString("&key=")
	sb.WriteString(secretKey)

	hash := md5.Sum([]byte(sb.String()))
	return strings.ToUpper(hex.EncodeToString(hash[:]))
}

// VerifySign 验证签名是否匹配
func VerifySign(params map[string]string, secretKey string) bool {
	receivedSign := params["sign"]
	if receivedSign == "" {
		return false
	}
	expectedSign := GenerateSign(params, secretKey)
	return strings.EqualFold(receivedSign, expectedSign)
}
