package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// HttpPostJson 发送 POST JSON 请求，返回响应状态码与 body
func HttpPostJson(url string, data interface{}) (int, string, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return 0, "", fmt.Errorf("marshal json error: %v", err)
	}

	log.Printf("回调通知URL: %v,回调参数: %v", url, string(jsonData))
	client := &http.Client{Timeout: 10 * time.Second}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, "", fmt.Errorf("new request error: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("http request error: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("read response error: %v", err)
	}
	return resp.StatusCode, string(body), nil
}
