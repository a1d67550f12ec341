package idgen

// Generator 平台订单号生成器。注入接口便于测试时使用确定性实现。
type Generator interface {
	Next() string
}
