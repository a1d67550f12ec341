package constant

// ErrorInfo 错误信息结构
type ErrorInfo struct {
	CN string `json:"cn"` // 中文错误信息
	EN string `json:"en"` // 英文错误信息
}

// ErrorMessages 错误信息映射
var ErrorMessages = map[int]ErrorInfo{
	// 系统错误
	CodeSuccess:       {"操作成功", "Success"},
	CodeInvalidParams: {"缺少必填参数", "Missing required parameters"},
	CodeSystemError:   {"系统错误", "System error"},
	CodeDatabaseError: {"数据库错误", "Database error"},

	// 商户相关错误
	CodeMerchantInvalid:  {"无效的API密钥或商户已禁用", "Invalid API key or merchant disabled"},
	CodeSignatureError:   {"签名验证失败", "Signature verification failed"},
	CodeMerchantNotFound: {"商户不存在", "Merchant not found"},
	CodeMerchantExists:   {"商户ID已存在", "Merchant ID already exists"},
	CodeMerchantInUse:    {"该商户下存在订单记录，无法删除", "Merchant has order records and cannot be deleted"},

	// 订单相关错误
	CodeOrderNotFound:      {"订单不存在", "Order not found"},
	CodeOrderAlreadyExist:  {"订单号已存在", "Order ID already exists"},
	CodeOrderStatusInvalid: {"订单状态不允许当前操作", "Order status does not allow this operation"},
	CodeProofRequired:      {"必须提供付款凭证字符串或图片", "Payment proof string or image is required"},
	CodeOrderNotDeletable:  {"只能删除失败状态的订单", "Only failed orders can be deleted"},
	CodeSettleOutcome:      {"无效的订单状态", "Invalid order status"},

	// 国家相关错误
	CodeCountryInvalid:  {"无效的国家编号", "Invalid country code"},
	CodeCountryExists:   {"国家编号已存在", "Country code already exists"},
	CodeCountryNotFound: {"国家不存在", "Country not found"},
	CodeCountryInUse:    {"该国家下存在订单记录，无法删除", "Country has order records and cannot be deleted"},
}
