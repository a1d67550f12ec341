package constant

// 系统级错误码 (1xxx)
const (
	CodeSuccess       = 0
	CodeInvalidParams = 1000 // 参数缺失或格式错误
	CodeSystemError   = 1001 // 系统内部错误
	CodeDatabaseError = 1002 // 数据库错误
)

// 商户相关错误码 (2xxx)
const (
	CodeMerchantInvalid  = 2000 // API密钥无效或商户已禁用，两种情况对外不区分
	CodeSignatureError   = 2001 // 签名验证失败
	CodeMerchantNotFound = 2002 // 商户不存在
	CodeMerchantExists   = 2003 // 商户ID已存在
	CodeMerchantInUse    = 2004 // 商户名下存在订单，禁止删除
)

// 订单相关错误码 (21xx)
const (
	CodeOrderNotFound      = 2100 // 订单不存在
	CodeOrderAlreadyExist  = 2101 // 商户订单号已存在
	CodeOrderStatusInvalid = 2102 // 订单状态不允许当前操作
	CodeProofRequired      = 2103 // 缺少付款凭证字符串或图片
	CodeOrderNotDeletable  = 2104 // 仅失败终态订单可删除
	CodeSettleOutcome      = 2105 // 无效的结算结果
)

// 国家相关错误码 (22xx)
const (
	CodeCountryInvalid  = 2200 // 国家编号不存在或已禁用
	CodeCountryExists   = 2201 // 国家编号已存在
	CodeCountryNotFound = 2202 // 国家不存在
	CodeCountryInUse    = 2203 // 国家名下存在订单，禁止删除
)
