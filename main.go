package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"recharge-order-api/internal/config"
	"recharge-order-api/internal/dal"
	"recharge-order-api/internal/dao"
	"recharge-order-api/internal/handler"
	"recharge-order-api/internal/idgen"
	"recharge-order-api/internal/middleware"
	"recharge-order-api/internal/mq"
	"recharge-order-api/internal/notify"
	"recharge-order-api/internal/service"
	"recharge-order-api/internal/settlement"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitMainDB()
	dal.InitOrderDB()
	dal.InitRedis()
	dal.InitRabbitMQ()

	// idgen
	gen, err := idgen.NewSnowflake(1, "P")
	if err != nil {
		log.Fatalf("init idgen failed: %v", err)
	}

	// services
	orderSvc := service.NewOrderService(gen)
	merchantSvc := service.NewMerchantService()
	countrySvc := service.NewCountryService()

	// 模拟结算：提交凭证后延迟判定，启动时恢复存量已提交订单
	if config.C.Settlement.Enabled {
		sim := settlement.NewSimulator(orderSvc, dao.NewOrderDao(),
			time.Duration(config.C.Settlement.DelaySec)*time.Second,
			config.C.Settlement.SuccessRate)
		orderSvc.SetScheduler(sim)
		if err := sim.RecoverStuck(); err != nil {
			log.Printf("recover stuck orders failed: %v", err)
		}
	}

	// start consumers
	notifier := notify.NewNotifier(config.C.Settlement.NotifyRetry)
	go mq.StartConsumers(notifier)

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recover())
	r.Use(middleware.RequestLogger())

	oh := handler.NewOrderHandler(orderSvc)
	ch := handler.NewCashierHandler(orderSvc)
	mh := handler.NewMerchantHandler(merchantSvc)
	nh := handler.NewCountryHandler(countrySvc)

	v1 := r.Group("/api/v1")

	// 商户通道，逐请求验签
	recharge := v1.Group("/recharge", middleware.TraceAuditMiddleware("recharge"))
	{
		recharge.POST("/createOrderMain", oh.Create)
		recharge.POST("/submitOrder", oh.Submit)
		recharge.POST("/queryOrder", oh.Query)
	}

	// 收银台通道，凭平台订单号访问
	cashier := v1.Group("/cashier", middleware.TraceAuditMiddleware("cashier"))
	{
		cashier.GET("/status/:platform_order_id", ch.Status)
		cashier.GET("/redirect/:platform_order_id", ch.Redirect)
		cashier.POST("/submit-payment", ch.Submit)
		cashier.GET("/:platform_order_id", ch.Info)
	}

	// 管理端
	admin := v1.Group("/admin", middleware.TraceAuditMiddleware("admin"))
	{
		admin.PUT("/orders/:order_id/status", oh.Settle)
		admin.DELETE("/orders/:order_id", oh.Delete)
		admin.POST("/orders/batch", oh.Batch)

		admin.POST("/merchants", mh.Create)
		admin.GET("/merchants/:id", mh.Get)
		admin.PUT("/merchants/:id", mh.Update)
		admin.PUT("/merchants/:id/enable", mh.Enable)
		admin.PUT("/merchants/:id/disable", mh.Disable)
		admin.POST("/merchants/:id/regenerate-key", mh.RegenerateKeys)
		admin.POST("/merchants/:id/regenerate-api-key", mh.RegenerateApiKey)
		admin.POST("/merchants/:id/regenerate-secret-key", mh.RegenerateSecretKey)
		admin.DELETE("/merchants/:id", mh.Delete)

		admin.POST("/countries", nh.Create)
		admin.GET("/countries/:id", nh.Get)
		admin.PUT("/countries/:id", nh.Update)
		admin.PUT("/countries/:id/enable", nh.Enable)
		admin.PUT("/countries/:id/disable", nh.Disable)
		admin.DELETE("/countries/:id", nh.Delete)
	}

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
