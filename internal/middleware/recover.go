package middleware

import (
	"github.com/gin-gonic/gin"

	"recharge-order-api/internal/logger"
)

func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.Errorf("panic recovered: %v path=%s", r, c.Request.URL.Path)
				c.JSON(500, gin.H{"code": 500, "msg": "internal error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}
