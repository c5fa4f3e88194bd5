package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误信封，code 给客户端做分支，message 给人看。
func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// SuccessResponse 统一成功信封，数据挂在 key 下并附带条数。
func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{
		key:     data,
		"total": count,
	})
}
