package response

import (
	"net/http"
	"time"

	"github.com/denim-next/internal/constants"

	"github.com/gin-gonic/gin"
)

// Payload 统一响应结构
//
// 对外契约：成功 {status:"success", data, count?, timestamp}，
// 失败 {status:"error", message, timestamp} 并携带真实 HTTP 状态码。
type Payload struct {
	Status    string      `json:"status"`               // success / error
	Message   string      `json:"message,omitempty"`    // 提示消息
	Data      interface{} `json:"data,omitempty"`       // 数据内容
	Count     *int        `json:"count,omitempty"`      // 列表条数
	Timestamp string      `json:"timestamp"`            // ISO8601 时间戳
	RequestID string      `json:"request_id,omitempty"` // 请求 ID（仅错误时）
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Payload{
		Status:    constants.ResponseStatusSuccess,
		Data:      data,
		Timestamp: now(),
	})
}

// SuccessWithCount 列表成功响应（附带条数）
func SuccessWithCount(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, Payload{
		Status:    constants.ResponseStatusSuccess,
		Data:      data,
		Count:     &count,
		Timestamp: now(),
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Payload{
		Status:    constants.ResponseStatusSuccess,
		Data:      data,
		Timestamp: now(),
	})
}

// Error 错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Payload{
		Status:    constants.ResponseStatusError,
		Message:   message,
		Timestamp: now(),
		RequestID: requestID(c),
	})
}

// NotFound 404 响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Internal 500 响应
func Internal(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func requestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
