package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sitecms/internal/logger"
	"github.com/sitecms/internal/service"
)

type reorderRequest struct {
	IDs []uint `json:"ids"`
}

type slugRequest struct {
	Slug string `json:"slug"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// respondServiceError 将 service 层错误映射为 HTTP 响应；
// notFound 为该资源不存在时的提示，fallback 为未知错误时的提示。
func respondServiceError(c *gin.Context, err error, notFound, fallback string) {
	var verr *service.ValidationError
	var conflict *service.ConflictError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "提交的数据不合法",
			"field":  verr.Field,
			"detail": verr.Message,
		})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "标识已被占用",
			"slug":  conflict.Slug,
		})
	case errors.Is(err, service.ErrMenuNotFound),
		errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrTabNotFound),
		errors.Is(err, service.ErrTabItemNotFound),
		errors.Is(err, service.ErrServiceNotFound):
		respondError(c, http.StatusNotFound, notFound)
	default:
		logger.Error().Err(err).Str("request_id", logger.RequestID(c)).Str("path", c.FullPath()).Msg("request failed")
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
