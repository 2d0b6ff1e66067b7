package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"memento-backend/internal/model"
	"memento-backend/internal/service"
	"memento-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	msgEmptyText        = "text is empty"
	msgGenerationFailed = "generation failed"
)

// Generator 是生成服务的抽象，便于在测试中替换
type Generator interface {
	Generate(ctx context.Context, text string) (*model.GenerationResult, error)
}

type GenerateHandler struct {
	generator Generator
	timeout   time.Duration
}

func NewGenerateHandler(generator Generator, timeout time.Duration) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
		timeout:   timeout,
	}
}

// GenerateImage 处理 POST /api/generate-image
func (h *GenerateHandler) GenerateImage(c *gin.Context) {
	var text string
	body, err := c.GetRawData()
	if err == nil {
		text, err = parseText(body)
	}
	if err != nil {
		logger.WithFields(logger.Fields{
			"request_id": c.GetString(requestIDKey),
			"error":      err.Error(),
		}).Error("generate request parse failed")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msgGenerationFailed})
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.generator.Generate(ctx, text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msgEmptyText})
			return
		}

		logger.WithFields(logger.Fields{
			"request_id": c.GetString(requestIDKey),
			"error":      err.Error(),
		}).Error("image generation failed")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msgGenerationFailed})
		return
	}

	c.JSON(http.StatusOK, result)
}

var errInvalidBody = errors.New("invalid request body")

// parseText 按 { text } 解构请求体：非对象或缺失、假值的 text 视为空文本，
// null 请求体和非字符串的真值 text 视为解析失败
func parseText(body []byte) (string, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", err
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", fmt.Errorf("%w: body is null", errInvalidBody)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		// 字符串、数字、数组等没有 text 字段
		return "", nil
	}

	value, ok := fields["text"]
	if !ok {
		return "", nil
	}

	var decoded any
	if err := json.Unmarshal(value, &decoded); err != nil {
		return "", err
	}

	switch v := decoded.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		if !v {
			return "", nil
		}
	case float64:
		if v == 0 {
			return "", nil
		}
	}
	return "", fmt.Errorf("%w: text is %T", errInvalidBody, decoded)
}
