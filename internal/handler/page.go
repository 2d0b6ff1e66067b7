package handler

import (
	_ "embed"
	"net/http"
	"time"

	"memento-backend/internal/artifact"
	"memento-backend/internal/model"

	"github.com/gin-gonic/gin"
)

//go:embed web/index.html
var indexHTML []byte

type PageHandler struct {
	placeholder *artifact.Placeholder
}

func NewPageHandler(placeholder *artifact.Placeholder) *PageHandler {
	return &PageHandler{
		placeholder: placeholder,
	}
}

func (h *PageHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// Image 返回占位图像
func (h *PageHandler) Image(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, artifact.ContentType, h.placeholder.Bytes())
}

func (h *PageHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().Unix(),
	})
}
