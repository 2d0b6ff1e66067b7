package handler

import (
	"context"
	"sync"

	"memento-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockGenerator struct {
	mu       sync.Mutex
	calls    []string
	result   *model.GenerationResult
	err      error
	panicMsg string
}

func (m *mockGenerator) Generate(ctx context.Context, text string) (*model.GenerationResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.mu.Unlock()

	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	return m.result, m.err
}
