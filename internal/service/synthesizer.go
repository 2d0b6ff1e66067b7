package service

import (
	"context"
	"time"

	"memento-backend/internal/emotion"
)

const (
	DefaultImageURL = "/bg_sakura_night.jpg"
	DefaultDelay    = time.Second
)

// ImageSynthesizer 根据振り返り文本生成图像，返回可访问的图像地址
type ImageSynthesizer interface {
	Synthesize(ctx context.Context, text string, score emotion.Score) (string, error)
}

// MockSynthesizer 模拟真实生成接口的延迟，始终返回同一张图像
type MockSynthesizer struct {
	Delay    time.Duration
	ImageURL string
}

func NewMockSynthesizer(delay time.Duration, imageURL string) *MockSynthesizer {
	if imageURL == "" {
		imageURL = DefaultImageURL
	}
	if delay < 0 {
		delay = 0
	}
	return &MockSynthesizer{
		Delay:    delay,
		ImageURL: imageURL,
	}
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, _ string, _ emotion.Score) (string, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return m.ImageURL, nil
}
