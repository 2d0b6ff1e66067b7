package service

import (
	"context"

	"memento-backend/internal/emotion"
)

type mockSynthesizer struct {
	calls     int
	lastText  string
	lastScore emotion.Score
	imageURL  string
	err       error
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, text string, score emotion.Score) (string, error) {
	m.calls++
	m.lastText = text
	m.lastScore = score
	return m.imageURL, m.err
}
