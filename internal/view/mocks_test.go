package view

import (
	"context"
	"sync"

	"memento-backend/internal/model"
)

type fakeClient struct {
	mu            sync.Mutex
	generateCalls []string
	fetchCalls    []string

	result    *model.GenerationResult
	err       error
	imageData []byte
	fetchErr  error

	// 非 nil 时 Generate 会阻塞直到关闭
	release chan struct{}
	started chan struct{}
}

func (f *fakeClient) Generate(ctx context.Context, text string) (*model.GenerationResult, error) {
	f.mu.Lock()
	f.generateCalls = append(f.generateCalls, text)
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.result, f.err
}

func (f *fakeClient) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	f.mu.Lock()
	f.fetchCalls = append(f.fetchCalls, imageURL)
	f.mu.Unlock()
	return f.imageData, f.fetchErr
}

func (f *fakeClient) generateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.generateCalls)
}

type recordingAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingAlerter) Alert(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recordingAlerter) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}
