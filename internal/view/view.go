package view

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"memento-backend/pkg/logger"
)

const DefaultMaxChars = 500

const (
	MsgEmptyText        = "振り返りを入力してください"
	MsgGenerationFailed = "画像生成に失敗しました。もう一度お試しください。"
	MsgDownloadFailed   = "ダウンロードに失敗しました。もう一度お試しください。"
)

// Alerter 向用户展示错误提示
type Alerter interface {
	Alert(message string)
}

type AlerterFunc func(message string)

func (f AlerterFunc) Alert(message string) { f(message) }

// ReflectionView 保存输入文本和当前展示的图像，负责生成、下载与清除
type ReflectionView struct {
	client      Client
	alerter     Alerter
	downloadDir string
	maxChars    int
	now         func() time.Time

	mu                sync.Mutex
	text              string
	isGenerating      bool
	generatedImage    *string
	lastGeneratedText *string
}

type Option func(*ReflectionView)

// WithMaxChars 只能收紧字符上限，不能超过 DefaultMaxChars
func WithMaxChars(n int) Option {
	return func(v *ReflectionView) {
		if n > 0 {
			v.maxChars = min(n, DefaultMaxChars)
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(v *ReflectionView) {
		v.now = now
	}
}

func NewReflectionView(client Client, alerter Alerter, downloadDir string, opts ...Option) *ReflectionView {
	v := &ReflectionView{
		client:      client,
		alerter:     alerter,
		downloadDir: downloadDir,
		maxChars:    DefaultMaxChars,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetText 更新输入，超出上限的字符被丢弃
func (v *ReflectionView) SetText(text string) {
	if utf8.RuneCountInString(text) > v.maxChars {
		text = string([]rune(text)[:v.maxChars])
	}

	v.mu.Lock()
	v.text = text
	v.mu.Unlock()
}

func (v *ReflectionView) Text() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.text
}

func (v *ReflectionView) IsGenerating() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.isGenerating
}

// GeneratedImage 返回当前展示的图像地址，没有时第二个返回值为 false
func (v *ReflectionView) GeneratedImage() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.generatedImage == nil {
		return "", false
	}
	return *v.generatedImage, true
}

func (v *ReflectionView) LastGeneratedText() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.lastGeneratedText == nil {
		return "", false
	}
	return *v.lastGeneratedText, true
}

// Generate 提交当前文本；生成中再次调用不会发出第二个请求
func (v *ReflectionView) Generate(ctx context.Context) {
	v.mu.Lock()
	if v.isGenerating {
		v.mu.Unlock()
		return
	}
	text := v.text
	if strings.TrimSpace(text) == "" {
		v.mu.Unlock()
		v.alerter.Alert(MsgEmptyText)
		return
	}
	v.isGenerating = true
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.isGenerating = false
		v.mu.Unlock()
	}()

	result, err := v.client.Generate(ctx, text)
	if err == nil && result == nil {
		err = errors.New("empty generation result")
	}
	if err != nil {
		logger.Errorf("generation request failed: %v", err)

		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			v.alerter.Alert(apiErr.Message)
			return
		}
		v.alerter.Alert(MsgGenerationFailed)
		return
	}

	image := result.ImageURL
	v.mu.Lock()
	v.generatedImage = &image
	v.lastGeneratedText = &text
	v.mu.Unlock()
}

// Download 把当前图像保存为 memento-YYYY-MM-DD.jpg，返回写入的路径
func (v *ReflectionView) Download(ctx context.Context) (string, bool) {
	image, ok := v.GeneratedImage()
	if !ok {
		return "", false
	}

	data, err := v.client.FetchImage(ctx, image)
	if err != nil {
		logger.Errorf("download failed: %v", err)
		v.alerter.Alert(MsgDownloadFailed)
		return "", false
	}

	path, err := saveFile(v.downloadDir, DownloadFilename(v.now()), data)
	if err != nil {
		logger.Errorf("download failed: %v", err)
		v.alerter.Alert(MsgDownloadFailed)
		return "", false
	}

	return path, true
}

// Clear 回到初始展示状态
func (v *ReflectionView) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generatedImage = nil
	v.lastGeneratedText = nil
}

// DownloadFilename 使用 UTC 日期生成下载文件名
func DownloadFilename(now time.Time) string {
	return "memento-" + now.UTC().Format("2006-01-02") + ".jpg"
}
