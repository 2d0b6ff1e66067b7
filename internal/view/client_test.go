package view

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"memento-backend/internal/artifact"
	"memento-backend/internal/config"
	"memento-backend/internal/handler"
	"memento-backend/internal/service"
	"memento-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.Load("")
	require.NoError(t, err)
	placeholder, err := artifact.Load("")
	require.NoError(t, err)

	svc := service.NewGenerationService(service.NewMockSynthesizer(0, cfg.Generation.ImageURL))
	router := handler.NewRouter(cfg, handler.NewGenerateHandler(svc, time.Second), handler.NewPageHandler(placeholder))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewHTTPClient_InvalidEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "localhost", "://bad"} {
		_, err := NewHTTPClient(endpoint, nil)
		assert.Error(t, err, endpoint)
	}
}

func TestHTTPClient_AgainstBackend(t *testing.T) {
	srv := newBackend(t)
	client, err := NewHTTPClient(srv.URL+"/", utils.NewHTTPClient(5*time.Second))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("generate", func(t *testing.T) {
		res, err := client.Generate(ctx, "今日は最高の一日でした、感謝しています")

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, service.DefaultImageURL, res.ImageURL)
		assert.Equal(t, "今日は最高の一日でした、感謝しています", res.Prompt)
	})

	t.Run("empty text returns the server message", func(t *testing.T) {
		_, err := client.Generate(ctx, "  ")

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "text is empty", apiErr.Message)
	})

	t.Run("fetch image", func(t *testing.T) {
		data, err := client.FetchImage(ctx, service.DefaultImageURL)

		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("fetch missing image", func(t *testing.T) {
		_, err := client.FetchImage(ctx, "/missing.jpg")

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
	})
}

func TestReflectionView_EndToEnd(t *testing.T) {
	srv := newBackend(t)
	client, err := NewHTTPClient(srv.URL, srv.Client())
	require.NoError(t, err)

	dir := t.TempDir()
	alerter := &recordingAlerter{}
	v := NewReflectionView(client, alerter, dir)
	ctx := context.Background()

	v.SetText("楽しい一日")
	v.Generate(ctx)
	require.Empty(t, alerter.all())

	path, ok := v.Download(ctx)
	require.True(t, ok)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	v.Clear()
	_, ok = v.GeneratedImage()
	assert.False(t, ok)
}

func TestHTTPClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	client, err := NewHTTPClient(endpoint, nil)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "hello")
	assert.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestIndexPage_SharesAlertText(t *testing.T) {
	srv := newBackend(t)

	resp, err := srv.Client().Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)

	for _, msg := range []string{MsgEmptyText, MsgGenerationFailed, MsgDownloadFailed} {
		assert.Contains(t, page, msg)
	}
	// 生成失败只有一种提示文本
	assert.Equal(t, strings.Count(page, "画像生成に失敗しました"), strings.Count(page, MsgGenerationFailed))
}
