package view

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"memento-backend/internal/model"
)

const generatePath = "/api/generate-image"

// Client 是视图访问生成接口和图像的方式
type Client interface {
	Generate(ctx context.Context, text string) (*model.GenerationResult, error)
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// APIError 表示服务端返回的非 2xx 响应
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
}

func NewHTTPClient(endpoint string, httpClient *http.Client) (*HTTPClient, error) {
	base, err := url.Parse(strings.TrimRight(endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme and host are required", endpoint)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL: base,
		http:    httpClient,
	}, nil
}

func (c *HTTPClient) Generate(ctx context.Context, text string) (*model.GenerationResult, error) {
	body, err := json.Marshal(model.GenerateRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(generatePath), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp model.ErrorResponse
		_ = json.Unmarshal(data, &errResp)
		return nil, &APIError{Status: resp.StatusCode, Message: errResp.Error}
	}

	var result model.GenerationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode generation result: %w", err)
	}
	return &result, nil
}

func (c *HTTPClient) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(imageURL), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

// resolve 将站内路径拼接到 baseURL，绝对地址原样返回
func (c *HTTPClient) resolve(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() {
		return ref
	}
	return c.baseURL.ResolveReference(u).String()
}
