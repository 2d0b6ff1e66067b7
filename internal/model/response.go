package model

// GenerationResult 是生成成功时的响应
type GenerationResult struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	Prompt   string `json:"prompt"`
}

// ErrorResponse 是所有失败响应的统一结构
type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}
