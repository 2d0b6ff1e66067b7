package model

// GenerateRequest 是 POST /api/generate-image 的请求体
type GenerateRequest struct {
	Text string `json:"text"`
}
