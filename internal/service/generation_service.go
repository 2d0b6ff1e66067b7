package service

import (
	"context"
	"fmt"
	"strings"

	"memento-backend/internal/emotion"
	"memento-backend/internal/model"
	"memento-backend/pkg/logger"
)

type GenerationService struct {
	synthesizer ImageSynthesizer
}

func NewGenerationService(synthesizer ImageSynthesizer) *GenerationService {
	return &GenerationService{
		synthesizer: synthesizer,
	}
}

// Generate 校验文本、计算情绪分数并调用图像合成
func (s *GenerationService) Generate(ctx context.Context, text string) (*model.GenerationResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	score := emotion.Analyze(text)
	logger.WithFields(logger.Fields{
		"positive": score.Positive,
		"negative": score.Negative,
		"neutral":  score.Neutral,
		"dominant": score.Dominant(),
	}).Debug("emotion analyzed")

	imageURL, err := s.synthesizer.Synthesize(ctx, text, score)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if imageURL == "" {
		return nil, fmt.Errorf("%w: synthesizer returned no image", ErrGenerationFailed)
	}

	return &model.GenerationResult{
		Success:  true,
		ImageURL: imageURL,
		Prompt:   text,
	}, nil
}
