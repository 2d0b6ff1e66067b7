package service

import "errors"

var (
	ErrEmptyText        = errors.New("text is empty")
	ErrGenerationFailed = errors.New("generation failed")
)
