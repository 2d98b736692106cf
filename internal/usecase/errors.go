package usecase

import "errors"

var (
	ErrInvalidURL         = errors.New("invalid URL")
	ErrEmptyURL           = errors.New("empty URL")
	ErrEmptyBatch         = errors.New("empty batch")
	ErrBatchTooLarge      = errors.New("batch too large")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrURLNotFound        = errors.New("URL not found")
)
