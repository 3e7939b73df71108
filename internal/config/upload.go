package config

import (
	"fmt"
	"os"
	"strconv"
)

// UploadConfig holds limits enforced on analysis uploads before any
// processing begins.
type UploadConfig struct {
	MaxFiles       int
	MaxFileBytes   int64
	MinDescription int
}

// NewUploadConfig creates upload limits from environment variables. It reads
// MAX_UPLOAD_FILES (default: 20) and MAX_UPLOAD_FILE_MB (default: 10). The
// minimum job description length is fixed at 50 characters.
func NewUploadConfig() (*UploadConfig, error) {
	maxFiles := 20
	if s := os.Getenv("MAX_UPLOAD_FILES"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_FILES: %q", s)
		}
		maxFiles = n
	}

	maxMB := 10
	if s := os.Getenv("MAX_UPLOAD_FILE_MB"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_FILE_MB: %q", s)
		}
		maxMB = n
	}

	return &UploadConfig{
		MaxFiles:       maxFiles,
		MaxFileBytes:   int64(maxMB) << 20,
		MinDescription: 50,
	}, nil
}
