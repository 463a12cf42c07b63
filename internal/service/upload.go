package service

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"typeset/internal/domain"
)

// MaxUploadBytes is the hard cap on a single uploaded file.
const MaxUploadBytes = 10 << 20 // 10 MiB

// maxFilenameLength bounds the sanitized filename.
const maxFilenameLength = 255

// UploadResult is returned after a successful upload.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// UploadService validates uploaded image files and stores them on disk
// under the configured directory, served back at /uploads/*.
type UploadService struct {
	dir    string
	logger *slog.Logger
}

// NewUploadService creates a new upload service storing files under dir
func NewUploadService(dir string, logger *slog.Logger) *UploadService {
	return &UploadService{
		dir:    dir,
		logger: logger,
	}
}

// Process runs the upload validation pipeline on a single multipart field
// body. Each step is a hard gate; the first failure aborts:
//
//  1. read the body fully (reads capped just above the size limit)
//  2. reject payloads over MaxUploadBytes
//  3. sanitize the client-supplied filename
//  4. require an allow-listed image extension
//  5. verify the content's magic-number signature for that extension
//  6. write to disk as {unix-timestamp}_{sanitized-filename}
//
// Filenames are not deduplicated: two uploads with colliding sanitized names
// in the same second overwrite one another.
func (s *UploadService) Process(filename string, body io.Reader) (*UploadResult, error) {
	data, err := io.ReadAll(io.LimitReader(body, MaxUploadBytes+1))
	if err != nil {
		return nil, &domain.ValidationError{Message: "failed to read uploaded file"}
	}

	if len(data) > MaxUploadBytes {
		return nil, &domain.PayloadTooLargeError{
			Message: fmt.Sprintf("file exceeds the %d byte limit", MaxUploadBytes),
		}
	}

	sanitized := SanitizeFilename(filename)

	ext := strings.ToLower(filepath.Ext(sanitized))
	if ext == "" || ext == "." {
		return nil, &domain.ValidationError{Message: "file has no extension"}
	}
	if !IsAllowedImageExtension(ext) {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("file type %s is not allowed", ext),
		}
	}

	if !MatchesImageSignature(ext, data) {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("file content does not match %s signature", ext),
		}
	}

	stored := fmt.Sprintf("%d_%s", time.Now().Unix(), sanitized)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, stored), data, 0644); err != nil {
		return nil, fmt.Errorf("write uploaded file: %w", err)
	}

	s.logger.Info("file uploaded", "filename", stored, "bytes", len(data))

	return &UploadResult{
		URL:      "/uploads/" + stored,
		Filename: stored,
	}, nil
}

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// directory components are stripped (defeating path traversal), every
// character outside [a-zA-Z0-9.-_] becomes '_', and names over 255
// characters are truncated with the final extension preserved.
func SanitizeFilename(filename string) string {
	// Normalize Windows separators, then keep only the final path segment
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = path.Base(filename)

	var b strings.Builder
	for _, c := range filename {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '.', c == '-', c == '_':
			b.WriteRune(c)
		default:
			b.WriteByte('_')
		}
	}
	filename = b.String()

	if len(filename) > maxFilenameLength {
		ext := filepath.Ext(filename)
		if ext != "" && len(ext) < maxFilenameLength {
			filename = filename[:maxFilenameLength-len(ext)] + ext
		} else {
			filename = filename[:maxFilenameLength]
		}
	}

	return filename
}
