package validation

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// ErrInvalidFile wraps every constraint violation so callers can tell a
// rejected upload apart from an IO failure.
var ErrInvalidFile = errors.New("invalid file")

// FileConstraints defines validation rules for file uploads
type FileConstraints struct {
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

// DocumentConstraints covers the files users attach to their preparation:
// contract drafts, venue quotes, scans.
var DocumentConstraints = FileConstraints{
	AllowedMimeTypes: map[string]bool{
		"application/pdf": true,
		"image/jpeg":      true,
		"image/png":       true,
	},
	AllowedExtensions: map[string]bool{
		".pdf":  true,
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	},
	MaxSize: 10 << 20, // 10MB
}

// ValidateFile validates a file upload against a constraint set, checking the
// declared size, the detected content type, and the extension.
func ValidateFile(header *multipart.FileHeader, constraints FileConstraints) error {
	if header.Size > constraints.MaxSize {
		maxMB := constraints.MaxSize / (1 << 20)
		return fmt.Errorf("%w: maximum size is %d MB", ErrInvalidFile, maxMB)
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// http.DetectContentType reads at most 512 bytes
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// Reset so later consumers see the full content
	if seeker, ok := file.(io.Seeker); ok {
		_, err = seeker.Seek(0, 0)
		if err != nil {
			return fmt.Errorf("failed to reset file pointer: %w", err)
		}
	}

	// Content type comes from magic numbers, not the client-supplied header
	detectedType := http.DetectContentType(buffer[:n])
	if !constraints.AllowedMimeTypes[detectedType] {
		return fmt.Errorf("%w: unsupported type %s", ErrInvalidFile, detectedType)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !constraints.AllowedExtensions[ext] {
		return fmt.Errorf("%w: unsupported extension %s", ErrInvalidFile, ext)
	}

	return nil
}
