package fileparse

import (
	"path/filepath"
	"strings"

	"tradeos/internal/domain"
)

// ValidateFile gatekeeps an upload before any parsing or network call.
// Size is checked first, then the MIME allow-list with a case-insensitive
// extension fallback. Pure function: no I/O, same verdict on every call.
func ValidateFile(name string, size int64, mimeType string) error {
	if size > domain.MaxFileSize {
		return domain.ErrFileTooLarge
	}

	if _, ok := domain.AllowedMIMETypes[mimeType]; ok {
		return nil
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if _, ok := domain.AllowedExtensions[ext]; ok {
		return nil
	}

	return domain.ErrUnsupportedFileType
}
