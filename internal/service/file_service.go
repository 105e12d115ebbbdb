package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"tradeos/internal/config"
	"tradeos/internal/domain"
	"tradeos/internal/fileparse"
	"tradeos/internal/port"
)

// FileService is the storage upload collaborator: it stores a binary and
// hands back a URL + name for attaching to downstream records.
type FileService interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (*domain.StoredFile, error)
}

type fileService struct {
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewFileService creates a new FileService implementation.
func NewFileService(storage port.ObjectStorage, cfg *config.S3Config) FileService {
	return &fileService{storage: storage, cfg: cfg}
}

func (s *fileService) Upload(ctx context.Context, name, contentType string, data []byte) (*domain.StoredFile, error) {
	if len(data) == 0 {
		return nil, domain.ErrMissingFile
	}
	if err := fileparse.ValidateFile(name, int64(len(data)), contentType); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("uploads/%s/%s", uuid.New(), name)

	log.Printf("fileService.Upload: storing %s (%s, %d bytes) at %s", name, contentType, len(data), key)

	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		log.Printf("fileService.Upload: storage upload failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	url := out.Location
	if url == "" {
		url, err = s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
		}
	}

	return &domain.StoredFile{URL: url, Name: name}, nil
}
