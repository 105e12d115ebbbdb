package domain

import "errors"

var (
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrUnsupportedFormat   = errors.New("no parser for file extension")
	ErrParseFailure        = errors.New("file could not be decoded")
	ErrClientExtraction    = errors.New("client info extraction failed")
	ErrInvalidMode         = errors.New("invalid extraction mode")
	ErrMissingFile         = errors.New("file field is required")
	ErrUploadFailed        = errors.New("file upload to storage failed")
)
