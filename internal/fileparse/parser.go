package fileparse

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"tradeos/internal/domain"
)

// ParseFile decodes an uploaded file into a normalized ParsedFile.
// Dispatch is on lowercased extension only; the validator's MIME check has
// already run by the time a file reaches the parser.
func ParseFile(name string, data []byte) (*domain.ParsedFile, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))

	switch domain.AllowedExtensions[ext] {
	case domain.FileTypeExcel:
		return parseExcel(data)
	case domain.FileTypePDF:
		// PDF text extraction is the server-side collaborator's job; the
		// raw bytes travel in the multipart body instead.
		return &domain.ParsedFile{Text: "", Type: domain.FileTypePDF}, nil
	case domain.FileTypeImage:
		return parseImage(name, data), nil
	case domain.FileTypeCSV:
		return &domain.ParsedFile{Text: string(data), Type: domain.FileTypeCSV}, nil
	case domain.FileTypeText:
		return &domain.ParsedFile{Text: string(data), Type: domain.FileTypeText}, nil
	default:
		return nil, fmt.Errorf("%w: .%s", domain.ErrUnsupportedFormat, ext)
	}
}

// parseExcel flattens every sheet of a workbook into tab-separated rows,
// each sheet preceded by a marker line. The header row is kept.
func parseExcel(data []byte) (*domain.ParsedFile, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: opening workbook: %v", domain.ErrParseFailure, err)
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: reading sheet %q: %v", domain.ErrParseFailure, sheet, err)
		}
		sb.WriteString(fmt.Sprintf("=== Sheet: %s ===\n", sheet))
		for _, row := range rows {
			sb.WriteString(strings.Join(row, "\t"))
			sb.WriteString("\n")
		}
	}

	return &domain.ParsedFile{Text: sb.String(), Type: domain.FileTypeExcel}, nil
}

func parseImage(name string, data []byte) *domain.ParsedFile {
	return &domain.ParsedFile{
		Text:   fmt.Sprintf("[이미지 파일: %s]", name),
		Images: []string{base64.StdEncoding.EncodeToString(data)},
		Type:   domain.FileTypeImage,
	}
}
