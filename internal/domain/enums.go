package domain

// FileType tags the source format of an uploaded file.
type FileType string

const (
	FileTypeExcel FileType = "excel"
	FileTypePDF   FileType = "pdf"
	FileTypeImage FileType = "image"
	FileTypeCSV   FileType = "csv"
	FileTypeText  FileType = "text"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
// Extension is authoritative for parser dispatch.
var AllowedExtensions = map[string]FileType{
	"xlsx": FileTypeExcel,
	"xls":  FileTypeExcel,
	"pdf":  FileTypePDF,
	"jpg":  FileTypeImage,
	"jpeg": FileTypeImage,
	"png":  FileTypeImage,
	"gif":  FileTypeImage,
	"webp": FileTypeImage,
	"csv":  FileTypeCSV,
	"txt":  FileTypeText,
}

// AllowedMIMETypes is the upload allow-list checked by the validator.
var AllowedMIMETypes = map[string]FileType{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": FileTypeExcel,
	"application/vnd.ms-excel": FileTypeExcel,
	"application/pdf":          FileTypePDF,
	"image/jpeg":               FileTypeImage,
	"image/png":                FileTypeImage,
	"image/gif":                FileTypeImage,
	"image/webp":               FileTypeImage,
	"text/csv":                 FileTypeCSV,
	"text/plain":               FileTypeText,
}

// ExtractMode selects the extraction prompt and result shape.
type ExtractMode string

const (
	ModeProduct ExtractMode = "product"
	ModeClient  ExtractMode = "client"
)

// Source identifies which provider produced an extraction result.
type Source string

const (
	SourceGemini Source = "gemini"
	SourceGPT    Source = "gpt"
	SourceError  Source = "error"
)

// Confidence is a fixed provenance weight per source, not a model-reported score.
var Confidence = map[Source]float64{
	SourceGemini: 0.9,
	SourceGPT:    0.8,
	SourceError:  0,
}

// MaxFileSize is the upload size limit (10 MiB).
const MaxFileSize int64 = 10 * 1024 * 1024
