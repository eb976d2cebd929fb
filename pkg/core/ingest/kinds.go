// Package ingest maps externally-extracted project documents onto the strict
// room and work-configuration model through the AI classification service.
package ingest

import (
	"errors"
	"path/filepath"
	"strings"
)

// Kind classifies an uploaded file by how its content reaches the AI service.
type Kind int

const (
	KindUnsupported Kind = iota
	KindText             // plain text, sent as-is
	KindCSV              // spreadsheet export, reduced to row-joined text
	KindHTML             // web page or HTML export, reduced to text
	KindMarkdown         // markdown document, reduced to text
	KindPDF              // text supplied by an external extractor
	KindSpreadsheet      // binary spreadsheet, text supplied externally
	KindImage            // passed through to the vision model
)

// Adapter-level errors. Each leaves the existing model completely unmodified.
var (
	ErrUnsupportedKind = errors.New("ingest: unsupported file kind")
	ErrEmptyDocument   = errors.New("ingest: document contains no extractable text")
	ErrNoRooms         = errors.New("ingest: no usable rooms in AI response")
)

// String returns the kind label.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCSV:
		return "csv"
	case KindHTML:
		return "html"
	case KindMarkdown:
		return "markdown"
	case KindPDF:
		return "pdf"
	case KindSpreadsheet:
		return "spreadsheet"
	case KindImage:
		return "image"
	}
	return "unsupported"
}

// ClassifyFile determines the kind from the file name.
func ClassifyFile(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return KindText
	case ".csv":
		return KindCSV
	case ".html", ".htm":
		return KindHTML
	case ".md", ".markdown":
		return KindMarkdown
	case ".pdf":
		return KindPDF
	case ".xlsx", ".xls", ".ods":
		return KindSpreadsheet
	case ".jpg", ".jpeg", ".png", ".webp":
		return KindImage
	}
	return KindUnsupported
}

// ImageMIMEType returns the MIME type for an image file name.
func ImageMIMEType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
