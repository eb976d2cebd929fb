package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractText reduces a document of the given kind to newline-delimited plain
// text. PDF and binary spreadsheet content must be pre-extracted by the
// external extractor and arrives here as text. Images are not handled here;
// they pass through to the vision model as bytes.
func ExtractText(kind Kind, data []byte) (string, error) {
	var out string
	var err error
	switch kind {
	case KindText, KindPDF, KindSpreadsheet:
		out = string(data)
	case KindCSV:
		out, err = extractCSV(data)
	case KindHTML:
		out, err = extractHTML(data)
	case KindMarkdown:
		out = extractMarkdown(data)
	default:
		return "", ErrUnsupportedKind
	}
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEmptyDocument
	}
	return out, nil
}

// extractCSV joins cells with commas and rows with newlines.
func extractCSV(data []byte) (string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("ingest: csv parse: %w", err)
		}
		rows = append(rows, strings.Join(record, ", "))
	}
	return strings.Join(rows, "\n"), nil
}

// extractHTML strips markup and scripts, keeping visible text.
func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("ingest: html parse: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		sb.WriteString(sel.Text())
	})
	if sb.Len() == 0 {
		sb.WriteString(doc.Text())
	}
	return collapseWhitespace(sb.String()), nil
}

// extractMarkdown walks the goldmark AST and collects text content,
// one line per block element.
func extractMarkdown(data []byte) string {
	parser := goldmark.DefaultParser()
	reader := text.NewReader(data)
	doc := parser.Parse(reader)

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				sb.Write(t.Segment.Value(data))
				if t.SoftLineBreak() || t.HardLineBreak() {
					sb.WriteByte('\n')
				}
			}
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			sb.WriteByte('\n')
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// collapseWhitespace normalizes runs of whitespace while keeping line breaks.
func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	var kept []string
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
