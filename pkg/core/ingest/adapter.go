package ingest

import (
	"context"
	"encoding/base64"
	"fmt"

	"renocost/pkg/core/llm"
	"renocost/pkg/core/project"
	"renocost/pkg/core/prompt"
	"renocost/pkg/core/workcfg"
)

// Analyzer drives the ingestion pipeline: classify, extract, analyze, map.
type Analyzer struct {
	provider llm.Provider
	locale   string
}

// NewAnalyzer creates an analyzer for the given provider and locale.
func NewAnalyzer(p llm.Provider, locale string) *Analyzer {
	if locale == "" {
		locale = "en"
	}
	return &Analyzer{provider: p, locale: locale}
}

// AnalyzeText sends extracted document text to the AI service and returns the
// parsed best-effort hints.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) (*ProjectHints, error) {
	if text == "" {
		return nil, ErrEmptyDocument
	}
	tmpl, err := prompt.Get().GetPrompt(prompt.AnalyzeProjectID)
	if err != nil {
		return nil, err
	}
	body := tmpl.Render(map[string]string{"locale": a.locale, "document": text})
	return a.analyze(ctx, tmpl.SystemPrompt, body, llm.JSONOptions())
}

// AnalyzeImage sends a photo to the vision-capable model.
func (a *Analyzer) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (*ProjectHints, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}
	tmpl, err := prompt.Get().GetPrompt(prompt.AnalyzeProjectID)
	if err != nil {
		return nil, err
	}
	body := tmpl.Render(map[string]string{"locale": a.locale, "document": "(see attached photo)"})
	opts := llm.JSONOptions()
	opts[llm.OptImageBase64] = base64.StdEncoding.EncodeToString(data)
	opts[llm.OptImageMIMEType] = mimeType
	return a.analyze(ctx, tmpl.SystemPrompt, body, opts)
}

func (a *Analyzer) analyze(ctx context.Context, system, body string, opts map[string]interface{}) (*ProjectHints, error) {
	raw, err := a.provider.GenerateResponse(ctx, body, system, opts)
	if err != nil {
		return nil, fmt.Errorf("ingest: AI service: %w", err)
	}
	var hints ProjectHints
	if err := smartParse(raw, &hints); err != nil {
		return nil, err
	}
	return &hints, nil
}

// IngestFile runs the whole pipeline for one uploaded file and, on success,
// replaces the project's rooms and work configuration wholesale. Any failure
// leaves the project completely unmodified. Returns the advisory notes.
func (a *Analyzer) IngestFile(ctx context.Context, proj *project.Project, filename string, data []byte) ([]string, error) {
	if err := proj.BeginAnalysis(); err != nil {
		return nil, err
	}
	defer proj.EndAnalysis()

	kind := ClassifyFile(filename)
	if kind == KindUnsupported {
		return nil, ErrUnsupportedKind
	}

	var hints *ProjectHints
	var err error
	if kind == KindImage {
		hints, err = a.AnalyzeImage(ctx, data, ImageMIMEType(filename))
	} else {
		var text string
		text, err = ExtractText(kind, data)
		if err == nil {
			hints, err = a.AnalyzeText(ctx, text)
		}
	}
	if err != nil {
		return nil, err
	}
	return a.apply(proj, hints)
}

// IngestText runs the pipeline over already-extracted text, the entry point
// for content reduced by the external document extractor.
func (a *Analyzer) IngestText(ctx context.Context, proj *project.Project, text string) ([]string, error) {
	if err := proj.BeginAnalysis(); err != nil {
		return nil, err
	}
	defer proj.EndAnalysis()

	hints, err := a.AnalyzeText(ctx, text)
	if err != nil {
		return nil, err
	}
	return a.apply(proj, hints)
}

// apply maps hints onto the entity model and swaps it in atomically. A
// response with at least one usable room is accepted; missing work counts and
// quality keep defaults or the current selection respectively.
func (a *Analyzer) apply(proj *project.Project, hints *ProjectHints) ([]string, error) {
	rooms, roomNotes := BuildRooms(hints.Rooms)
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	work := BuildWork(hints.Work)

	var quality *workcfg.QualityLevel
	if q, ok := workcfg.ParseQuality(hints.Quality); ok {
		quality = &q
	}

	notes := append(append([]string{}, hints.Notes...), roomNotes...)
	if err := proj.ApplyIngestion(rooms, work, quality, notes); err != nil {
		return nil, err
	}
	return notes, nil
}
