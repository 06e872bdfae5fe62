// Package ocr extracts match results from tournament screenshots.
//
// Only the placeholder processor exists today: every screenshot is
// reported as unprocessed and has to be verified by an admin.
package ocr

import (
	"errors"

	"gameverse/internal/models"
)

var ErrNotImplemented = errors.New("OCR processing not yet implemented")

// Processor turns a screenshot reference into an extraction result.
// Extraction failures are reported in ExtractionResult.Error.
type Processor interface {
	ProcessScreenshot(screenshotURL, gameType string) models.ExtractionResult
}

// PlaceholderProcessor ignores its input and always reports ErrNotImplemented.
type PlaceholderProcessor struct{}

var _ Processor = (*PlaceholderProcessor)(nil)

func NewPlaceholderProcessor() *PlaceholderProcessor {
	return &PlaceholderProcessor{}
}

func (p *PlaceholderProcessor) ProcessScreenshot(screenshotURL, gameType string) models.ExtractionResult {
	return models.ExtractionResult{
		Kills:      0,
		Placement:  0,
		Confidence: 0.0,
		RawText:    "",
		Error:      ErrNotImplemented.Error(),
	}
}

var defaultProcessor Processor = NewPlaceholderProcessor()

// ProcessScreenshot runs the default processor.
func ProcessScreenshot(screenshotURL, gameType string) models.ExtractionResult {
	return defaultProcessor.ProcessScreenshot(screenshotURL, gameType)
}
