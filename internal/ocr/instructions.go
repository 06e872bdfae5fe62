package ocr

import (
	"fmt"
	"io"
	"strings"

	"gameverse/internal/models"
)

const (
	bannerTitle     = "OCR Processor for GameVerse '25"
	bannerRuleWidth = 50
)

var setupSteps = []string{
	"Install Tesseract OCR and its language data on the server",
	"Add image preprocessing (grayscale, threshold, denoise)",
	fmt.Sprintf("Implement game-specific text extraction patterns for %s, %s and %s",
		models.GameBGMI, models.GameFreeFire, models.GameClashRoyale),
	"Run the processor as a background worker against the OCR queue",
}

// Instructions returns the banner printed by the ocr-processor command.
func Instructions() []string {
	lines := []string{
		bannerTitle,
		strings.Repeat("=", bannerRuleWidth),
		"",
		"This is a placeholder processor.",
		"To implement full OCR functionality:",
	}
	for i, step := range setupSteps {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
	}
	lines = append(lines, "", "For now, results must be manually verified by admins.")
	return lines
}

func WriteInstructions(w io.Writer) error {
	for _, line := range Instructions() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write instructions: %w", err)
		}
	}
	return nil
}
