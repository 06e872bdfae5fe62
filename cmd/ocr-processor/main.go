package main

import (
	"io"
	"os"

	"gameverse/internal/ocr"
	"gameverse/pkg/logger"
)

func main() {
	run(os.Stdout, os.Stderr)
}

// run always returns; the process exits 0 even when stdout is unwritable.
func run(stdout, stderr io.Writer) {
	log := logger.NewLogger(&logger.Config{Level: "info", Output: stderr})

	if err := ocr.WriteInstructions(stdout); err != nil {
		log.Error("failed to print instructions: %s", err.Error())
	}
}
