// Package history exports the in-memory transcript as a markdown document.
// Nothing is written to disk unless the user asks for it; the transcript
// itself is never persisted across runs.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diogo/geminirepl/internal/models"
)

// ExportMarkdown renders the turn history as a markdown document.
func ExportMarkdown(turns []models.Turn, model string) string {
	var sb strings.Builder

	sb.WriteString("# Chat ")
	sb.WriteString(time.Now().Format("2006-01-02 15:04"))
	sb.WriteString("\n\n")

	sb.WriteString("**Model:** ")
	sb.WriteString(model)
	sb.WriteString("\n")
	sb.WriteString("**Turns:** ")
	sb.WriteString(fmt.Sprintf("%d", len(turns)))
	sb.WriteString("\n\n---\n\n")

	for i, turn := range turns {
		sb.WriteString("## ")
		sb.WriteString(turn.Role.DisplayName())
		if !turn.Timestamp.IsZero() {
			sb.WriteString(" (")
			sb.WriteString(turn.Timestamp.Format("15:04:05"))
			sb.WriteString(")")
		}
		sb.WriteString("\n\n")
		sb.WriteString(turn.Text)
		sb.WriteString("\n")

		if i < len(turns)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// WriteExport writes the exported transcript into dir with a
// timestamp-based filename and returns the full path.
func WriteExport(dir string, turns []models.Turn, model string) (string, error) {
	if len(turns) == 0 {
		return "", fmt.Errorf("nothing to save: the conversation is empty")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("chat-%s.md", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(ExportMarkdown(turns, model)), 0o600); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
