package history

import (
	"os"
	"strings"
	"testing"

	"github.com/diogo/geminirepl/internal/models"
)

func sampleTurns() []models.Turn {
	return []models.Turn{
		models.NewUserTurn("What is Go?"),
		models.NewModelTurn("Go is a programming language."),
	}
}

func TestExportMarkdownStructure(t *testing.T) {
	out := ExportMarkdown(sampleTurns(), models.ModelFlash)

	if !strings.HasPrefix(out, "# Chat ") {
		t.Error("export should start with a chat title")
	}
	if !strings.Contains(out, "**Model:** "+models.ModelFlash) {
		t.Error("export should name the model")
	}
	if !strings.Contains(out, "**Turns:** 2") {
		t.Error("export should count the turns")
	}
	if !strings.Contains(out, "## You") {
		t.Error("export should contain a user heading")
	}
	if !strings.Contains(out, "## Gemini") {
		t.Error("export should contain an assistant heading")
	}
	if !strings.Contains(out, "What is Go?") || !strings.Contains(out, "Go is a programming language.") {
		t.Error("export should contain the turn texts verbatim")
	}
}

func TestExportMarkdownPreservesOrder(t *testing.T) {
	out := ExportMarkdown(sampleTurns(), models.ModelFlash)

	userIdx := strings.Index(out, "What is Go?")
	modelIdx := strings.Index(out, "Go is a programming language.")
	if userIdx < 0 || modelIdx < 0 || userIdx > modelIdx {
		t.Error("turns should appear in conversational order")
	}
}

func TestWriteExport(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteExport(dir, sampleTurns(), models.ModelFlash)
	if err != nil {
		t.Fatalf("WriteExport failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("export path %q should be inside %q", path, dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if !strings.Contains(string(data), "What is Go?") {
		t.Error("written file should contain the conversation")
	}
}

func TestWriteExportEmptyTranscript(t *testing.T) {
	if _, err := WriteExport(t.TempDir(), nil, models.ModelFlash); err == nil {
		t.Error("expected an error for an empty transcript")
	}
}
