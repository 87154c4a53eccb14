package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/diogo/geminirepl/internal/api"
	"github.com/diogo/geminirepl/internal/config"
	"github.com/diogo/geminirepl/internal/models"
	"github.com/diogo/geminirepl/internal/render"
)

// runQuery executes a single prompt and prints the response. Decoration,
// the spinner and verbose notes only apply when stdout is a terminal;
// piped output gets the raw reply text.
func runQuery(prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return fmt.Errorf("prompt cannot be empty")
	}

	cfg, _ := config.LoadConfig()

	key, err := config.APIKey()
	if err != nil {
		return err
	}

	modelName := models.ModelFromName(getModel())
	client, err := api.NewClient(key, api.WithModel(modelName))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	tty := isStdoutTTY()

	var spin *spinner
	if tty {
		spin = newSpinner("Thinking")
		spin.start()
	}

	startTime := time.Now()
	reply, err := client.Send(context.Background(), models.NewTranscript(), prompt)
	requestDuration := time.Since(startTime)

	if spin != nil {
		spin.stopAndClear()
	}

	if err != nil {
		if tty {
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Generation failed"))
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	if cfg.Verbose && tty {
		fmt.Fprintf(os.Stderr, "[verbose] Model: %s\n", modelName)
		fmt.Fprintf(os.Stderr, "[verbose] Request took %s\n", requestDuration.Round(time.Millisecond))
	}

	// Output to file if specified
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(reply), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if tty {
			fmt.Fprintln(os.Stderr, successStyle.Render(fmt.Sprintf("✓ Response saved to %s", outputFlag)))
		}
		return nil
	}

	// Piped output gets the raw text
	if !tty {
		fmt.Print(reply)
		return nil
	}

	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(reply); err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err)))
		} else {
			fmt.Fprintln(os.Stderr, successStyle.Render("✓ Copied to clipboard"))
		}
	}

	fmt.Println(assistantLabelStyle.Render("✦ Gemini"))
	renderOpts := render.LoadOptionsFromConfigWithWidth(contentWidth())
	rendered := render.MarkdownOrPlain(reply, renderOpts)
	fmt.Println(strings.TrimRight(rendered, "\n"))

	return nil
}
