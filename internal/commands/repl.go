package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/diogo/geminirepl/internal/api"
	"github.com/diogo/geminirepl/internal/config"
	"github.com/diogo/geminirepl/internal/history"
	"github.com/diogo/geminirepl/internal/models"
	"github.com/diogo/geminirepl/internal/render"
)

const promptMarker = "> "

// chatSender is the part of the API client the REPL depends on.
type chatSender interface {
	Send(ctx context.Context, transcript *models.Transcript, userText string) (string, error)
	Model() string
}

// lineReader is the part of liner the REPL depends on.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// repl drives the interactive session. Strictly sequential: one input
// line is fully processed, including the blocking network call, before
// the next is read.
type repl struct {
	sender     chatSender
	transcript *models.Transcript
	reader     lineReader
	out        io.Writer
	renderOpts render.Options
	animate    bool // drive the thinking indicator (off in tests)
}

// runREPL starts the interactive session. The credential check happens
// before anything is printed so a missing key never reaches the prompt.
func runREPL() error {
	key, err := config.APIKey()
	if err != nil {
		return err
	}

	client, err := api.NewClient(key, api.WithModel(getModel()))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	r := &repl{
		sender:     client,
		transcript: models.NewTranscript(),
		reader:     line,
		out:        os.Stdout,
		renderOpts: render.LoadOptionsFromConfigWithWidth(contentWidth()),
		animate:    true,
	}

	r.printBanner()
	return r.run()
}

// run is the read-dispatch loop. It returns nil on quit or end of input.
func (r *repl) run() error {
	for {
		input, err := r.reader.Prompt(promptMarker)
		if err != nil {
			// EOF and Ctrl-C both end the session gracefully.
			fmt.Fprintln(r.out)
			r.printFarewell()
			return nil
		}

		cmd, text := ParseCommand(input)
		switch cmd {
		case CmdEmpty:
			continue
		case CmdHelp:
			r.printHelp()
		case CmdClear:
			// Display only; the conversation context is kept.
			fmt.Fprint(r.out, "\x1b[2J\x1b[H")
		case CmdReset:
			r.transcript.Reset()
			fmt.Fprintln(r.out, dimStyle.Render("Conversation context cleared."))
		case CmdSave:
			r.saveTranscript()
		case CmdModel:
			fmt.Fprintf(r.out, "Model: %s\n", commandKeyStyle.Render(r.sender.Model()))
		case CmdQuit:
			r.printFarewell()
			return nil
		case CmdPrompt:
			r.reader.AppendHistory(text)
			r.sendPrompt(text)
		}
	}
}

// sendPrompt relays one prompt to the API under the thinking indicator
// and prints the rendered reply or a recoverable error line.
func (r *repl) sendPrompt(text string) {
	var spin *spinner
	if r.animate {
		spin = newSpinner("Thinking")
		spin.start()
	}

	reply, err := r.sender.Send(context.Background(), r.transcript, text)

	if spin != nil {
		spin.stopAndClear()
	}

	if err != nil {
		fmt.Fprintln(r.out, formatErrorMessage(err, "Chat failed"))
		return
	}

	fmt.Fprintln(r.out, assistantLabelStyle.Render("✦ Gemini"))
	rendered := render.MarkdownOrPlain(reply, r.renderOpts)
	fmt.Fprintln(r.out, strings.TrimRight(rendered, "\n"))
	fmt.Fprintln(r.out)
}

// saveTranscript exports the conversation so far as a markdown file
// under the config directory.
func (r *repl) saveTranscript() {
	configDir, err := config.EnsureConfigDir()
	if err != nil {
		fmt.Fprintln(r.out, formatErrorMessage(err, "Save failed"))
		return
	}

	path, err := history.WriteExport(filepath.Join(configDir, "exports"), r.transcript.Snapshot(), r.sender.Model())
	if err != nil {
		fmt.Fprintln(r.out, formatErrorMessage(err, "Save failed"))
		return
	}

	fmt.Fprintln(r.out, successStyle.Render(fmt.Sprintf("✓ Conversation saved to %s", path)))
}

func (r *repl) printBanner() {
	banner := bannerStyle.Render(fmt.Sprintf(
		"%s\nModel: %s\nType %s for commands, or anything else to chat.",
		assistantLabelStyle.Render("✦ Gemini REPL"),
		r.sender.Model(),
		commandKeyStyle.Render("help"),
	))
	fmt.Fprintln(r.out, banner)
	fmt.Fprintln(r.out)
}

func (r *repl) printHelp() {
	rows := []struct{ key, desc string }{
		{"help", "Show this help message"},
		{"clear", "Clear the terminal screen (keeps context)"},
		{"reset", "Clear the conversation context"},
		{"save", "Save the conversation as markdown"},
		{"model", "Show the active model"},
		{"quit/exit", "Exit the REPL"},
	}

	fmt.Fprintln(r.out, "Available Commands:")
	for _, row := range rows {
		fmt.Fprintf(r.out, "  %-24s %s\n", commandKeyStyle.Render(row.key), row.desc)
	}
	fmt.Fprintln(r.out, "\nJust type any other message to chat with Gemini!")
}

func (r *repl) printFarewell() {
	fmt.Fprintln(r.out, dimStyle.Render("Goodbye!"))
}
