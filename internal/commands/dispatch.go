package commands

import "strings"

// Command classifies one line of REPL input.
type Command int

const (
	// CmdPrompt is any non-empty input that is not a builtin keyword
	CmdPrompt Command = iota
	// CmdEmpty is whitespace-only input
	CmdEmpty
	CmdHelp
	CmdClear
	CmdReset
	CmdSave
	CmdModel
	CmdQuit
)

// ParseCommand classifies a raw input line. Builtin keywords match the
// whole trimmed line, case-insensitively; anything else non-empty is a
// prompt carrying the trimmed text.
func ParseCommand(raw string) (Command, string) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return CmdEmpty, ""
	}

	switch strings.ToLower(text) {
	case "help":
		return CmdHelp, ""
	case "clear":
		return CmdClear, ""
	case "reset":
		return CmdReset, ""
	case "save":
		return CmdSave, ""
	case "model":
		return CmdModel, ""
	case "quit", "exit":
		return CmdQuit, ""
	}

	return CmdPrompt, text
}
