package models

// Transcript holds the ordered turn history sent as context with each
// request. It is owned by the REPL loop and never persisted across runs.
type Transcript struct {
	turns []Turn
}

// NewTranscript creates an empty transcript
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds a turn to the end of the transcript
func (t *Transcript) Append(turn Turn) {
	t.turns = append(t.turns, turn)
}

// Snapshot returns a copy of the turn history. Mutating the returned
// slice does not affect the transcript.
func (t *Transcript) Snapshot() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns
func (t *Transcript) Len() int {
	return len(t.turns)
}

// Reset discards all turns
func (t *Transcript) Reset() {
	t.turns = nil
}
