package models

import "testing"

func TestModelFromName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", ModelFlash},
		{"fast", ModelFlash},
		{"flash", ModelFlash},
		{"pro", ModelPro},
		{"gemini-2.5-pro", ModelPro},
		{"gemini-9.9-experimental", "gemini-9.9-experimental"},
	}

	for _, tt := range tests {
		if got := ModelFromName(tt.name); got != tt.want {
			t.Errorf("ModelFromName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGenerateContentPath(t *testing.T) {
	got := GenerateContentPath(ModelFlash)
	want := "/v1beta/models/gemini-2.5-flash:generateContent"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRoleDisplayName(t *testing.T) {
	if got := RoleUser.DisplayName(); got != "You" {
		t.Errorf("user display name = %q", got)
	}
	if got := RoleModel.DisplayName(); got != "Gemini" {
		t.Errorf("model display name = %q", got)
	}
}

func TestNewTurnsAreStamped(t *testing.T) {
	u := NewUserTurn("hi")
	if u.Role != RoleUser || u.Text != "hi" {
		t.Errorf("unexpected user turn: %+v", u)
	}
	if u.Timestamp.IsZero() {
		t.Error("user turn should carry a timestamp")
	}

	m := NewModelTurn("hello")
	if m.Role != RoleModel || m.Text != "hello" {
		t.Errorf("unexpected model turn: %+v", m)
	}
}

func TestTranscriptAppendPreservesOrder(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserTurn("one"))
	tr.Append(NewModelTurn("two"))
	tr.Append(NewUserTurn("three"))

	if tr.Len() != 3 {
		t.Fatalf("expected 3 turns, got %d", tr.Len())
	}

	got := tr.Snapshot()
	for i, want := range []string{"one", "two", "three"} {
		if got[i].Text != want {
			t.Errorf("turn %d = %q, want %q", i, got[i].Text, want)
		}
	}
}

func TestTranscriptSnapshotIsACopy(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserTurn("original"))

	snap := tr.Snapshot()
	snap[0].Text = "mutated"

	if tr.Snapshot()[0].Text != "original" {
		t.Error("mutating a snapshot should not affect the transcript")
	}
}

func TestTranscriptReset(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserTurn("hi"))
	tr.Append(NewModelTurn("hello"))

	tr.Reset()

	if tr.Len() != 0 {
		t.Errorf("expected empty transcript after reset, got %d turns", tr.Len())
	}
	if got := tr.Snapshot(); len(got) != 0 {
		t.Errorf("expected empty snapshot after reset, got %d turns", len(got))
	}
}
