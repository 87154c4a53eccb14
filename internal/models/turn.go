package models

import "time"

// Role identifies the author of a turn, using the provider's wire names.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// DisplayName returns the label shown in the terminal for this role
func (r Role) DisplayName() string {
	if r == RoleModel {
		return "Gemini"
	}
	return "You"
}

// Turn is one message in the conversation. Immutable once created.
type Turn struct {
	Role      Role
	Text      string
	Timestamp time.Time
}

// NewUserTurn creates a user turn stamped with the current time
func NewUserTurn(text string) Turn {
	return Turn{Role: RoleUser, Text: text, Timestamp: time.Now()}
}

// NewModelTurn creates an assistant turn stamped with the current time
func NewModelTurn(text string) Turn {
	return Turn{Role: RoleModel, Text: text, Timestamp: time.Now()}
}
