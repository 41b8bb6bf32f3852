package models

// Turn roles. The system turn seeds the model persona and is never shown
// to the end user.
const (
	RoleSystem = "system"
	RoleUser   = "user"
	RoleBot    = "bot"
)

// One message of an in-memory conversation. Turns are never persisted.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
