package chat

import (
	"strings"
	"sync"

	"MedChat_PatientAssistant/internal/models"

	"github.com/google/uuid"
)

// Conversation holds the ordered turn list for one active chat session.
// Turns live in memory only and die with the session.
type Conversation struct {
	ID string

	mu     sync.Mutex
	turns  []models.Turn
	seeded bool
}

// NewConversation allocates an empty conversation with a fresh session id.
func NewConversation() *Conversation {
	return &Conversation{
		ID:    uuid.NewString(),
		turns: make([]models.Turn, 0, 16),
	}
}

// SeedSystemTurn installs the hidden system turn. Only the first call takes
// effect; the one-shot guard prevents duplicate seeding when the entry path
// is revisited. Returns whether the seed was applied.
func (c *Conversation) SeedSystemTurn(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seeded {
		return false
	}
	c.seeded = true
	c.turns = append(c.turns, models.Turn{Role: models.RoleSystem, Content: text})
	return true
}

// AppendUserTurn records a submitted user message.
func (c *Conversation) AppendUserTurn(text string) {
	c.append(models.Turn{Role: models.RoleUser, Content: text})
}

// AppendBotTurn records a model reply, or the error text standing in for one.
func (c *Conversation) AppendBotTurn(text string) {
	c.append(models.Turn{Role: models.RoleBot, Content: text})
}

func (c *Conversation) append(turn models.Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, turn)
}

// PromptText concatenates every turn content in order, newline separated.
// The system turn is always included here.
func (c *Conversation) PromptText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	contents := make([]string, len(c.turns))
	for i, turn := range c.turns {
		contents[i] = turn.Content
	}
	return strings.Join(contents, "\n")
}

// Transcript returns the turns shown to the end user. The system turn is
// excluded from the rendered view.
func (c *Conversation) Transcript() []models.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	visible := make([]models.Turn, 0, len(c.turns))
	for _, turn := range c.turns {
		if turn.Role == models.RoleSystem {
			continue
		}
		visible = append(visible, turn)
	}
	return visible
}

// Len reports the total number of turns, system turn included.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.turns)
}
