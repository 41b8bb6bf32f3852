package chat

import (
	"fmt"
	"strings"
	"testing"

	"MedChat_PatientAssistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSystemTurnIsOneShot(t *testing.T) {
	conv := NewConversation()

	assert.True(t, conv.SeedSystemTurn("persona"))
	assert.False(t, conv.SeedSystemTurn("persona again"), "re-seeding must be a no-op")
	assert.Equal(t, 1, conv.Len())
	assert.Equal(t, "persona", conv.PromptText())
}

func TestTranscriptExcludesSystemTurn(t *testing.T) {
	conv := NewConversation()
	conv.SeedSystemTurn("persona")
	conv.AppendBotTurn("hello")
	conv.AppendUserTurn("hi")

	transcript := conv.Transcript()
	require.Len(t, transcript, 2)
	for _, turn := range transcript {
		assert.NotEqual(t, models.RoleSystem, turn.Role)
	}

	// but the prompt concatenation always carries the seed
	assert.True(t, strings.HasPrefix(conv.PromptText(), "persona\n"))
}

func TestTurnCountAfterNExchanges(t *testing.T) {
	conv := NewConversation()
	conv.SeedSystemTurn("persona")

	const n = 5
	for i := 0; i < n; i++ {
		conv.AppendUserTurn(fmt.Sprintf("question %d", i))
		conv.AppendBotTurn(fmt.Sprintf("answer %d", i))
	}

	// 1 seed + 2N turns total, system excluded from the rendered view
	assert.Equal(t, 1+2*n, conv.Len())
	assert.Len(t, conv.Transcript(), 2*n)
}

func TestPromptTextJoinsTurnsInOrder(t *testing.T) {
	conv := NewConversation()
	conv.SeedSystemTurn("a")
	conv.AppendUserTurn("b")
	conv.AppendBotTurn("c")

	assert.Equal(t, "a\nb\nc", conv.PromptText())
}

func TestConversationIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewConversation().ID, NewConversation().ID)
}
