package handler

import (
	"context"
	"log"
	"net/http"

	"MedChat_PatientAssistant/internal/auth"
	"MedChat_PatientAssistant/internal/chat"
	"MedChat_PatientAssistant/internal/prompt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleChatSession godoc
// @Summary      Conversation WebSocket
// @Description  Opens a stateful chat session over WebSocket. The server seeds the conversation
// @Description  with a system prompt built from the stored profile, answers it with a first bot
// @Description  turn, then replies to every text frame with the model's answer for the full
// @Description  accumulated history.
// @Description  <br> **Note: this is not a standard HTTP API.**
// @Description  Clients connect with the `ws://` or `wss://` scheme and authenticate through the
// @Description  **query parameter ('token')**, not an HTTP header.
// @Tags         WebSocket (Chat)
// @Param        token query string true "JWT issued at login"
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      401 {object} handler.ErrorResponse "Missing or invalid token"
// @Failure      500 {object} handler.ErrorResponse "Profile lookup or upgrade failure"
// @Router       /ws/chat [get]
func (h *Handler) HandleChatSession(c *gin.Context) {
	tokenString := c.Query("token")

	claims, err := auth.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	email := claims.Email
	user, err := h.store.GetUserByEmail(email)
	if err != nil {
		log.Printf("HandleChatSession(): Failed to get profile for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("error: Failed to upgrade to WebSocket : User %s with %v", email, err)
		return
	}
	defer conn.Close()
	log.Printf("WebSocket connection established for user: %s", email)

	conv := chat.NewConversation()
	conv.SeedSystemTurn(prompt.BuildSystemPrompt(user))

	h.manageChatSession(conn, conv, context.Background(), email)
}
