package handler

import (
	"context"
	"log"

	"MedChat_PatientAssistant/internal/chat"

	"github.com/gorilla/websocket"
)

// manageChatSession drives one conversation over an open socket. The seed
// turn is completed immediately so the model opens the interview; every
// subsequent text frame appends a user turn and resends the whole history.
// Completion failures become inline bot turns instead of closing the session.
func (h *Handler) manageChatSession(conn *websocket.Conn, conv *chat.Conversation, ctx context.Context, email string) {
	log.Printf("Chat session %s started for user: %s", conv.ID, email)

	if reply := h.completeTurn(ctx, conv); reply != "" {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			log.Printf("Error sending message to user %s: %v", email, err)
			return
		}
	}

ReadLoop:
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			log.Printf("Error reading message from user %s: %v", email, err)
			break ReadLoop
		}

		if messageType != websocket.TextMessage {
			log.Printf("Unsupported message type from user %s: %d", email, messageType)
			continue
		}

		conv.AppendUserTurn(string(message))
		reply := h.completeTurn(ctx, conv)
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			log.Printf("Error sending message to user %s: %v", email, err)
			break ReadLoop
		}
	}
	log.Printf("Chat session %s ended for user: %s", conv.ID, email)
}

// completeTurn sends the full accumulated prompt through the completion
// client and appends exactly one bot turn, the reply or the error text.
func (h *Handler) completeTurn(ctx context.Context, conv *chat.Conversation) string {
	reply, err := h.llm.Complete(ctx, conv.PromptText())
	if err != nil {
		log.Printf("[ERROR] Completion failed for session %s: %v", conv.ID, err)
		reply = "Error: " + err.Error()
	}
	conv.AppendBotTurn(reply)
	return reply
}
