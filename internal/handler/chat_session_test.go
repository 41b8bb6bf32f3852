package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"MedChat_PatientAssistant/internal/auth"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialChat(t *testing.T, server *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/chat?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestChatSessionSeedsAndReplies(t *testing.T) {
	completer := &fakeCompleter{reply: "Hello, are you Ana?"}
	router := newTestRouter(t, completer)
	recorder := doJSON(router, http.MethodPost, "/signup", anaSignup())
	require.Equal(t, http.StatusCreated, recorder.Code)

	server := httptest.NewServer(router)
	defer server.Close()

	token, err := auth.GenerateToken("a@b.com")
	require.NoError(t, err)

	conn := dialChat(t, server, token)

	// the seed turn is completed immediately and opens the conversation
	_, first, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "Hello, are you Ana?", string(first))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("I have a headache")))
	_, second, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "Hello, are you Ana?", string(second))

	prompts := completer.Prompts()
	require.Len(t, prompts, 2)
	// the hidden system turn heads every prompt concatenation
	assert.Contains(t, prompts[0], "You are MedChat")
	assert.Contains(t, prompts[0], "Ana")
	assert.True(t, strings.HasPrefix(prompts[1], prompts[0]), "history is resent in full")
	assert.Contains(t, prompts[1], "I have a headache")
}

func TestChatSessionRejectsBadToken(t *testing.T) {
	router := newTestRouter(t, &fakeCompleter{})
	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/chat?token=garbage"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChatSessionCompletionErrorBecomesBotTurn(t *testing.T) {
	completer := &fakeCompleter{err: assert.AnError}
	router := newTestRouter(t, completer)
	recorder := doJSON(router, http.MethodPost, "/signup", anaSignup())
	require.Equal(t, http.StatusCreated, recorder.Code)

	server := httptest.NewServer(router)
	defer server.Close()

	token, err := auth.GenerateToken("a@b.com")
	require.NoError(t, err)

	conn := dialChat(t, server, token)

	// the failure surfaces inline instead of closing the session
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(message), "Error: "))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("still there?")))
	_, message, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(message), "Error: "))
}