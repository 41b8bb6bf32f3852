package handler

import (
	"context"

	"MedChat_PatientAssistant/internal/storage"
)

// Completer is the completion model contract the chat handlers depend on.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Handler bundles the store handle and the completion client for every route.
type Handler struct {
	store *storage.Store
	llm   Completer
}

func New(store *storage.Store, llm Completer) *Handler {
	return &Handler{store: store, llm: llm}
}

type SuccessResponse struct {
	Message string `json:"message" example:"User created successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"error cause and description"`
}

type LoginSuccessResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type CheckEmailResponse struct {
	Exists bool `json:"exists" example:"true"`
}

type ChatResponse struct {
	Response string `json:"response" example:"Hello Ana, how can I help you today?"`
}
