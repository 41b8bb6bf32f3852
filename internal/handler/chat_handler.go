package handler

import (
	"errors"
	"log"
	"net/http"

	"MedChat_PatientAssistant/internal/llm"

	"github.com/gin-gonic/gin"
)

// /chat request body: the client concatenates its accumulated turns into a
// single prompt string before each call.
type ChatRequest struct {
	Prompt string `json:"prompt" example:"You are MedChat...\nI have a headache."`
}

// Chat godoc
// @Summary      Chat turn
// @Description  Forwards the accumulated conversation text to the completion model and returns the reply.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body handler.ChatRequest true "Concatenated conversation prompt"
// @Success      200 {object} handler.ChatResponse
// @Failure      400 {object} handler.ErrorResponse "Missing prompt"
// @Failure      500 {object} handler.ErrorResponse "Upstream or model failure"
// @Router       /chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	response, err := h.llm.Complete(c.Request.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyResponse) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No response from model"})
			return
		}
		log.Printf("[ERROR] Completion failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}
