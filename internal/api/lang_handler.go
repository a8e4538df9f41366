package api

import (
	"net/http"

	"pos-service/internal/service"

	"github.com/gin-gonic/gin"
)

type translationRequest struct {
	En string `json:"en"`
}

// getTranslation handles POST /get-translation
func (h *Handler) getTranslation(c *gin.Context) {
	var req translationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.En == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid English word"})
		return
	}

	spanish, err := h.translations.Translate(c.Request.Context(), req.En)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"es": spanish})
}

type chatRequest struct {
	Messages []service.ChatMessage `json:"messages"`
}

// chatRelay handles POST /chat
func (h *Handler) chatRelay(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	reply, err := h.chat.Reply(c.Request.Context(), req.Messages)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
