package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pos-service/internal/util"

	"go.uber.org/zap"
)

const openAIChatURL = "https://api.openai.com/v1/chat/completions"

// ChatService proxies kiosk chat conversations to the OpenAI chat
// completions API.
type ChatService struct {
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(apiKey, model string) *ChatService {
	return &ChatService{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     util.GetLogger(),
	}
}

// ChatMessage is one message of the kiosk conversation.
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string                  `json:"model"`
	Messages []chatCompletionMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// Reply sends the conversation to the completion API and returns the
// assistant's response. Messages from the kiosk user map to the user role;
// everything else maps to assistant.
func (s *ChatService) Reply(ctx context.Context, messages []ChatMessage) (string, error) {
	ctx, span := util.StartSpan(ctx, "ChatService.Reply")
	defer span.End()

	conversation := make([]chatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		role := "assistant"
		if msg.Sender == "user" {
			role = "user"
		}
		conversation = append(conversation, chatCompletionMessage{Role: role, Content: msg.Text})
	}

	body, err := json.Marshal(chatCompletionRequest{Model: s.model, Messages: conversation})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIChatURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion API returned %d", resp.StatusCode)
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode chat completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat completion API returned no choices")
	}

	s.logger.Info("Chat reply generated", zap.Int("messages", len(messages)))
	return parsed.Choices[0].Message.Content, nil
}
