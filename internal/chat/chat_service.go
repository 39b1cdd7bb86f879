package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aibuddy/internal/apiusage"
	"aibuddy/pkg/models"

	"google.golang.org/genai"
)

const chatModel = "gemini-2.0-flash"

// systemPrompt frames the assistant as a wellness companion. The user's
// self-reported emotion, when present, is appended so replies match it.
const systemPrompt = "You are Buddy, a warm and supportive wellness companion. " +
	"You help with mood, meditation, fasting, hydration and general wellbeing. " +
	"Keep replies short, practical and kind. You are not a medical professional " +
	"and must suggest seeing one for anything clinical."

const fallbackReply = "I'm having trouble reaching my brain right now. " +
	"Take a slow breath, drink some water, and try me again in a minute."

type ChatService struct {
	client *genai.Client
	cr     ChatRepository
	usage  *apiusage.Tracker
}

// NewChatService builds the companion service. A missing API key is not an
// error: the service stays up and answers with a canned fallback.
func NewChatService(apiKey string, cr ChatRepository, usage *apiusage.Tracker) (*ChatService, error) {
	service := &ChatService{cr: cr, usage: usage}

	if apiKey == "" {
		return service, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	service.client = client

	return service, nil
}

func (s *ChatService) Configured() bool {
	return s.client != nil
}

// Reply generates a response for the user's message, persists the exchange
// and returns the saved record.
func (s *ChatService) Reply(ctx context.Context, userID int, req models.ChatRequest) (*models.ChatMessage, error) {
	history, err := s.cr.GetHistory(userID, 10)
	if err != nil {
		return nil, err
	}

	response := fallbackReply
	if s.client != nil {
		generated, err := s.generate(ctx, userID, req, history)
		if err == nil {
			response = generated
		}
	}

	message := &models.ChatMessage{
		UserID:   userID,
		Message:  req.Message,
		Response: response,
		Emotion:  req.Emotion,
	}
	if err := s.cr.PersistMessage(message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *ChatService) generate(ctx context.Context, userID int, req models.ChatRequest, history []models.ChatMessage) (string, error) {
	start := time.Now()

	instruction := systemPrompt
	if req.Emotion != nil && *req.Emotion != "" {
		instruction += fmt.Sprintf(" The user currently feels %s; acknowledge that feeling first.", *req.Emotion)
	}

	// History comes newest first; replay it oldest first.
	var contents []*genai.Content
	for i := len(history) - 1; i >= 0; i-- {
		contents = append(contents, genai.NewContentFromText(history[i].Message, genai.RoleUser))
		contents = append(contents, genai.NewContentFromText(history[i].Response, genai.RoleModel))
	}
	contents = append(contents, genai.NewContentFromText(req.Message, genai.RoleUser))

	result, err := s.client.Models.GenerateContent(ctx, chatModel, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
	})
	if err != nil {
		s.usage.Record("gemini", "generateContent", &userID, start, false, 0)
		return "", fmt.Errorf("failed to generate chat response: %w", err)
	}
	s.usage.Record("gemini", "generateContent", &userID, start, true, 200)

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("empty chat response")
	}

	return text, nil
}
