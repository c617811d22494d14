package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Default Gemini models for the two generation surfaces.
const (
	DefaultChatModel  = "gemini-2.5-flash"
	DefaultDraftModel = "gemini-3-flash-preview"
)

const announcementPromptTemplate = `
Draft a professional and highly engaging email announcement for the ECU DECA Alumni chapter.
The tone should be spirited (Go Pirates!), professional, and community-focused.

EVENT DETAILS:
Title: %s
Date: %s
Time: %s
Location: %s
Description: %s

STRUCTURE:
1. Subject line: Catchy and Pirate-themed.
2. Greeting: "Dear Pirate Family," or similar.
3. Hook: Mention why this event matters for the alumni chapter.
4. Details: List the logistics clearly.
5. CTA: Encourage them to RSVP on the network site.
6. Sign-off: "Go Pirates!", "The ECU DECA Alumni Board", and mention contact "ecudecaalumni@gmail.com".

Keep it under 200 words.
`

// Config holds configuration for the Gemini text-generation client.
type Config struct {
	APIKey     string
	BaseURL    string
	ChatModel  string
	DraftModel string
}

type geminiClient struct {
	client     *http.Client
	apiKey     string
	baseURL    string
	chatModel  string
	draftModel string
}

// NewClient returns a TextGenerator that calls the Gemini generateContent API.
func NewClient(client *http.Client, cfg Config) domain.TextGenerator {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = DefaultChatModel
	}
	if cfg.DraftModel == "" {
		cfg.DraftModel = DefaultDraftModel
	}
	return &geminiClient{
		client:     client,
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		chatModel:  cfg.ChatModel,
		draftModel: cfg.DraftModel,
	}
}

func (g *geminiClient) GenerateAnnouncement(ctx context.Context, event *domain.Event) (string, error) {
	prompt := fmt.Sprintf(announcementPromptTemplate, event.Title, event.Date, event.Time, event.Location, event.Description)
	return g.generate(ctx, g.draftModel, prompt, "")
}

func (g *geminiClient) GenerateChat(ctx context.Context, userMessage, systemContext string) (string, error) {
	return g.generate(ctx, g.chatModel, userMessage, systemContext)
}

// Request/response shapes for the generateContent endpoint.
type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *geminiClient) generate(ctx context.Context, model, prompt, systemInstruction string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	if systemInstruction != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: systemInstruction}}}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api returned status: %d", resp.StatusCode)
	}
	var data generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return data.Candidates[0].Content.Parts[0].Text, nil
}
