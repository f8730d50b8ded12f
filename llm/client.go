package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"transcript-summary-api/config"
	"transcript-summary-api/utils"

	"go.uber.org/zap"
)

// RequestTimeout bounds every upstream completion call.
const RequestTimeout = 60 * time.Second

const systemPrompt = "You are an expert assistant who creates structured summaries from transcripts. Your response must be in Markdown format."

var ErrMissingAPIKey = errors.New("llm: api key not configured")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message Message `json:"message"`
}

// BuildMessages returns the system instruction followed by a user message
// embedding the prompt and the transcript.
func BuildMessages(prompt, transcript string) []Message {
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf("Instruction: \"%s\".\n\nTranscript: \"%s\"", prompt, transcript)},
	}
}

// Client talks to an OpenAI-compatible chat-completion endpoint.
type Client struct {
	apiKey     string
	url        string
	model      string
	referer    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(s config.OpenRouterSettings, logger *zap.Logger) *Client {
	return &Client{
		apiKey:     s.APIKey,
		url:        s.URL,
		model:      s.Model,
		referer:    s.Referer,
		httpClient: &http.Client{Timeout: RequestTimeout},
		logger:     logger,
	}
}

// Complete sends messages and returns the content of the first choice.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(ChatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.referer != "" {
		req.Header.Set("HTTP-Referer", c.referer)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	utils.LLMRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Info("Chat completion response received",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Chat completion rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet))
		return "", fmt.Errorf("chat completion returned status %s for url %s", resp.Status, c.url)
	}

	var out ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("chat response contained no choices")
	}
	return out.Choices[0].Message.Content, nil
}
