// Package gemini implements the LLM client port on the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/chat"
	"github.com/jsamuelsen11/moneygoal/internal/platform/config"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

var _ ports.LLMClient = (*Client)(nil)

// generator is the part of *genai.Models the client uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client generates completions with a Gemini model. A Client built without
// an API key is disabled and every call returns domain.ErrUnavailable.
type Client struct {
	gen         generator
	model       string
	temperature float32
	logger      *slog.Logger
}

// New creates a Client from cfg. An empty APIKey yields a disabled client
// rather than an error so the rest of the service can start without an LLM.
func New(ctx context.Context, cfg config.GeminiConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Client{
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		logger:      logger,
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if cfg.APIKey == "" {
		logger.WarnContext(ctx, "gemini api key not configured, llm features disabled")
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	c.gen = client.Models
	return c, nil
}

// Enabled reports whether an API key was configured.
func (c *Client) Enabled() bool {
	return c.gen != nil
}

// Generate sends the system instruction, history and prompt to the model and
// returns the text of the first candidate. With req.JSON set the model is
// asked for application/json and any markdown fence is removed.
func (c *Client) Generate(ctx context.Context, req ports.LLMRequest) (string, error) {
	if c.gen == nil {
		return "", fmt.Errorf("gemini: %w", domain.ErrUnavailable)
	}

	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, m := range req.History {
		contents = append(contents, genai.NewContentFromText(m.Content, toRole(m.Role)))
	}
	contents = append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := c.gen.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		c.logger.ErrorContext(ctx, "gemini generate failed",
			slog.String("model", c.model),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("gemini generate: %w", errors.Join(domain.ErrUnavailable, err))
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned no text: %w", domain.ErrUnavailable)
	}
	if req.JSON {
		text = stripFence(text)
	}
	return text, nil
}

func toRole(r chat.Role) genai.Role {
	if r == chat.RoleAssistant {
		return genai.RoleModel
	}
	return genai.RoleUser
}

// stripFence removes a ```json ... ``` wrapper some models add even in JSON mode.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
